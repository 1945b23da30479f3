package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/api/middleware"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

type NavItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

type NavResponse struct {
	Main      []NavItem `json:"main"`
	Secondary []NavItem `json:"secondary"`
}

// Nav handles GET /api/nav
//
// Only SUPERADMIN gets the management sections; any other role sees an
// empty nav rather than an error.
func (h *NavHandler) Nav(c *fiber.Ctx) error {
	id := middleware.IdentityFrom(c)
	if !id.IsSuperAdmin() {
		return c.JSON(fiber.Map{"data": NavResponse{
			Main:      []NavItem{},
			Secondary: []NavItem{},
		}})
	}

	return c.JSON(fiber.Map{"data": NavResponse{
		Main: []NavItem{
			{Title: "Dashboard", URL: "/", Icon: "dashboard"},
			{Title: "Restaurantes", URL: "/restaurantes", Icon: "building"},
			{Title: "Administradores", URL: "/administradores", Icon: "user-cog"},
		},
		Secondary: []NavItem{
			{Title: "Configuración", URL: "/superadmin/settings", Icon: "settings"},
			{Title: "Ayuda", URL: "/superadmin/help", Icon: "help"},
			{Title: "Buscar", URL: "/superadmin/search", Icon: "search"},
		},
	}})
}

// Me handles GET /api/me
func (h *NavHandler) Me(c *fiber.Ctx) error {
	id := middleware.IdentityFrom(c)
	if id.Role == "" {
		return domain.ErrForbidden.WithMessage("no identity asserted")
	}
	return c.JSON(fiber.Map{"data": id})
}
