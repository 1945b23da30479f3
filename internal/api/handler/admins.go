package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/service"
)

type AdminsHandler struct {
	service *service.Admins
	logger  *slog.Logger
}

func NewAdminsHandler(svc *service.Admins, logger *slog.Logger) *AdminsHandler {
	return &AdminsHandler{
		service: svc,
		logger:  logger,
	}
}

type adminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

// List handles GET /api/restaurantes/:id/admins
//
// A search query parameter feeds the debounced session search; the
// returned list reflects the committed (post-quiet-period) value.
func (h *AdminsHandler) List(c *fiber.Ctx) error {
	caller := callerFrom(c)
	restauranteID := c.Params("id")

	if c.Request().URI().QueryArgs().Has("search") {
		if err := h.service.SetSearch(caller, restauranteID, c.Query("search")); err != nil {
			return err
		}
	}

	admins, meta, err := h.service.List(c.Context(), caller, restauranteID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": admins,
		"meta": meta,
	})
}

// Create handles POST /api/restaurantes/:id/admins
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req adminRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithMessage("invalid admin body")
	}

	cred, err := h.service.Create(c.Context(), callerFrom(c), c.Params("id"), service.AdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": cred})
}

// Update handles PUT /api/restaurantes/:id/admins/:adminId
func (h *AdminsHandler) Update(c *fiber.Ctx) error {
	var req adminRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithMessage("invalid admin body")
	}

	err := h.service.Update(c.Context(), callerFrom(c), c.Params("id"), c.Params("adminId"), service.AdminUpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "admin updated"},
	})
}

// Delete handles DELETE /api/restaurantes/:id/admins/:adminId
func (h *AdminsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), callerFrom(c), c.Params("id"), c.Params("adminId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "admin deleted"},
	})
}

// ChangePassword handles POST /api/restaurantes/:id/admins/:adminId/change-password
func (h *AdminsHandler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithMessage("invalid password body")
	}

	cred, err := h.service.ChangePassword(c.Context(), callerFrom(c), c.Params("id"), c.Params("adminId"), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cred})
}
