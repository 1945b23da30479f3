package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/backend"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/service"
)

type RestaurantesHandler struct {
	service *service.Restaurantes
	logger  *slog.Logger
}

func NewRestaurantesHandler(svc *service.Restaurantes, logger *slog.Logger) *RestaurantesHandler {
	return &RestaurantesHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/restaurantes
func (h *RestaurantesHandler) List(c *fiber.Ctx) error {
	page, meta, err := h.service.List(c.Context(), callerFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": page.Data,
		"meta": fiber.Map{
			"total":         page.Total,
			"page":          page.Page,
			"limit":         page.Limit,
			"totalPages":    page.TotalPages,
			"pageWindow":    meta.PageWindow,
			"state":         meta.State,
			"activeFilters": meta.ActiveFilters,
			"searchInput":   meta.SearchInput,
			"filters":       meta.Filters,
		},
	})
}

// UpdateFilters handles PUT /api/restaurantes/filters
func (h *RestaurantesHandler) UpdateFilters(c *fiber.Ctx) error {
	var patch service.FilterPatch
	if err := c.BodyParser(&patch); err != nil {
		return domain.ErrBadRequest.WithMessage("invalid filter body")
	}

	filters, err := h.service.ApplyFilters(callerFrom(c), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": filters})
}

// ClearFilters handles DELETE /api/restaurantes/filters
func (h *RestaurantesHandler) ClearFilters(c *fiber.Ctx) error {
	filters := h.service.ClearFilters(callerFrom(c))
	return c.JSON(fiber.Map{"data": filters})
}

// Create handles POST /api/restaurantes
func (h *RestaurantesHandler) Create(c *fiber.Ctx) error {
	in, release, err := restauranteInputFrom(c)
	if err != nil {
		return err
	}
	defer release()

	if err := h.service.Create(c.Context(), callerFrom(c), in); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"message": "restaurante created"},
	})
}

// Update handles PUT /api/restaurantes/:id
func (h *RestaurantesHandler) Update(c *fiber.Ctx) error {
	in, release, err := restauranteInputFrom(c)
	if err != nil {
		return err
	}
	defer release()

	if err := h.service.Update(c.Context(), callerFrom(c), c.Params("id"), in); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "restaurante updated"},
	})
}

// Delete handles DELETE /api/restaurantes/:id
func (h *RestaurantesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), callerFrom(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "restaurante deleted"},
	})
}

// restauranteInputFrom reads the multipart form. A logo upload is
// spooled to disk; the returned release func always removes it, so the
// spool never outlives the request.
func restauranteInputFrom(c *fiber.Ctx) (service.RestauranteInput, func(), error) {
	in := service.RestauranteInput{
		Name:             c.FormValue("name"),
		NIT:              c.FormValue("nit"),
		Address:          c.FormValue("address"),
		City:             c.FormValue("city"),
		Country:          c.FormValue("country"),
		Timezone:         c.FormValue("timezone"),
		Subdomain:        c.FormValue("subdomain"),
		PrimaryColor:     c.FormValue("primaryColor"),
		SubscriptionPlan: c.FormValue("subscriptionPlan"),
		PlanExpiresAt:    c.FormValue("planExpiresAt"),
		ModulesRaw:       c.FormValue("activeModules"),
	}

	release := func() {}

	fh, err := c.FormFile("logo")
	if err != nil || fh == nil {
		return in, release, nil
	}

	f, err := fh.Open()
	if err != nil {
		return in, release, domain.ErrBadRequest.WithMessage("could not read logo upload")
	}
	logo, err := backend.SpoolLogo(fh.Filename, f)
	_ = f.Close()
	if err != nil {
		return in, release, domain.ErrInternal.WithError(err)
	}

	in.Logo = logo
	return in, logo.Release, nil
}
