package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/api/docs"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/api/handler"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/api/middleware"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/service"
)

type Dependencies struct {
	Restaurantes *service.Restaurantes
	Admins       *service.Admins
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Pachamama Super Admin Dashboard",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-User-Role,X-User-Email,X-User-Name,X-User-Image",
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints (no auth required)
	healthHandler := handler.NewHealthHandler()
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// API group with asserted identity and session scoping
	apiGroup := r.app.Group("/api")
	apiGroup.Use(middleware.Identity())

	navHandler := handler.NewNavHandler()
	apiGroup.Get("/nav", navHandler.Nav)
	apiGroup.Get("/me", navHandler.Me)

	// Only configure the management surface if dependencies were provided
	if r.deps != nil {
		managed := apiGroup.Group("/restaurantes", middleware.RequireSuperAdmin())

		restHandler := handler.NewRestaurantesHandler(r.deps.Restaurantes, r.logger)
		managed.Get("/", restHandler.List)
		managed.Post("/", restHandler.Create)
		managed.Put("/filters", restHandler.UpdateFilters)
		managed.Delete("/filters", restHandler.ClearFilters)
		managed.Put("/:id", restHandler.Update)
		managed.Delete("/:id", restHandler.Delete)

		adminsHandler := handler.NewAdminsHandler(r.deps.Admins, r.logger)
		managed.Get("/:id/admins", adminsHandler.List)
		managed.Post("/:id/admins", adminsHandler.Create)
		managed.Put("/:id/admins/:adminId", adminsHandler.Update)
		managed.Delete("/:id/admins/:adminId", adminsHandler.Delete)
		managed.Post("/:id/admins/:adminId/change-password", adminsHandler.ChangePassword)
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
