// Package handler contains the dashboard's HTTP handlers. Handlers
// translate requests into service calls for one caller and return
// errors to the centralized error handler.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/api/middleware"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/service"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/tenant"
)

// callerFrom identifies the inbound request: session id for state and
// cache scoping, the tenant subdomain from the Host header, and the
// cookies forwarded verbatim to the platform API.
func callerFrom(c *fiber.Ctx) service.Caller {
	return service.Caller{
		SessionID: middleware.SessionID(c),
		Subdomain: tenant.ExtractSubdomain(c.Hostname()),
		Cookies:   c.Get(fiber.HeaderCookie),
	}
}
