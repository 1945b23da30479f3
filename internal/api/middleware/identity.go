package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

// Identity headers asserted by the auth proxy in front of the
// dashboard.
const (
	HeaderUserRole  = "x-user-role"
	HeaderUserEmail = "x-user-email"
	HeaderUserName  = "x-user-name"
	HeaderUserImage = "x-user-image"
)

// SessionCookie carries the dashboard session id that scopes filter
// state and the query cache.
const SessionCookie = "dashboard_session"

const (
	localIdentity = "identity"
	localSession  = "session_id"
)

// Identity reads the caller identity from the x-user-* headers and
// pins a session id, issuing one on first contact.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localIdentity, domain.Identity{
			Role:  c.Get(HeaderUserRole),
			Email: c.Get(HeaderUserEmail),
			Name:  c.Get(HeaderUserName),
			Image: c.Get(HeaderUserImage),
		})

		sid := c.Cookies(SessionCookie)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
			})
		}
		c.Locals(localSession, sid)

		return c.Next()
	}
}

// IdentityFrom returns the asserted identity, zero when the middleware
// did not run.
func IdentityFrom(c *fiber.Ctx) domain.Identity {
	if id, ok := c.Locals(localIdentity).(domain.Identity); ok {
		return id
	}
	return domain.Identity{}
}

// SessionID returns the caller's dashboard session id.
func SessionID(c *fiber.Ctx) string {
	if sid, ok := c.Locals(localSession).(string); ok {
		return sid
	}
	return ""
}

// RequireSuperAdmin rejects callers whose asserted role is not
// SUPERADMIN.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IdentityFrom(c).IsSuperAdmin() {
			return domain.ErrForbidden
		}
		return c.Next()
	}
}
