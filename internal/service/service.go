// Package service ties the per-session screen state, the query cache
// and the platform API client together. Each service method works for
// one caller: state is looked up by session id, and the outbound client
// is built per call so the caller's cookies and tenant host always
// travel with the request.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/backend"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

// Client is the slice of the platform API the screen services use.
// Satisfied by *backend.Client.
type Client interface {
	ListRestaurantes(ctx context.Context, f domain.Filters) (*domain.PaginatedResponse[domain.Restaurante], error)
	CreateRestaurante(ctx context.Context, form backend.RestauranteForm) error
	UpdateRestaurante(ctx context.Context, id string, form backend.RestauranteForm) error
	DeleteRestaurante(ctx context.Context, id string) error

	ListAdmins(ctx context.Context, restauranteID string) ([]domain.RestauranteAdmin, error)
	CreateAdmin(ctx context.Context, restauranteID string, payload backend.AdminPayload) error
	UpdateAdmin(ctx context.Context, restauranteID, adminID string, payload backend.AdminPayload) error
	DeleteAdmin(ctx context.Context, restauranteID, adminID string) error
	ChangeAdminPassword(ctx context.Context, restauranteID, adminID, password string) error
}

// ClientFactory builds a platform API client bound to one tenant
// subdomain and the caller's forwarded cookies.
type ClientFactory func(subdomain, cookies string) Client

// Caller identifies one inbound request: which session's state to use
// and what to forward to the platform API.
type Caller struct {
	SessionID string
	Subdomain string
	Cookies   string
}

func newValidator() *validator.Validate {
	return validator.New()
}

// validationError turns validator output into the field-scoped 422
// error. These never reach the network client.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ErrValidationFailed.WithError(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s is too short", fe.Field()))
		case "hexcolor":
			msgs = append(msgs, fmt.Sprintf("field %s must be a hex color", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", fe.Field()))
		}
	}
	return domain.ErrValidationFailed.WithMessage(strings.Join(msgs, ", "))
}
