package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/backend"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/query"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/state"
)

// List-view discriminator: an empty result under active filters means
// "nothing matched", an empty result with no filters means the platform
// has no tenants yet.
const (
	ListStateOK        = "ok"
	ListStateEmpty     = "empty"
	ListStateNoMatches = "no_matches"
)

// ListMeta is the presentation metadata served alongside a tenants
// page.
type ListMeta struct {
	State         string         `json:"state"`
	PageWindow    []int          `json:"pageWindow"`
	ActiveFilters int            `json:"activeFilters"`
	SearchInput   string         `json:"searchInput"`
	Filters       domain.Filters `json:"filters"`
}

// FilterPatch is a partial update of the filter state. Absent fields
// leave the current value untouched.
type FilterPatch struct {
	Search           *string `json:"search"`
	Status           *string `json:"status"`
	SubscriptionPlan *string `json:"subscriptionPlan"`
	City             *string `json:"city"`
	Page             *int    `json:"page"`
	Limit            *int    `json:"limit"`
}

// RestauranteInput is the create/update form. Only the name is
// mandatory; every other field left blank falls back to the platform
// defaults on create.
type RestauranteInput struct {
	Name             string `validate:"required,min=2"`
	NIT              string
	Address          string
	City             string
	Country          string
	Timezone         string
	Subdomain        string
	PrimaryColor     string `validate:"omitempty,hexcolor"`
	SubscriptionPlan string
	PlanExpiresAt    string
	ModulesRaw       string
	Logo             *backend.LogoUpload
}

// Restaurantes is the tenants screen service.
type Restaurantes struct {
	store    *query.Store
	sessions *state.Manager
	clients  ClientFactory
	validate *validator.Validate
	logger   *slog.Logger
}

func NewRestaurantes(store *query.Store, sessions *state.Manager, clients ClientFactory, logger *slog.Logger) *Restaurantes {
	return &Restaurantes{
		store:    store,
		sessions: sessions,
		clients:  clients,
		validate: newValidator(),
		logger:   logger,
	}
}

func restaurantesKey(sessionID string, f domain.Filters) query.Key {
	return query.NewKey("sessions", sessionID, "restaurantes", f.CacheKey())
}

func restaurantesPrefix(sessionID string) query.Key {
	return query.NewKey("sessions", sessionID, "restaurantes")
}

// List serves one page of tenants under the caller's current filter
// state. Results are cached per filter state; out-of-order responses
// from superseded fetches are never applied.
func (s *Restaurantes) List(ctx context.Context, caller Caller) (*domain.PaginatedResponse[domain.Restaurante], *ListMeta, error) {
	sess := s.sessions.Get(caller.SessionID)
	f := sess.Filters()

	lineage := "restaurantes:" + caller.SessionID
	page, err := query.Fetch(ctx, s.store, lineage, restaurantesKey(caller.SessionID, f),
		func(ctx context.Context) (*domain.PaginatedResponse[domain.Restaurante], error) {
			return s.clients(caller.Subdomain, caller.Cookies).ListRestaurantes(ctx, f)
		})
	if err != nil {
		return nil, nil, err
	}

	meta := &ListMeta{
		State:         listState(page, f),
		PageWindow:    domain.PageWindow(page.Page, page.TotalPages),
		ActiveFilters: f.ActiveCount(),
		SearchInput:   sess.SearchInput(),
		Filters:       f,
	}
	return page, meta, nil
}

func listState(page *domain.PaginatedResponse[domain.Restaurante], f domain.Filters) string {
	if len(page.Data) > 0 {
		return ListStateOK
	}
	if f.ActiveCount() > 0 {
		return ListStateNoMatches
	}
	return ListStateEmpty
}

// ApplyFilters merges a partial filter update into the session state.
// Search goes through the debounce layer; everything else applies
// immediately and resets the page.
func (s *Restaurantes) ApplyFilters(caller Caller, patch FilterPatch) (domain.Filters, error) {
	sess := s.sessions.Get(caller.SessionID)

	if patch.Status != nil {
		switch *patch.Status {
		case "active":
			active := true
			sess.SetStatus(&active)
		case "inactive":
			active := false
			sess.SetStatus(&active)
		case "all", "":
			sess.SetStatus(nil)
		default:
			return domain.Filters{}, domain.ErrValidationFailed.WithMessage("field status must be all, active or inactive")
		}
	}
	if patch.SubscriptionPlan != nil {
		plan := *patch.SubscriptionPlan
		if plan != "" && !domain.IsValidPlan(plan) {
			return domain.Filters{}, domain.ErrValidationFailed.WithMessage("field subscriptionPlan is not a valid plan")
		}
		sess.SetPlan(plan)
	}
	if patch.City != nil {
		sess.SetCity(strings.TrimSpace(*patch.City))
	}
	if patch.Limit != nil {
		sess.SetLimit(*patch.Limit)
	}
	if patch.Page != nil {
		sess.SetPage(*patch.Page)
	}
	if patch.Search != nil {
		sess.SetSearchInput(*patch.Search)
	}
	return sess.Filters(), nil
}

// ClearFilters resets the caller's filter state to the initial one.
func (s *Restaurantes) ClearFilters(caller Caller) domain.Filters {
	sess := s.sessions.Get(caller.SessionID)
	sess.ClearFilters()
	return sess.Filters()
}

// Create validates the form, fills platform defaults for the untouched
// optional fields and submits it. One network call per submission; on
// failure the caller keeps its field values and may retry.
func (s *Restaurantes) Create(ctx context.Context, caller Caller, in RestauranteInput) error {
	form, err := s.buildForm(in, true)
	if err != nil {
		return err
	}
	if err := s.clients(caller.Subdomain, caller.Cookies).CreateRestaurante(ctx, *form); err != nil {
		return err
	}
	s.invalidate(caller)
	return nil
}

// Update submits changed fields for an existing tenant. Defaults are
// not re-applied; blank optional fields stay untouched server-side.
func (s *Restaurantes) Update(ctx context.Context, caller Caller, id string, in RestauranteInput) error {
	if id == "" {
		return domain.ErrBadRequest.WithMessage("restaurante id is required")
	}
	form, err := s.buildForm(in, false)
	if err != nil {
		return err
	}
	if err := s.clients(caller.Subdomain, caller.Cookies).UpdateRestaurante(ctx, id, *form); err != nil {
		return err
	}
	s.invalidate(caller)
	return nil
}

// Delete removes a tenant.
func (s *Restaurantes) Delete(ctx context.Context, caller Caller, id string) error {
	if id == "" {
		return domain.ErrBadRequest.WithMessage("restaurante id is required")
	}
	if err := s.clients(caller.Subdomain, caller.Cookies).DeleteRestaurante(ctx, id); err != nil {
		return err
	}
	s.invalidate(caller)
	return nil
}

func (s *Restaurantes) invalidate(caller Caller) {
	dropped := s.store.InvalidatePrefix(restaurantesPrefix(caller.SessionID))
	s.logger.Debug("restaurantes cache invalidated",
		slog.String("session", caller.SessionID),
		slog.Int("dropped", dropped))
}

func (s *Restaurantes) buildForm(in RestauranteInput, applyDefaults bool) (*backend.RestauranteForm, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	if in.Subdomain != "" && !domain.IsValidSubdomain(in.Subdomain) {
		return nil, domain.ErrValidationFailed.WithMessage("field Subdomain must be lowercase letters, digits and hyphens")
	}
	if in.SubscriptionPlan != "" && !domain.IsValidPlan(in.SubscriptionPlan) {
		return nil, domain.ErrValidationFailed.WithMessage("field SubscriptionPlan is not a valid plan")
	}

	modules, err := domain.ParseModules(in.ModulesRaw)
	if err != nil {
		return nil, domain.ErrValidationFailed.WithMessage("field activeModules must be a JSON array or a comma-separated list")
	}

	form := &backend.RestauranteForm{
		Name:             strings.TrimSpace(in.Name),
		NIT:              strings.TrimSpace(in.NIT),
		Address:          strings.TrimSpace(in.Address),
		City:             strings.TrimSpace(in.City),
		Country:          in.Country,
		Timezone:         in.Timezone,
		Subdomain:        in.Subdomain,
		PrimaryColor:     in.PrimaryColor,
		SubscriptionPlan: in.SubscriptionPlan,
		PlanExpiresAt:    in.PlanExpiresAt,
		ActiveModules:    modules,
		Logo:             in.Logo,
	}

	if applyDefaults {
		if form.SubscriptionPlan == "" {
			form.SubscriptionPlan = domain.PlanBasico
		}
		if form.Country == "" {
			form.Country = domain.DefaultCountry
		}
		if form.Timezone == "" {
			form.Timezone = domain.DefaultTimezone
		}
		if form.PrimaryColor == "" {
			form.PrimaryColor = domain.DefaultPrimaryColor
		}
		if form.ActiveModules == nil {
			form.ActiveModules = domain.DefaultActiveModules()
		}
	}
	return form, nil
}
