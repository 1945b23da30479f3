package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/backend"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/query"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/state"
)

// AdminInput is the admin create form. A blank password means "generate
// one for me".
type AdminInput struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"omitempty,min=8"`
}

// AdminUpdateInput is the admin update form; passwords change through
// ChangePassword only.
type AdminUpdateInput struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
}

// AdminCredential reports a credential-producing mutation. Password is
// set only when it was generated here: it is shown to the operator this
// one time and never stored or logged.
type AdminCredential struct {
	Password  string `json:"password,omitempty"`
	Generated bool   `json:"generated"`
}

// AdminsMeta accompanies an admins listing.
type AdminsMeta struct {
	RestauranteID string `json:"restauranteId"`
	SearchInput   string `json:"searchInput"`
	Search        string `json:"search"`
	Total         int    `json:"total"`
}

// Admins is the per-tenant admin accounts service.
type Admins struct {
	store    *query.Store
	sessions *state.Manager
	clients  ClientFactory
	validate *validator.Validate
	logger   *slog.Logger
}

func NewAdmins(store *query.Store, sessions *state.Manager, clients ClientFactory, logger *slog.Logger) *Admins {
	return &Admins{
		store:    store,
		sessions: sessions,
		clients:  clients,
		validate: newValidator(),
		logger:   logger,
	}
}

func adminsKey(sessionID, restauranteID string) query.Key {
	return query.NewKey("sessions", sessionID, "restaurantes", restauranteID, "admins")
}

// List serves the admins of one tenant, re-filtered by the session's
// debounced search. The server list is cached; the search layer runs on
// top of the cached result so typing never refetches.
func (s *Admins) List(ctx context.Context, caller Caller, restauranteID string) ([]domain.RestauranteAdmin, *AdminsMeta, error) {
	if restauranteID == "" {
		return nil, nil, domain.ErrRestauranteRequired
	}
	sess := s.sessions.Get(caller.SessionID)
	sess.SelectRestaurante(restauranteID)
	input, search := sess.AdminSearch()

	lineage := "admins:" + caller.SessionID
	admins, err := query.Fetch(ctx, s.store, lineage, adminsKey(caller.SessionID, restauranteID),
		func(ctx context.Context) ([]domain.RestauranteAdmin, error) {
			return s.clients(caller.Subdomain, caller.Cookies).ListAdmins(ctx, restauranteID)
		})
	if err != nil {
		return nil, nil, err
	}

	filtered := domain.FilterAdmins(admins, search)
	meta := &AdminsMeta{
		RestauranteID: restauranteID,
		SearchInput:   input,
		Search:        search,
		Total:         len(admins),
	}
	return filtered, meta, nil
}

// SetSearch records an admins-screen search keystroke. The filter layer
// commits after the quiet period; no network traffic results.
func (s *Admins) SetSearch(caller Caller, restauranteID, value string) error {
	if restauranteID == "" {
		return domain.ErrRestauranteRequired
	}
	sess := s.sessions.Get(caller.SessionID)
	sess.SelectRestaurante(restauranteID)
	sess.SetAdminSearchInput(value)
	return nil
}

// Create adds an admin account. When the password is left blank a
// 12-character one is generated and returned once.
func (s *Admins) Create(ctx context.Context, caller Caller, restauranteID string, in AdminInput) (*AdminCredential, error) {
	if restauranteID == "" {
		return nil, domain.ErrRestauranteRequired
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	password := in.Password
	generated := false
	if password == "" {
		var err error
		password, err = domain.GeneratePassword(domain.GeneratedPasswordLength)
		if err != nil {
			return nil, domain.ErrInternal.WithError(err)
		}
		generated = true
	}

	payload := backend.AdminPayload{Name: in.Name, Email: in.Email, Password: password}
	if err := s.clients(caller.Subdomain, caller.Cookies).CreateAdmin(ctx, restauranteID, payload); err != nil {
		return nil, err
	}
	s.invalidate(caller, restauranteID)

	cred := &AdminCredential{Generated: generated}
	if generated {
		cred.Password = password
	}
	return cred, nil
}

// Update renames or re-addresses an admin account.
func (s *Admins) Update(ctx context.Context, caller Caller, restauranteID, adminID string, in AdminUpdateInput) error {
	if restauranteID == "" {
		return domain.ErrRestauranteRequired
	}
	if adminID == "" {
		return domain.ErrBadRequest.WithMessage("admin id is required")
	}
	if err := s.validate.Struct(in); err != nil {
		return validationError(err)
	}

	payload := backend.AdminPayload{Name: in.Name, Email: in.Email}
	if err := s.clients(caller.Subdomain, caller.Cookies).UpdateAdmin(ctx, restauranteID, adminID, payload); err != nil {
		return err
	}
	s.invalidate(caller, restauranteID)
	return nil
}

// Delete removes an admin account.
func (s *Admins) Delete(ctx context.Context, caller Caller, restauranteID, adminID string) error {
	if restauranteID == "" {
		return domain.ErrRestauranteRequired
	}
	if adminID == "" {
		return domain.ErrBadRequest.WithMessage("admin id is required")
	}
	if err := s.clients(caller.Subdomain, caller.Cookies).DeleteAdmin(ctx, restauranteID, adminID); err != nil {
		return err
	}
	s.invalidate(caller, restauranteID)
	return nil
}

// ChangePassword resets an admin's password. A blank password requests
// a generated one, returned once like on create.
func (s *Admins) ChangePassword(ctx context.Context, caller Caller, restauranteID, adminID, password string) (*AdminCredential, error) {
	if restauranteID == "" {
		return nil, domain.ErrRestauranteRequired
	}
	if adminID == "" {
		return nil, domain.ErrBadRequest.WithMessage("admin id is required")
	}

	generated := false
	if password == "" {
		var err error
		password, err = domain.GeneratePassword(domain.GeneratedPasswordLength)
		if err != nil {
			return nil, domain.ErrInternal.WithError(err)
		}
		generated = true
	} else if len(password) < 8 {
		return nil, domain.ErrValidationFailed.WithMessage("field Password is too short")
	}

	if err := s.clients(caller.Subdomain, caller.Cookies).ChangeAdminPassword(ctx, restauranteID, adminID, password); err != nil {
		return nil, err
	}
	s.invalidate(caller, restauranteID)

	cred := &AdminCredential{Generated: generated}
	if generated {
		cred.Password = password
	}
	return cred, nil
}

func (s *Admins) invalidate(caller Caller, restauranteID string) {
	dropped := s.store.InvalidatePrefix(adminsKey(caller.SessionID, restauranteID))
	s.logger.Debug("admins cache invalidated",
		slog.String("session", caller.SessionID),
		slog.String("restaurante", restauranteID),
		slog.Int("dropped", dropped))
}
