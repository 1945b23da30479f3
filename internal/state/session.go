// Package state holds per-operator screen state: the restaurantes
// filter/pagination state with its two-layer debounced search, and the
// admins screen selection. State lives only for the session; nothing
// here is persisted.
package state

import (
	"strings"
	"sync"
	"time"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/query"
)

// Session is one operator's screen state. The free-text search is held
// in two layers: the immediate input value (echoed back to the screen)
// and the debounced value merged into the filter state, so a fetch key
// only changes after the quiet period.
type Session struct {
	mu sync.Mutex

	filters     domain.Filters
	searchInput string
	searchDeb   *query.Debouncer

	adminSelection   string
	adminSearchInput string
	adminSearch      string
	adminDeb         *query.Debouncer
}

func newSession(debounce time.Duration) *Session {
	s := &Session{filters: domain.NewFilters()}
	s.searchDeb = query.NewDebouncer(debounce, s.commitSearch)
	s.adminDeb = query.NewDebouncer(debounce, s.commitAdminSearch)
	return s
}

func (s *Session) commitSearch(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.SetSearch(strings.TrimSpace(v))
}

func (s *Session) commitAdminSearch(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminSearch = strings.TrimSpace(v)
}

// Filters returns a snapshot of the current restaurantes filter state.
func (s *Session) Filters() domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SearchInput returns the immediate (not yet debounced) search value.
func (s *Session) SearchInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchInput
}

// SetSearchInput records a keystroke: the immediate layer updates now,
// the filter state only after the quiet period.
func (s *Session) SetSearchInput(v string) {
	s.mu.Lock()
	s.searchInput = v
	s.mu.Unlock()
	s.searchDeb.Update(v)
}

func (s *Session) SetStatus(isActive *bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.SetStatus(isActive)
}

func (s *Session) SetPlan(plan string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.SetPlan(plan)
}

func (s *Session) SetCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.SetCity(city)
}

func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.SetPage(page)
}

func (s *Session) SetLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.SetLimit(limit)
}

// ClearFilters resets to the initial state and clears both search
// layers, discarding any pending debounced commit.
func (s *Session) ClearFilters() {
	s.searchDeb.Cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.Clear()
	s.searchInput = ""
}

// SelectRestaurante picks the tenant whose admins the admins screen
// shows (preselectable through the restauranteId query parameter).
// Switching tenants clears both search layers and discards any pending
// debounced commit, so a keystroke typed under the previous tenant can
// never land on the new one. Re-selecting the current tenant leaves the
// search state alone.
func (s *Session) SelectRestaurante(id string) {
	s.mu.Lock()
	changed := id != s.adminSelection
	if changed {
		s.adminSelection = id
		s.adminSearchInput = ""
		s.adminSearch = ""
	}
	s.mu.Unlock()
	if changed {
		s.adminDeb.Cancel()
	}
}

// SelectedRestaurante returns the admins screen's tenant selection.
func (s *Session) SelectedRestaurante() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminSelection
}

// SetAdminSearchInput records an admins-screen search keystroke.
func (s *Session) SetAdminSearchInput(v string) {
	s.mu.Lock()
	s.adminSearchInput = v
	s.mu.Unlock()
	s.adminDeb.Update(v)
}

// AdminSearch returns the immediate and debounced admins search values.
func (s *Session) AdminSearch() (input, debounced string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminSearchInput, s.adminSearch
}
