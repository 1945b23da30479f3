package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

const testDebounce = 20 * time.Millisecond

func settle() { time.Sleep(4 * testDebounce) }

func TestSession_SearchTwoLayers(t *testing.T) {
	s := newSession(testDebounce)

	s.SetSearchInput("al")
	s.SetSearchInput("alc")
	s.SetSearchInput("alcarbon")

	// Input layer updates immediately, filters only after the quiet
	// period.
	assert.Equal(t, "alcarbon", s.SearchInput())
	assert.Equal(t, "", s.Filters().Search)

	settle()
	assert.Equal(t, "alcarbon", s.Filters().Search)
	assert.Equal(t, 1, s.Filters().Page)
}

func TestSession_SearchTrimsWhitespace(t *testing.T) {
	s := newSession(testDebounce)
	s.SetSearchInput("  tacos  ")
	settle()
	assert.Equal(t, "tacos", s.Filters().Search)
}

func TestSession_ClearDiscardsPendingSearch(t *testing.T) {
	s := newSession(testDebounce)
	s.SetPage(3)
	s.SetSearchInput("pending")
	s.ClearFilters()
	settle()

	assert.Equal(t, domain.NewFilters(), s.Filters())
	assert.Equal(t, "", s.SearchInput())
}

func TestSession_FilterTransitionsResetPage(t *testing.T) {
	s := newSession(testDebounce)
	s.SetPage(4)

	active := true
	s.SetStatus(&active)
	assert.Equal(t, 1, s.Filters().Page)

	s.SetPage(4)
	s.SetPlan(domain.PlanPro)
	assert.Equal(t, 1, s.Filters().Page)

	s.SetPage(4)
	s.SetCity("Bogota")
	assert.Equal(t, 1, s.Filters().Page)

	s.SetPage(4)
	s.SetLimit(10)
	assert.Equal(t, 1, s.Filters().Page)
}

func TestSession_SelectRestauranteResetsAdminSearch(t *testing.T) {
	s := newSession(testDebounce)

	s.SelectRestaurante("rest-1")
	s.SetAdminSearchInput("maria")
	settle()

	input, debounced := s.AdminSearch()
	assert.Equal(t, "maria", input)
	assert.Equal(t, "maria", debounced)

	s.SelectRestaurante("rest-2")
	input, debounced = s.AdminSearch()
	assert.Equal(t, "", input)
	assert.Equal(t, "", debounced)
	assert.Equal(t, "rest-2", s.SelectedRestaurante())

	// Reselecting the same tenant keeps the search.
	s.SetAdminSearchInput("pedro")
	settle()
	s.SelectRestaurante("rest-2")
	_, debounced = s.AdminSearch()
	assert.Equal(t, "pedro", debounced)
}

func TestSession_SelectRestauranteDiscardsPendingAdminSearch(t *testing.T) {
	s := newSession(testDebounce)

	// A keystroke typed under one tenant must not commit into the next
	// tenant's search after the quiet period.
	s.SelectRestaurante("rest-1")
	s.SetAdminSearchInput("maria")
	s.SelectRestaurante("rest-2")
	settle()

	input, debounced := s.AdminSearch()
	assert.Equal(t, "", input)
	assert.Equal(t, "", debounced)
}

func TestSession_ReselectKeepsPendingAdminSearch(t *testing.T) {
	s := newSession(testDebounce)

	// List refreshes re-select the current tenant; that must not kill an
	// in-flight debounce.
	s.SelectRestaurante("rest-1")
	s.SetAdminSearchInput("maria")
	s.SelectRestaurante("rest-1")
	settle()

	_, debounced := s.AdminSearch()
	assert.Equal(t, "maria", debounced)
}

func TestManager_GetCreatesAndReuses(t *testing.T) {
	m := NewManager(time.Minute, testDebounce)

	a := m.Get("sid-a")
	a.SetPage(2)

	assert.Same(t, a, m.Get("sid-a"))
	assert.Equal(t, 2, m.Get("sid-a").Filters().Page)

	b := m.Get("sid-b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 1, b.Filters().Page)
	assert.Equal(t, 2, m.Len())
}

func TestManager_GetConcurrentFirstUse(t *testing.T) {
	m := NewManager(time.Minute, testDebounce)

	// Concurrent first requests for the same id must resolve to one
	// session; a second Session would silently drop the other's state.
	results := make([]*Session, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Get("sid-shared")
		}(i)
	}
	wg.Wait()

	for _, s := range results[1:] {
		assert.Same(t, results[0], s)
	}
	assert.Equal(t, 1, m.Len())
}

func TestManager_SessionsExpire(t *testing.T) {
	m := NewManager(30*time.Millisecond, testDebounce)

	a := m.Get("sid")
	a.SetPage(5)
	time.Sleep(60 * time.Millisecond)

	// A fresh session comes back after expiry.
	assert.Equal(t, 1, m.Get("sid").Filters().Page)
}
