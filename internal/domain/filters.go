package domain

import (
	"net/url"
	"strconv"
)

// Default pagination for the restaurantes screen.
const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// Filters is the ephemeral filter/pagination state of a list screen.
// Absent optional fields mean "no constraint"; nothing here survives the
// session. Every transition except SetPage resets the page to 1.
type Filters struct {
	Page             int    `json:"page"`
	Limit            int    `json:"limit"`
	Search           string `json:"search,omitempty"`
	IsActive         *bool  `json:"isActive,omitempty"`
	SubscriptionPlan string `json:"subscriptionPlan,omitempty"`
	City             string `json:"city,omitempty"`
}

// NewFilters returns the initial filter state.
func NewFilters() Filters {
	return Filters{Page: DefaultPage, Limit: DefaultLimit}
}

func (f Filters) SetSearch(search string) Filters {
	f.Search = search
	f.Page = DefaultPage
	return f
}

func (f Filters) SetStatus(isActive *bool) Filters {
	f.IsActive = isActive
	f.Page = DefaultPage
	return f
}

func (f Filters) SetPlan(plan string) Filters {
	f.SubscriptionPlan = plan
	f.Page = DefaultPage
	return f
}

func (f Filters) SetCity(city string) Filters {
	f.City = city
	f.Page = DefaultPage
	return f
}

func (f Filters) SetPage(page int) Filters {
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

func (f Filters) SetLimit(limit int) Filters {
	if limit < 1 {
		limit = DefaultLimit
	}
	f.Limit = limit
	f.Page = DefaultPage
	return f
}

// Clear resets to the initial state. Idempotent.
func (f Filters) Clear() Filters {
	return NewFilters()
}

// ActiveCount reports how many constraints beyond pagination are set.
func (f Filters) ActiveCount() int {
	n := 0
	if f.Search != "" {
		n++
	}
	if f.IsActive != nil {
		n++
	}
	if f.SubscriptionPlan != "" {
		n++
	}
	if f.City != "" {
		n++
	}
	return n
}

// Values encodes the filter state as request query parameters, omitting
// unset constraints.
func (f Filters) Values() url.Values {
	v := url.Values{}
	page := f.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.IsActive != nil {
		v.Set("isActive", strconv.FormatBool(*f.IsActive))
	}
	if f.SubscriptionPlan != "" {
		v.Set("subscriptionPlan", f.SubscriptionPlan)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	return v
}

// CacheKey is the canonical encoding of the filter state used as a cache
// key segment. url.Values.Encode sorts keys, so equal states always
// produce equal strings.
func (f Filters) CacheKey() string {
	return f.Values().Encode()
}

// PaginatedResponse is the page envelope the remote API returns for list
// endpoints. data.length <= limit and page <= totalPages are the
// server's responsibility, not validated here.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
