package domain

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"
)

// Subscription plans
const (
	PlanBasico     = "BASICO"
	PlanPro        = "PRO"
	PlanEnterprise = "ENTERPRISE"
)

var (
	validPlans = map[string]bool{
		PlanBasico:     true,
		PlanPro:        true,
		PlanEnterprise: true,
	}

	subdomainRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Defaults applied on restaurante creation when the operator leaves the
// field blank.
const (
	DefaultCountry      = "Colombia"
	DefaultTimezone     = "AMERICA_BOGOTA"
	DefaultPrimaryColor = "#3B82F6"
)

// DefaultActiveModules returns the module set new restaurantes start with.
func DefaultActiveModules() []string {
	return []string{"reservas", "pedidos", "pqrs"}
}

// Restaurante is one tenant of the platform. All fields are owned by the
// remote API; this service only holds transient cached copies.
type Restaurante struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Subdomain        string    `json:"subdomain"`
	NIT              string    `json:"nit"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	Country          string    `json:"country"`
	Timezone         string    `json:"timezone"`
	Logo             *string   `json:"logo"`
	PrimaryColor     string    `json:"primaryColor"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	UnitLimit        int       `json:"unitLimit"`
	PlanExpiresAt    string    `json:"planExpiresAt"`
	ActiveModules    string    `json:"activeModules"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	IsActive         bool      `json:"isActive"`
}

// IsValidPlan reports whether plan is one of the known subscription plans.
func IsValidPlan(plan string) bool {
	return validPlans[plan]
}

// IsValidSubdomain reports whether s is a usable tenant subdomain
// (lowercase letters, digits and hyphens only).
func IsValidSubdomain(s string) bool {
	return subdomainRegex.MatchString(s)
}

// ErrInvalidModules is returned by ParseModules for non-empty input that
// is neither a JSON array nor a comma-separated list.
var ErrInvalidModules = errors.New("activeModules must be a JSON array or a comma-separated list")

// ParseModules accepts the module list the way operators type it: either
// a JSON array literal (`["reservas","pedidos"]`) or a comma-separated
// list (`reservas,pedidos`). Empty input yields nil with no error;
// malformed non-empty input is rejected rather than silently dropped.
func ParseModules(input string) ([]string, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return nil, nil
	}

	if strings.HasPrefix(value, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(value), &arr); err != nil {
			return nil, ErrInvalidModules
		}
		return arr, nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}
