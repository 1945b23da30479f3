package domain

import "strings"

// RestauranteAdmin is an administrator account scoped to exactly one
// restaurante. The owning restaurante id travels in the route, not on the
// object. Password is write-only: supplied on create/change-password and
// never read back.
type RestauranteAdmin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FilterAdmins applies a free-text search over a fetched admin list:
// case-insensitive substring match on name or email.
func FilterAdmins(admins []RestauranteAdmin, search string) []RestauranteAdmin {
	if search == "" {
		return admins
	}
	q := strings.ToLower(search)
	out := make([]RestauranteAdmin, 0, len(admins))
	for _, a := range admins {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Email), q) {
			out = append(out, a)
		}
	}
	return out
}
