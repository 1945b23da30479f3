package domain

// RoleSuperAdmin is the only role allowed to manage tenants.
const RoleSuperAdmin = "SUPERADMIN"

// Identity is the caller identity the auth proxy asserts through
// x-user-* headers. The dashboard trusts these headers; it never
// authenticates users itself.
type Identity struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (i Identity) IsSuperAdmin() bool {
	return i.Role == RoleSuperAdmin
}
