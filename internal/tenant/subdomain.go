// Package tenant resolves which restaurante a request belongs to from
// its hostname, and selects the remote API base URL for that tenant.
package tenant

import "strings"

// ExtractSubdomain returns the tenant subdomain segment of a request
// hostname, or "" when the host carries no tenant.
//
// Local development hosts ("restaurante.localhost:3000") take the first
// label as long as it is not literally "localhost". Production hosts
// need strictly more than two labels ("restaurante.restaurantes.cloud");
// a bare two-label domain always resolves to no tenant, which downstream
// base-URL selection depends on.
func ExtractSubdomain(hostname string) string {
	if IsLocalhost(hostname) {
		parts := strings.Split(hostname, ".")
		if len(parts) > 1 && parts[0] != "localhost" {
			return parts[0]
		}
		return ""
	}

	parts := strings.Split(hostname, ".")
	if len(parts) > 2 {
		return parts[0]
	}
	return ""
}

// IsLocalhost reports whether the hostname is a local development host.
func IsLocalhost(hostname string) bool {
	return strings.Contains(hostname, "localhost")
}

// BaseURL builds the remote API base URL for a tenant. A non-empty
// subdomain prepends a host label; no subdomain means the default host.
func BaseURL(scheme, apiHost, subdomain string) string {
	host := apiHost
	if subdomain != "" {
		host = subdomain + "." + apiHost
	}
	return scheme + "://" + host
}
