// Package query is the data-fetch/cache layer: composite cache keys,
// a TTL store with request de-duplication, prefix invalidation and
// last-request-wins ordering, plus the search debouncer.
package query

import "strings"

// keySep joins key segments. The unit separator cannot appear in
// resource names, ids or url-encoded filter strings, so joined keys
// never collide across segment boundaries.
const keySep = "\x1f"

// Key is a composite cache key: a resource name plus the id/filter
// segments that scope it, e.g. {"restaurantes", "<filters>"} or
// {"restaurantes", id, "admins", "<search>"}.
type Key []string

func NewKey(parts ...string) Key {
	return Key(parts)
}

func (k Key) String() string {
	return strings.Join(k, keySep)
}

// HasPrefix reports whether k starts with every segment of prefix.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, p := range prefix {
		if k[i] != p {
			return false
		}
	}
	return true
}

// matchesPrefix is HasPrefix on the joined string form.
func matchesPrefix(joined string, prefix Key) bool {
	p := prefix.String()
	return joined == p || strings.HasPrefix(joined, p+keySep)
}
