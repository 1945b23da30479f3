package backend

import (
	"encoding/json"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

// adminListWrappers are the known wrapper keys for admin list payloads,
// tried in priority order after a bare top-level array. The order is
// behavior, not style: the first wrapper holding an array wins.
var adminListWrappers = []string{"data", "admins", "items", "results"}

// NormalizeAdminList decodes the heterogeneous list shapes the platform
// API returns into a plain slice. Unrecognized or malformed payloads
// normalize to an empty slice rather than failing.
func NormalizeAdminList(payload []byte) []domain.RestauranteAdmin {
	var bare []domain.RestauranteAdmin
	if err := json.Unmarshal(payload, &bare); err == nil {
		if bare == nil {
			return []domain.RestauranteAdmin{}
		}
		return bare
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return []domain.RestauranteAdmin{}
	}

	for _, key := range adminListWrappers {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		var list []domain.RestauranteAdmin
		if err := json.Unmarshal(raw, &list); err == nil && list != nil {
			return list
		}
	}

	return []domain.RestauranteAdmin{}
}
