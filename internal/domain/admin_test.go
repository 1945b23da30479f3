package domain

import (
	"reflect"
	"testing"
)

func TestFilterAdmins(t *testing.T) {
	admins := []RestauranteAdmin{
		{ID: "1", Name: "Juan Pérez", Email: "juan@alcarbon.com"},
		{ID: "2", Name: "María Gómez", Email: "maria@alcarbon.com"},
		{ID: "3", Name: "Pedro", Email: "pedro@lacocina.co"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty search keeps everyone", "", []string{"1", "2", "3"}},
		{"matches name case-insensitively", "JUAN", []string{"1"}},
		{"matches email substring", "alcarbon", []string{"1", "2"}},
		{"matches either field", "pedro", []string{"3"}},
		{"no matches", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAdmins(admins, tt.search)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			wantIDs := tt.want
			if len(ids) == 0 && len(wantIDs) == 0 {
				return
			}
			if !reflect.DeepEqual(ids, wantIDs) {
				t.Errorf("FilterAdmins(%q) ids = %v, want %v", tt.search, ids, wantIDs)
			}
		})
	}
}

func TestFilterAdmins_EmptySearchReturnsSameSlice(t *testing.T) {
	admins := []RestauranteAdmin{{ID: "1"}}
	got := FilterAdmins(admins, "")
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("FilterAdmins with empty search mutated result: %v", got)
	}
}
