package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

func TestNormalizeAdminList(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{
			name:    "bare array",
			payload: `[{"id":"1","name":"Juan","email":"j@x.co"}]`,
			want:    []string{"1"},
		},
		{
			name:    "data wrapper",
			payload: `{"data":[{"id":"2"}]}`,
			want:    []string{"2"},
		},
		{
			name:    "admins wrapper",
			payload: `{"admins":[{"id":"3"}]}`,
			want:    []string{"3"},
		},
		{
			name:    "items wrapper",
			payload: `{"items":[{"id":"4"}]}`,
			want:    []string{"4"},
		},
		{
			name:    "results wrapper",
			payload: `{"results":[{"id":"5"}]}`,
			want:    []string{"5"},
		},
		{
			name:    "data wins over admins",
			payload: `{"admins":[{"id":"loser"}],"data":[{"id":"winner"}]}`,
			want:    []string{"winner"},
		},
		{
			name:    "admins wins over items",
			payload: `{"items":[{"id":"loser"}],"admins":[{"id":"winner"}]}`,
			want:    []string{"winner"},
		},
		{
			name:    "unrecognized shape",
			payload: `{"total":3}`,
			want:    []string{},
		},
		{
			name:    "wrapper holding non-array",
			payload: `{"data":"nope"}`,
			want:    []string{},
		},
		{
			name:    "empty bare array",
			payload: `[]`,
			want:    []string{},
		},
		{
			name:    "null payload",
			payload: `null`,
			want:    []string{},
		},
		{
			name:    "malformed json",
			payload: `{"data":[`,
			want:    []string{},
		},
		{
			name:    "scalar payload",
			payload: `42`,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAdminList([]byte(tt.payload))
			assert.NotNil(t, got)

			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNormalizeAdminList_KeepsFields(t *testing.T) {
	got := NormalizeAdminList([]byte(`{"admins":[{"id":"1","name":"Juan Pérez","email":"juan@alcarbon.com"}]}`))
	assert.Equal(t, []domain.RestauranteAdmin{
		{ID: "1", Name: "Juan Pérez", Email: "juan@alcarbon.com"},
	}, got)
}
