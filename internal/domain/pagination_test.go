package domain

import (
	"reflect"
	"testing"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no pages", 1, 0, nil},
		{"single page", 1, 1, []int{1}},
		{"fewer pages than window", 2, 3, []int{1, 2, 3}},
		{"exactly five pages", 4, 5, []int{1, 2, 3, 4, 5}},
		{"near start clamps left", 2, 10, []int{1, 2, 3, 4, 5}},
		{"start boundary", 3, 10, []int{1, 2, 3, 4, 5}},
		{"centered in the middle", 6, 10, []int{4, 5, 6, 7, 8}},
		{"near end clamps right", 9, 10, []int{6, 7, 8, 9, 10}},
		{"end boundary", 8, 10, []int{6, 7, 8, 9, 10}},
		{"last page", 10, 10, []int{6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageWindow(tt.current, tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PageWindow(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}
