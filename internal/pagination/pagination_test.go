package pagination

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// render turns markers into "1 … 3 [4] 5" style strings for compact assertions
func render(markers []Marker) string {
	parts := make([]string, 0, len(markers))
	for _, m := range markers {
		switch {
		case m.Ellipsis:
			parts = append(parts, "…")
		case m.Current:
			parts = append(parts, "["+strconv.Itoa(m.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(m.Page))
		}
	}
	return strings.Join(parts, " ")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           string
	}{
		{"middle of ten", 5, 10, "1 … 3 4 [5] 6 7 … 10"},
		{"first page", 1, 10, "[1] 2 3 … 10"},
		{"last page", 10, 10, "1 … 8 9 [10]"},
		{"near start joins page one", 4, 10, "1 2 3 [4] 5 6 … 10"},
		{"near end joins last page", 7, 10, "1 … 5 6 [7] 8 9 10"},
		{"single page", 1, 1, "[1]"},
		{"short listing", 2, 3, "1 [2] 3"},
		{"long gaps collapse", 50, 100, "1 … 48 49 [50] 51 52 … 100"},
		{"current clamped high", 99, 5, "1 … 3 4 [5]"},
		{"current clamped low", 0, 5, "[1] 2 3 … 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(Window(tt.current, tt.total)))
		})
	}
}

func TestWindowNoPages(t *testing.T) {
	assert.Nil(t, Window(1, 0))
}

func TestWindowNeverTwoAdjacentEllipses(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			markers := Window(current, total)
			for i := 1; i < len(markers); i++ {
				if markers[i].Ellipsis && markers[i-1].Ellipsis {
					t.Fatalf("adjacent ellipses for current=%d total=%d: %s", current, total, render(markers))
				}
			}
			assert.Equal(t, 1, markers[0].Page)
			assert.Equal(t, total, markers[len(markers)-1].Page)
		}
	}
}
