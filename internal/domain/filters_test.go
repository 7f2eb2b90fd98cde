package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltersQueryValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters Filters
		want    string
	}{
		{
			name:    "empty filters produce empty query",
			filters: Filters{},
			want:    "",
		},
		{
			name:    "only set fields appear",
			filters: Filters{Status: StatusCompleted, Title: "API"},
			want:    "status=completed&title=API",
		},
		{
			name: "all fields set",
			filters: Filters{
				Status:   StatusPending,
				Priority: PriorityLow,
				Title:    "report",
				DueDate:  "2026-09-01",
			},
			want: "dueDate=2026-09-01&priority=low&status=pending&title=report",
		},
		{
			name:    "title only",
			filters: Filters{Title: "groceries"},
			want:    "title=groceries",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.filters.QueryValues().Encode())
		})
	}
}

func TestFiltersIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{Title: "x"}.IsZero())
}
