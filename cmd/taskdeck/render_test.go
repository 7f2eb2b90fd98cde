package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcunha/taskdeck/internal/domain"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty value", value: "", want: "-"},
		{name: "calendar date", value: "2026-09-01", want: "01/09/2026"},
		{name: "RFC3339 timestamp", value: "2026-09-01T15:04:05Z", want: "01/09/2026"},
		{name: "garbage", value: "tomorrow", want: "-"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, formatDate(tc.value))
		})
	}
}

func TestRenderTasks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderTasks(&buf, []domain.Task{
		{
			ID:        "t-1",
			Title:     "Ship the client",
			Status:    domain.StatusInProgress,
			Priority:  domain.PriorityHigh,
			DueDate:   "2026-09-01",
			UpdatedAt: "2026-08-20T10:00:00Z",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Ship the client")
	assert.Contains(t, out, "in_progress")
	assert.Contains(t, out, "01/09/2026")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2, "header plus one row")
}

func TestRenderTasksEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderTasks(&buf, nil)
	assert.Equal(t, "No tasks found.\n", buf.String())
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "long titl…", truncate("long title here", 10))
}
