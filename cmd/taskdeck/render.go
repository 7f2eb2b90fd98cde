package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/gcunha/taskdeck/internal/domain"
)

// renderTasks prints the task list as a table.
func renderTasks(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE\tUPDATED")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			truncate(task.Title, 48),
			task.Status,
			task.Priority,
			formatDate(task.DueDate),
			formatDate(task.UpdatedAt))
	}
	_ = tw.Flush()
}

// Accepted timestamp layouts: full RFC 3339 from the server, or a bare
// calendar date for due dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// formatDate renders a wire timestamp as dd/mm/yyyy, or "-" when the
// value is absent or unparseable.
func formatDate(value string) string {
	if value == "" {
		return "-"
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("02/01/2006")
		}
	}
	return "-"
}

// truncate shortens s to at most n runes with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
