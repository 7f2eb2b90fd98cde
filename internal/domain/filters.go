package domain

import "net/url"

// Filters is the query descriptor for listing tasks. It is a pure
// value: empty fields are simply not sent to the server.
type Filters struct {
	Status   TaskStatus
	Priority TaskPriority
	Title    string
	DueDate  string
}

// IsZero reports whether no filter field is set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// QueryValues encodes the filters as URL query parameters. Unset or
// empty fields are omitted entirely, never sent as empty strings.
func (f Filters) QueryValues() url.Values {
	values := url.Values{}
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if f.Priority != "" {
		values.Set("priority", string(f.Priority))
	}
	if f.Title != "" {
		values.Set("title", f.Title)
	}
	if f.DueDate != "" {
		values.Set("dueDate", f.DueDate)
	}
	return values
}
