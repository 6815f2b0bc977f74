package pkg

import (
	"strings"
	"time"
)

// SortDirection is the order applied by a Sorter.
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

// Sorter holds a {field, direction} pair for in-memory collection sorting.
//
// Selecting the field that is already active flips the direction; selecting a
// new field resets to that field's starting direction (ascending unless
// registered via StartDescending). An empty field means unsorted and every
// comparison reports equal, leaving the input order untouched under a stable
// sort.
type Sorter struct {
	field     string
	direction SortDirection
	startDesc map[string]bool
}

// NewSorter creates an unsorted Sorter.
func NewSorter() *Sorter {
	return &Sorter{startDesc: make(map[string]bool)}
}

// StartDescending registers fields whose first selection sorts descending.
func (s *Sorter) StartDescending(fields ...string) {
	for _, f := range fields {
		s.startDesc[f] = true
	}
}

// SortBy selects a sort field, flipping direction on repeated selection.
// An empty field is ignored so an unsorted Sorter stays inert.
func (s *Sorter) SortBy(field string) {
	if field == "" {
		return
	}
	if field == s.field {
		if s.direction == SortAscending {
			s.direction = SortDescending
		} else {
			s.direction = SortAscending
		}
		return
	}
	s.field = field
	s.direction = SortAscending
	if s.startDesc[field] {
		s.direction = SortDescending
	}
}

// Field returns the active sort field, empty when unsorted.
func (s *Sorter) Field() string { return s.field }

// Direction returns the active sort direction.
func (s *Sorter) Direction() SortDirection { return s.direction }

// Sorted reports whether a sort field is active.
func (s *Sorter) Sorted() bool { return s.field != "" }

// Compare orders two string values case-insensitively under the active
// direction. It reports 0 when unsorted.
func (s *Sorter) Compare(a, b string) int {
	if !s.Sorted() {
		return 0
	}
	return s.oriented(strings.Compare(strings.ToLower(a), strings.ToLower(b)))
}

// CompareTimes orders two timestamps under the active direction. Raw
// time.Time values are compared; the dashboard compared display-formatted
// strings, which mis-sorts across year boundaries, so that behavior is not
// carried over.
func (s *Sorter) CompareTimes(a, b time.Time) int {
	if !s.Sorted() {
		return 0
	}
	return s.oriented(a.Compare(b))
}

func (s *Sorter) oriented(cmp int) int {
	if s.direction == SortDescending {
		return -cmp
	}
	return cmp
}
