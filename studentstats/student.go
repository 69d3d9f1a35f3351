// Package studentstats answers queries over a paged student record source
// without ever materializing the full student list.
package studentstats

import "github.com/samber/lo"

// Student is one student record as served by the source. Sources hand
// records out in increasing-ID order, so "newest" means "closest to the
// back" and reversal replaces sorting.
type Student struct {
	ID    int64
	Name  string
	Units []string
	WAM   float64
}

// EnrolledIn reports whether the student takes the given unit.
func (s Student) EnrolledIn(unit string) bool {
	return lo.Contains(s.Units, unit)
}
