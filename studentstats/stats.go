package studentstats

import (
	"fmt"

	"github.com/Alp4ka/goiter"
)

// Stats exposes lazy queries over a student page source. Every query builds
// a fresh paged iterator, so queries are independent and each one pulls only
// the pages its consumption actually demands.
type Stats struct {
	list    goiter.PageSource[Student]
	retries int
}

func NewStats(list goiter.PageSource[Student]) *Stats {
	return &Stats{
		list:    list,
		retries: goiter.DefaultRetries,
	}
}

// WithRetries sets the per-fetch retry quota used by all queries. Values
// below 1 fall back to goiter.DefaultRetries.
func (s *Stats) WithRetries(retries int) *Stats {
	if retries < 1 {
		retries = goiter.DefaultRetries
	}

	s.retries = retries

	return s
}

func (s *Stats) paged() goiter.DoubleEnded[Student] {
	return goiter.NewPagedIterator(s.list).WithRetries(s.retries)
}

// All returns a lazy iterator over every student, oldest first.
func (s *Stats) All() goiter.DoubleEnded[Student] {
	return s.paged()
}

// Newest returns a lazy iterator over every student, newest first. No
// sorting happens: the paged iterator is simply consumed from the back.
func (s *Stats) Newest() goiter.Iterator[Student] {
	return goiter.Reversed(s.paged())
}

// NewestByUnit returns the students of the given unit, newest first.
func (s *Stats) NewestByUnit(unit string) goiter.Iterator[Student] {
	return goiter.Filter(goiter.Reversed(s.paged()), func(st Student) bool {
		return st.EnrolledIn(unit)
	})
}

// LatestEnrolled returns at most n students of the given unit, newest first.
func (s *Stats) LatestEnrolled(unit string, n int) goiter.Iterator[Student] {
	return goiter.Take(s.NewestByUnit(unit), n)
}

// RankedStudent pairs a student with their 1-based position in a
// newest-first listing of a unit.
type RankedStudent struct {
	Rank    int
	Student Student
}

// RankedByUnit numbers NewestByUnit results starting from 1. The rank side
// is an unbounded counter; zip's shortest-wins rule terminates it.
func (s *Stats) RankedByUnit(unit string) goiter.Iterator[RankedStudent] {
	return goiter.Zip(s.NewestByUnit(unit), newRankCounter(), func(st Student, rank int) RankedStudent {
		return RankedStudent{
			Rank:    rank,
			Student: st,
		}
	})
}

// AverageWAM computes the mean WAM over all students. An empty population is
// an error.
func (s *Stats) AverageWAM() (float64, error) {
	return averageWAM(goiter.Map[Student, float64](s.All(), studentWAM))
}

// UnitAverageWAM computes the mean WAM over the students of one unit.
func (s *Stats) UnitAverageWAM(unit string) (float64, error) {
	return averageWAM(goiter.Map(s.NewestByUnit(unit), studentWAM))
}

func studentWAM(st Student) float64 {
	return st.WAM
}

type wamAccumulator struct {
	sum   float64
	count int
}

// averageWAM drains it with a single fold accumulating sum and count
// together.
func averageWAM(it goiter.Iterator[float64]) (float64, error) {
	acc, err := goiter.Reduce(it, wamAccumulator{}, func(acc wamAccumulator, wam float64) wamAccumulator {
		return wamAccumulator{
			sum:   acc.sum + wam,
			count: acc.count + 1,
		}
	})
	if err != nil {
		return 0, err
	}

	if acc.count == 0 {
		return 0, fmt.Errorf("cannot average an empty population")
	}

	return acc.sum / float64(acc.count), nil
}

// rankCounter iterates 1, 2, 3... without end.
type rankCounter struct {
	next int
}

func newRankCounter() *rankCounter {
	return &rankCounter{next: 1}
}

func (r *rankCounter) HasNext() bool {
	return true
}

func (r *rankCounter) Next() (int, error) {
	n := r.next
	r.next++

	return n, nil
}

var _ goiter.Iterator[int] = (*rankCounter)(nil)
