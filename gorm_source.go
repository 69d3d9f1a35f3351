package goiter

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"
)

// GormSource adapts a gorm query into a PageSource using OFFSET/LIMIT
// windows under a deterministic ordering. A deterministic ordering keeps
// page boundaries stable between fetches, which is what lets a paged
// iterator consume the dataset from both ends.
//
// Totals are snapshotted once at construction; the dataset is expected to
// stay stable for the source's lifetime.
type GormSource[T any] struct {
	db          *gorm.DB
	pageSize    int
	sort        Orderings
	total       int
	isTransient func(error) bool
}

// NewGormSource builds a source over the model table of T. At least one
// ordering is required; NormalizePageSize is applied to pageSize. The total
// record count is queried immediately.
func NewGormSource[T any](db *gorm.DB, pageSize int, orderBy ...OrderBy) (*GormSource[T], error) {
	sort := Orderings(orderBy)

	err := sort.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot build gorm source: %w", err)
	}

	var (
		model T
		total int64
	)
	err = db.Session(&gorm.Session{}).Model(&model).Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("cannot count gorm source records: %w", err)
	}

	return &GormSource[T]{
		db:          db,
		pageSize:    NormalizePageSize(pageSize),
		sort:        sort,
		total:       int(total),
		isTransient: isTransientSQLError,
	}, nil
}

// WithTransientCheck overrides the classifier deciding which query errors
// are retryable. Matching errors are wrapped in ErrTransient so the paged
// iterator's retry loop recovers them; everything else propagates as fatal.
func (s *GormSource[T]) WithTransientCheck(check func(error) bool) *GormSource[T] {
	if check != nil {
		s.isTransient = check
	}

	return s
}

// GetPage - implements PageSource. Runs one windowed query.
func (s *GormSource[T]) GetPage(index int) ([]T, error) {
	if index < 0 || index >= s.GetNumPages() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, s.GetNumPages())
	}

	var (
		model T
		page  []T
	)
	err := s.sort.Apply(s.db.Session(&gorm.Session{}).Model(&model)).
		Offset(index * s.pageSize).
		Limit(s.pageSize).
		Find(&page).Error
	if err != nil {
		if s.isTransient(err) {
			return nil, fmt.Errorf("page %d query failed: %v: %w", index, err, ErrTransient)
		}

		return nil, fmt.Errorf("page %d query failed: %w", index, err)
	}

	return page, nil
}

// GetNumPages - implements PageSource.
func (s *GormSource[T]) GetNumPages() int {
	return (s.total + s.pageSize - 1) / s.pageSize
}

// GetNumRecords - implements PageSource.
func (s *GormSource[T]) GetNumRecords() int {
	return s.total
}

// GetSort returns the orderings applied to every page query.
func (s *GormSource[T]) GetSort() Orderings {
	if s == nil {
		return nil
	}

	return s.sort
}

// isTransientSQLError is the default transient classifier: dropped
// connections and timeouts deserve a retry, everything else does not.
func isTransientSQLError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

var _ PageSource[any] = (*GormSource[any])(nil)
