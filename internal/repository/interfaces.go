package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/gantt/internal/domain"
)

// ErrNotFound is returned when a lookup by ID matches no row.
var ErrNotFound = errors.New("not found")

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	// List returns every item ordered by row index, then creation time.
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	// UpdateDates writes only the date range, leaving every other column alone.
	UpdateDates(ctx context.Context, id string, start, end domain.Date) error
	Delete(ctx context.Context, id string) error
	// NextRowIndex returns the lane a newly added item should occupy.
	NextRowIndex(ctx context.Context) (int, error)
}
