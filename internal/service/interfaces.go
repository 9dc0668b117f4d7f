package service

import (
	"context"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/importer"
)

type WorkItemService interface {
	// Create assigns ID and timestamps. A negative RowIndex is replaced by
	// the next free lane.
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Delete(ctx context.Context, id string) error
	// Reschedule replaces an item's dates, refusing start after end.
	Reschedule(ctx context.Context, id string, start, end domain.Date) (*domain.WorkItem, error)
	// CommitDrafts persists the dates of every draft that differs from the
	// stored item, all in one transaction, and returns how many changed.
	CommitDrafts(ctx context.Context, drafts []domain.WorkItem) (int, error)
}

// ImportResult holds the outcome of an item import.
type ImportResult struct {
	Items []*domain.WorkItem
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
