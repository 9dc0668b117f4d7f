package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/db"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/repository"
	"github.com/google/uuid"
)

type workItemService struct {
	workItems repository.WorkItemRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

// NewWorkItemService wires the item use cases. uow may be nil when the
// caller never commits drafts.
func NewWorkItemService(workItems repository.WorkItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) WorkItemService {
	return &workItemService{
		workItems: workItems,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := s.now()
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Status == "" {
		w.Status = domain.WorkItemTodo
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if w.RowIndex < 0 {
		row, err := s.workItems.NextRowIndex(ctx)
		if err != nil {
			return err
		}
		w.RowIndex = row
	}
	return s.workItems.Create(ctx, w)
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.workItems.GetByID(ctx, id)
}

func (s *workItemService) List(ctx context.Context) (items []*domain.WorkItem, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "list-items",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"count": len(items)},
		})
	}()
	return s.workItems.List(ctx)
}

func (s *workItemService) Delete(ctx context.Context, id string) error {
	return s.workItems.Delete(ctx, id)
}

func (s *workItemService) Reschedule(ctx context.Context, id string, start, end domain.Date) (*domain.WorkItem, error) {
	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := w.Reschedule(start, end, s.now()); err != nil {
		return nil, err
	}
	if err := s.workItems.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workItemService) CommitDrafts(ctx context.Context, drafts []domain.WorkItem) (changed int, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "commit-drafts",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"drafts": len(drafts), "changed": changed},
		})
	}()

	if s.uow == nil {
		return 0, fmt.Errorf("committing drafts: no unit of work configured")
	}
	for i := range drafts {
		if drafts[i].Start.After(drafts[i].End) {
			return 0, fmt.Errorf("draft %s: %w", drafts[i].ID, domain.ErrInvertedRange)
		}
	}

	n := 0
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteWorkItemRepo(tx)
		for i := range drafts {
			d := &drafts[i]
			stored, err := repo.GetByID(ctx, d.ID)
			if err != nil {
				return err
			}
			if stored.SameDates(d) {
				continue
			}
			if err := repo.UpdateDates(ctx, d.ID, d.Start, d.End); err != nil {
				return fmt.Errorf("draft %s: %w", d.ID, err)
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
