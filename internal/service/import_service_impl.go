package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/db"
	"github.com/alexanderramin/gantt/internal/importer"
	"github.com/alexanderramin/gantt/internal/repository"
)

type importService struct {
	workItems repository.WorkItemRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewImportService(workItems repository.WorkItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		workItems: workItems,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema appends the schema's items below the existing lanes. Either
// every item is stored or none is.
func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"items": len(schema.Items)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-items",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := importer.Join(importer.Validate(schema)); err != nil {
		return nil, err
	}

	firstRow, err := s.workItems.NextRowIndex(ctx)
	if err != nil {
		return nil, err
	}
	items, err := importer.Convert(schema, firstRow)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteWorkItemRepo(tx)
		for _, w := range items {
			if err := repo.Create(ctx, w); err != nil {
				return fmt.Errorf("creating work item %q: %w", w.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["first_row"] = firstRow
	return &ImportResult{Items: items}, nil
}
