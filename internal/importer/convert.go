package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated schema into work items. Lanes follow file
// order starting at firstRow. Call Validate first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema, firstRow int) ([]*domain.WorkItem, error) {
	now := time.Now().UTC()
	items := make([]*domain.WorkItem, 0, len(schema.Items))

	for i, it := range schema.Items {
		start, err := domain.ParseDate(it.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing items[%d].start: %w", i, err)
		}
		end, err := domain.ParseDate(it.End)
		if err != nil {
			return nil, fmt.Errorf("parsing items[%d].end: %w", i, err)
		}

		w := &domain.WorkItem{
			ID:          it.ID,
			Title:       it.Title,
			Start:       start,
			End:         end,
			RowIndex:    firstRow + i,
			Status:      domain.WorkItemStatus(it.Status),
			StatusColor: it.Color,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
		if w.Status == "" {
			w.Status = domain.WorkItemTodo
		}
		if it.Progress != nil {
			w.Progress = *it.Progress
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, w)
	}
	return items, nil
}
