package testutil

import (
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference clock used by fixtures; tests that need a stable
// "today" should use FixedToday.
var (
	FixedNow   = time.Date(2025, time.September, 20, 9, 0, 0, 0, time.UTC)
	FixedToday = domain.DateOf(FixedNow)
)

// WorkItem options
type WorkItemOption func(*domain.WorkItem)

func WithDates(start, end string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Start = domain.MustParseDate(start)
		w.End = domain.MustParseDate(end)
	}
}

func WithRow(row int) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.RowIndex = row
	}
}

func WithStatus(s domain.WorkItemStatus) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Status = s
	}
}

func WithColor(c string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.StatusColor = c
	}
}

func WithProgress(p int) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Progress = p
	}
}

func WithID(id string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.ID = id
	}
}

// NewTestWorkItem builds a five-day item starting on FixedToday.
func NewTestWorkItem(title string, opts ...WorkItemOption) *domain.WorkItem {
	w := &domain.WorkItem{
		ID:        uuid.New().String(),
		Title:     title,
		Start:     FixedToday,
		End:       FixedToday.AddDays(4),
		Status:    domain.WorkItemTodo,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewTestWorkItems builds one item per title on consecutive rows.
func NewTestWorkItems(titles ...string) []*domain.WorkItem {
	items := make([]*domain.WorkItem, 0, len(titles))
	for i, title := range titles {
		items = append(items, NewTestWorkItem(title, WithRow(i)))
	}
	return items
}
