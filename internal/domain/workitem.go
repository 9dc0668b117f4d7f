package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvertedRange = errors.New("start date is after end date")
	ErrEmptyTitle    = errors.New("title is required")
	ErrProgressRange = errors.New("progress must be between 0 and 100")
	ErrInvalidColor  = errors.New("color must be #rrggbb")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #rrggbb color. Empty means "use the
// status default" and is valid.
func ValidColor(s string) bool {
	return s == "" || hexColor.MatchString(s)
}

// WorkItem is a schedulable unit rendered as one bar on the timeline.
type WorkItem struct {
	ID    string
	Title string

	// Inclusive date range; Start never follows End.
	Start Date
	End   Date

	// RowIndex is the lane the bar is drawn in. It is fixed at load time by
	// the item's position in the list the host supplies.
	RowIndex int

	Status      WorkItemStatus
	StatusColor string
	Progress    int // percent complete

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants every stored or rendered item must satisfy.
func (w *WorkItem) Validate() error {
	if strings.TrimSpace(w.Title) == "" {
		return ErrEmptyTitle
	}
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("item %q: start and end dates are required", w.Title)
	}
	if w.Start.After(w.End) {
		return fmt.Errorf("item %q: %w (%s > %s)", w.Title, ErrInvertedRange, w.Start, w.End)
	}
	if w.Progress < 0 || w.Progress > 100 {
		return ErrProgressRange
	}
	if !ValidColor(w.StatusColor) {
		return fmt.Errorf("item %q: %w (got %q)", w.Title, ErrInvalidColor, w.StatusColor)
	}
	return nil
}

// DurationDays returns the inclusive number of days the item spans.
func (w *WorkItem) DurationDays() int {
	return w.Start.DaysUntil(w.End) + 1
}

// Color returns StatusColor, falling back to the status default.
func (w *WorkItem) Color() string {
	if w.StatusColor != "" {
		return w.StatusColor
	}
	return DefaultStatusColor(w.Status)
}

// Reschedule replaces the item's dates, refusing inverted ranges.
func (w *WorkItem) Reschedule(start, end Date, now time.Time) error {
	if start.After(end) {
		return fmt.Errorf("rescheduling %q: %w", w.Title, ErrInvertedRange)
	}
	w.Start = start
	w.End = end
	w.UpdatedAt = now
	return nil
}

// Shift moves both dates by days, keeping the duration.
func (w *WorkItem) Shift(days int, now time.Time) {
	w.Start = w.Start.AddDays(days)
	w.End = w.End.AddDays(days)
	w.UpdatedAt = now
}

// SameDates reports whether two items cover the same range.
func (w *WorkItem) SameDates(other *WorkItem) bool {
	return w.Start == other.Start && w.End == other.End
}
