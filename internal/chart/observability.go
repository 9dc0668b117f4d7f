package chart

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/interaction"
)

// DragOutcome says how a drag session ended.
type DragOutcome string

const (
	DragCommitted DragOutcome = "committed"
	DragCancelled DragOutcome = "cancelled"
	DragRejected  DragOutcome = "rejected"
)

// DragEvent captures one finished (or refused) drag session.
type DragEvent struct {
	ItemID  string
	Mode    interaction.Mode
	Outcome DragOutcome
	From    [2]domain.Date
	To      [2]domain.Date
	Zoom    domain.ZoomLevel
}

// Observer receives chart interaction events.
type Observer interface {
	ObserveDrag(ctx context.Context, event DragEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveDrag(context.Context, DragEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes drag events to w as structured text.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveDrag(ctx context.Context, e DragEvent) {
	attrs := []any{
		"item_id", e.ItemID,
		"mode", e.Mode.String(),
		"outcome", string(e.Outcome),
		"zoom", string(e.Zoom),
		"from_start", e.From[0].String(),
		"from_end", e.From[1].String(),
		"to_start", e.To[0].String(),
		"to_end", e.To[1].String(),
	}
	if e.Outcome == DragRejected {
		o.logger.WarnContext(ctx, "chart_drag", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "chart_drag", attrs...)
}
