package cli

import (
	"context"
	"math"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/domain"
)

// chartSettings are the per-invocation overrides of the configured chart.
type chartSettings struct {
	Zoom          domain.ZoomLevel
	Anchor        domain.Date
	ViewportWidth float64
}

// newChart loads every work item and builds a chart over them.
func newChart(ctx context.Context, app *App, s chartSettings) (*chart.Chart, error) {
	items, err := app.WorkItems.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildChart(app, s, itemValues(items)), nil
}

func buildChart(app *App, s chartSettings, items []domain.WorkItem) *chart.Chart {
	if s.Zoom == "" {
		s.Zoom = app.Config.Zoom
	}
	return chart.New(chart.Config{
		Zoom:          s.Zoom,
		Anchor:        s.Anchor,
		Today:         app.Config.TodayOrNow(),
		ViewportWidth: s.ViewportWidth,
		ScrollFrames:  app.Config.ScrollFrames,
		Observer:      app.ChartObserver,
	}, items, nil)
}

func itemValues(items []*domain.WorkItem) []domain.WorkItem {
	out := make([]domain.WorkItem, len(items))
	for i, w := range items {
		out[i] = *w
	}
	return out
}

// centerOn scrolls c without animation so d sits mid-viewport.
func centerOn(c *chart.Chart, d domain.Date) {
	x := c.Mapper().DateToPixel(d)
	c.Pane().ScrollTo(math.Max(0, x-c.Pane().ViewportWidth()/2), false)
}
