package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/teatest"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChartDriver opens the chart view at 100x20 and drains the initial load.
func newChartDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newChartModel(app, tuiOptions{}), teatest.WithSize(100, 20))
	d.DrainInit()
	return d
}

func chartOf(d *teatest.Driver) chartModel {
	return d.Model.(chartModel)
}

// barCols returns the terminal columns of the first, middle and last cell
// of the bar in lane row.
func barCols(t *testing.T, d *teatest.Driver, row int) (first, mid, last int) {
	t.Helper()
	m := chartOf(d)
	bars := m.chart.Bars()
	require.Greater(t, len(bars), row)
	bar := bars[row]
	off := m.chart.ScrollOffset()
	g := m.grid
	first = g.LabelCols + g.Column(bar.X, off)
	mid = g.LabelCols + g.Column(bar.X+bar.Width/2, off)
	last = g.LabelCols + g.Column(bar.Right()-1, off)
	return first, mid, last
}

func laneLine(d *teatest.Driver, row int) int {
	return chartOf(d).grid.HeaderLines + row
}

func TestChartView_LoadsAndCentersToday(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design", "Build")
	d := newChartDriver(t, app)

	m := chartOf(d)
	require.Len(t, m.chart.Items(), 2)
	today := m.chart.Mapper().DateToPixel(testutil.FixedToday)
	assert.Equal(t, today-400, m.chart.ScrollOffset())

	view := stripANSI(d.View())
	assert.Contains(t, view, "Design")
	assert.Contains(t, view, "Build")
	assert.Contains(t, view, "t today")
}

func TestChartView_DragMovesAndSavePersists(t *testing.T) {
	app := testApp(t)
	items := seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	_, mid, _ := barCols(t, d, 0)
	d.Drag(mid, mid+4, laneLine(d, 0))

	m := chartOf(d)
	changed := m.chart.Changed()
	require.Len(t, changed, 1)
	assert.Equal(t, domain.MustParseDate("2025-09-23"), changed[0].Start)
	assert.Equal(t, domain.MustParseDate("2025-09-27"), changed[0].End)
	assert.Contains(t, stripANSI(d.View()), "1 unsaved")

	// Nothing is written until the user saves.
	stored, err := app.WorkItems.GetByID(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-09-22"), stored.Start)

	d.PressKey('s')

	stored, err = app.WorkItems.GetByID(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2025-09-23"), stored.Start)
	assert.Equal(t, domain.MustParseDate("2025-09-27"), stored.End)
	assert.Empty(t, chartOf(d).chart.Changed())
	assert.Contains(t, stripANSI(d.View()), "saved 1 item(s)")
}

func TestChartView_ResizeLeftEdge(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	first, _, _ := barCols(t, d, 0)
	d.Drag(first, first-4, laneLine(d, 0))

	got, ok := chartOf(d).chart.Item(chartOf(d).chart.Items()[0].ID)
	require.True(t, ok)
	assert.Equal(t, domain.MustParseDate("2025-09-21"), got.Start)
	assert.Equal(t, domain.MustParseDate("2025-09-26"), got.End)
}

func TestChartView_ResizeRightEdge(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	_, _, last := barCols(t, d, 0)
	d.Drag(last, last+8, laneLine(d, 0))

	got := chartOf(d).chart.Items()[0]
	assert.Equal(t, domain.MustParseDate("2025-09-22"), got.Start)
	assert.Equal(t, domain.MustParseDate("2025-09-28"), got.End)
}

func TestChartView_EscCancelsDrag(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	_, mid, _ := barCols(t, d, 0)
	line := laneLine(d, 0)
	d.MousePress(mid, line)
	d.MouseMotion(mid+8, line)
	_, cand, dragging := chartOf(d).chart.Dragging()
	require.True(t, dragging)
	assert.Equal(t, domain.MustParseDate("2025-09-24"), cand.Start)

	d.PressEsc()
	d.MouseRelease(mid+8, line)

	m := chartOf(d)
	_, _, dragging = m.chart.Dragging()
	assert.False(t, dragging)
	assert.Empty(t, m.chart.Changed())
	assert.Contains(t, stripANSI(d.View()), "drag cancelled")
}

func TestChartView_PressOutsideBarsDoesNothing(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	d.Drag(25, 35, laneLine(d, 0))
	d.Drag(60, 70, 0) // header
	d.Drag(5, 15, laneLine(d, 0))

	assert.Empty(t, chartOf(d).chart.Changed())
}

func TestChartView_ZoomCycles(t *testing.T) {
	app := testApp(t)
	d := newChartDriver(t, app)

	d.PressKey('z')
	assert.Equal(t, domain.ZoomMonthBand, chartOf(d).chart.Zoom())
	d.PressKey('z')
	assert.Equal(t, domain.ZoomDay, chartOf(d).chart.Zoom())
	d.PressKey('z')
	assert.Equal(t, domain.ZoomWeekBand, chartOf(d).chart.Zoom())
}

func TestChartView_ScrollAndJumpToToday(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)
	home := chartOf(d).chart.ScrollOffset()

	d.PressRight()
	assert.Equal(t, home+scrollStep, chartOf(d).chart.ScrollOffset())
	d.PressLeft()
	d.PressLeft()
	assert.Equal(t, home-scrollStep, chartOf(d).chart.ScrollOffset())

	// Frames are paced by a tick the driver does not wait for, so the
	// scroll is still queued.
	d.PressKey('t')
	pane := chartOf(d).chart.Pane()
	assert.True(t, pane.Animating())
	assert.Equal(t, home, pane.Target())

	for pane.Animating() {
		d.Send(frameMsg{})
	}
	assert.Equal(t, home, chartOf(d).chart.ScrollOffset())
}

func TestChartView_QuitConfirmsUnsavedDrafts(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	_, mid, _ := barCols(t, d, 0)
	d.Drag(mid, mid+4, laneLine(d, 0))

	d.PressKey('q')
	assert.False(t, d.Quitting)
	assert.Contains(t, stripANSI(d.View()), "q again to discard")

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestChartView_QuitWithoutDrafts(t *testing.T) {
	app := testApp(t)
	d := newChartDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestChartView_SaveWithoutChanges(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	d.PressKey('s')
	assert.Contains(t, stripANSI(d.View()), "nothing to save")
}

func TestChartView_ReloadsOnDatabaseChange(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	w := testutil.NewTestWorkItem("Review", testutil.WithRow(1))
	require.NoError(t, app.WorkItems.Create(context.Background(), w))

	d.Send(dbChangedMsg{})
	assert.Len(t, chartOf(d).chart.Items(), 2)
}

func TestChartView_DatabaseChangeKeepsDrafts(t *testing.T) {
	app := testApp(t)
	seedItems(t, app, "Design")
	d := newChartDriver(t, app)

	_, mid, _ := barCols(t, d, 0)
	d.Drag(mid, mid+4, laneLine(d, 0))

	w := testutil.NewTestWorkItem("Review", testutil.WithRow(1))
	require.NoError(t, app.WorkItems.Create(context.Background(), w))
	d.Send(dbChangedMsg{})

	m := chartOf(d)
	assert.Len(t, m.chart.Items(), 1)
	assert.Len(t, m.chart.Changed(), 1)
	assert.True(t, m.stale)
	assert.Contains(t, stripANSI(d.View()), "database changed on disk")

	// Saving picks up the pending reload.
	d.PressKey('s')
	m = chartOf(d)
	assert.False(t, m.stale)
	assert.Len(t, m.chart.Items(), 2)
	assert.Empty(t, m.chart.Changed())
}
