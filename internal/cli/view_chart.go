package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/alexanderramin/gantt/internal/watcher"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces animated scrolls.
const frameInterval = 16 * time.Millisecond

// scrollStep is how far the arrow keys and the wheel move the track.
const scrollStep = 7 * timeline.UnitWidth

type chartKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Today  key.Binding
	Zoom   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultChartKeys() chartKeyMap {
	return chartKeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Zoom:   key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k chartKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Today, k.Zoom, k.Save, k.Help, k.Quit}
}

func (k chartKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Today, k.Zoom},
		{k.Save, k.Cancel, k.Help, k.Quit},
	}
}

// Messages produced by chartModel commands.
type (
	itemsLoadedMsg struct {
		items []*domain.WorkItem
		err   error
	}
	draftsSavedMsg struct {
		changed int
		err     error
	}
	frameMsg     struct{}
	dbChangedMsg struct{}
	watchErrMsg  struct{ err error }
)

// chartModel is the interactive timeline. Drags edit the chart's drafts;
// nothing reaches the database until the user saves.
type chartModel struct {
	app   *App
	chart *chart.Chart
	grid  formatter.Grid
	keys  chartKeyMap
	help  help.Model

	width, height int
	loaded        bool
	positioned    bool

	status      string
	stale       bool
	confirmQuit bool
	quitting    bool

	changes     <-chan watcher.Change
	watchErrors <-chan error
}

func newChartModel(app *App, opts tuiOptions) chartModel {
	return chartModel{
		app:         app,
		chart:       buildChart(app, chartSettings{Zoom: opts.Zoom, Anchor: opts.Anchor}, nil),
		grid:        formatter.DefaultGrid(app.Config.CellPx),
		keys:        defaultChartKeys(),
		help:        help.New(),
		changes:     opts.Changes,
		watchErrors: opts.WatchErrors,
	}
}

func (m chartModel) Init() tea.Cmd {
	return tea.Batch(m.loadItems(), m.waitForChange())
}

func (m chartModel) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.app.WorkItems.List(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m chartModel) saveDrafts(drafts []domain.WorkItem) tea.Cmd {
	return func() tea.Msg {
		n, err := m.app.WorkItems.CommitDrafts(context.Background(), drafts)
		return draftsSavedMsg{changed: n, err: err}
	}
}

// waitForChange blocks until the watcher reports a write to the database
// or fails.
func (m chartModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes, errs := m.changes, m.watchErrors
	return func() tea.Msg {
		select {
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			return dbChangedMsg{}
		case err := <-errs:
			return watchErrMsg{err: err}
		}
	}
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.chart.Pane().SetViewportWidth(m.grid.ViewportPx(msg.Width))
		m.position()
		return m, nil

	case itemsLoadedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("load failed: " + msg.err.Error())
			return m, nil
		}
		m.chart.SetItems(itemValues(msg.items))
		m.loaded = true
		m.stale = false
		m.position()
		return m, nil

	case draftsSavedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("save failed: " + msg.err.Error())
			return m, nil
		}
		m.chart.Rebase()
		m.confirmQuit = false
		m.status = formatter.StyleGreen.Render(fmt.Sprintf("saved %d item(s)", msg.changed))
		if m.stale {
			return m, m.loadItems()
		}
		return m, nil

	case dbChangedMsg:
		if _, _, dragging := m.chart.Dragging(); dragging || len(m.chart.Changed()) > 0 {
			m.stale = true
			m.status = formatter.StyleYellow.Render("database changed on disk; save or restart to reload")
			return m, m.waitForChange()
		}
		return m, tea.Batch(m.loadItems(), m.waitForChange())

	case watchErrMsg:
		m.status = formatter.StyleRed.Render("watch: " + msg.err.Error())
		return m, m.waitForChange()

	case frameMsg:
		if m.chart.Pane().Step() {
			return m, nextFrame()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m chartModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if len(m.chart.Changed()) > 0 && !m.confirmQuit {
			m.confirmQuit = true
			m.status = formatter.StyleYellow.Render("unsaved changes: s to save, q again to discard")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.chart.Pane().ScrollBy(-scrollStep)

	case key.Matches(msg, m.keys.Right):
		m.chart.Pane().ScrollBy(scrollStep)

	case key.Matches(msg, m.keys.Today):
		m.chart.Controller().ScrollToToday()
		if m.chart.Pane().Animating() {
			return m, nextFrame()
		}

	case key.Matches(msg, m.keys.Zoom):
		m.chart.CancelDrag()
		m.chart.SetZoom(m.chart.Zoom().Next())
		centerOn(m.chart, m.chart.Anchor())
		m.status = "zoom: " + string(m.chart.Zoom())

	case key.Matches(msg, m.keys.Save):
		drafts := m.chart.Changed()
		if len(drafts) == 0 {
			m.status = formatter.Dim("nothing to save")
			return m, nil
		}
		return m, m.saveDrafts(drafts)

	case key.Matches(msg, m.keys.Cancel):
		if m.chart.CancelDrag() {
			m.status = formatter.Dim("drag cancelled")
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m chartModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	offset := m.chart.ScrollOffset()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			x, okX := m.grid.TrackX(msg.X, offset)
			y, okY := m.grid.TrackY(msg.Y)
			if okX && okY && m.chart.PointerDown(x, y) {
				m.status = ""
			}
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.chart.Pane().ScrollBy(-scrollStep)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.chart.Pane().ScrollBy(scrollStep)
		}

	case tea.MouseActionMotion:
		if _, _, dragging := m.chart.Dragging(); dragging {
			// Columns over the labels clamp to the first track column.
			x, _ := m.grid.TrackX(max(msg.X, m.grid.LabelCols), offset)
			m.chart.PointerMove(x)
		}

	case tea.MouseActionRelease:
		if c, ok := m.chart.PointerUp(); ok {
			if it, found := m.chart.Item(c.Session.ItemID); found {
				m.status = fmt.Sprintf("%s → %s (unsaved)", it.Title, formatter.DateRange(c.Start, c.End))
			}
		}
	}
	return m, nil
}

// position centers the anchor once both the items and the terminal size
// are known.
func (m *chartModel) position() {
	if m.positioned || !m.loaded || m.width == 0 {
		return
	}
	centerOn(m.chart, m.chart.Anchor())
	m.positioned = true
}

func (m chartModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.loaded && m.status == "" {
		return formatter.Dim("loading…")
	}

	var b strings.Builder
	b.WriteString(formatter.ChartText(m.chart, m.grid, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m chartModel) statusLine() string {
	parts := []string{formatter.Dim(string(m.chart.Zoom()))}
	if n := len(m.chart.Changed()); n > 0 {
		parts = append(parts, formatter.StyleYellow.Render(fmt.Sprintf("%d unsaved", n)))
	}
	if s, cand, ok := m.chart.Dragging(); ok {
		parts = append(parts, fmt.Sprintf("%s %s", s.Mode, formatter.DateRange(cand.Start, cand.End)))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "  ")
}
