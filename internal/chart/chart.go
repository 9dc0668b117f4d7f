// Package chart is the interactive timeline a host embeds. It owns the
// generated window, the draft copy of the host's items and the drag
// controllers, and exposes scrolling through a narrow TimelineController.
package chart

import (
	"context"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/interaction"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/alexanderramin/gantt/internal/viewport"
)

// Config holds the host-supplied settings of a chart.
type Config struct {
	Zoom   domain.ZoomLevel
	Anchor domain.Date // defaults to Today
	Today  domain.Date // defaults to the local date

	ViewportWidth float64
	ScrollFrames  int
	Observer      Observer
}

// Chart renders work items on a timeline and lets a pointer reschedule them.
// Date changes live in the chart's draft state until the host reads them back
// with Items or Changed; the chart never persists anything.
type Chart struct {
	zoom   domain.ZoomLevel
	anchor domain.Date
	today  domain.Date
	mapper timeline.Mapper

	input    map[string]domain.WorkItem
	items    []domain.WorkItem
	selected map[string]bool

	owner       *interaction.SessionOwner
	scope       *interaction.DocumentScope
	controllers map[string]*interaction.Controller
	lastCommit  *interaction.Commit

	pane     *viewport.Pane
	scroller *viewport.Scroller
	observer Observer
}

// New builds a chart over items. Each item's lane is its position in items.
func New(cfg Config, items []domain.WorkItem, selected []string) *Chart {
	if cfg.Zoom == "" {
		cfg.Zoom = domain.ZoomWeekBand
	}
	if cfg.Today.IsZero() {
		cfg.Today = domain.Today()
	}
	if cfg.Anchor.IsZero() {
		cfg.Anchor = cfg.Today
	}
	if cfg.Observer == nil {
		cfg.Observer = NoopObserver{}
	}

	c := &Chart{
		zoom:        cfg.Zoom,
		anchor:      cfg.Anchor,
		today:       cfg.Today,
		owner:       interaction.NewSessionOwner(),
		scope:       interaction.NewDocumentScope(),
		controllers: make(map[string]*interaction.Controller),
		pane:        viewport.NewPane(cfg.ViewportWidth, cfg.ScrollFrames),
		observer:    cfg.Observer,
	}
	c.scroller = viewport.NewScroller(c, c.pane)
	c.regenerate()
	c.SetItems(items)
	c.SetSelected(selected)
	return c
}

func (c *Chart) Zoom() domain.ZoomLevel  { return c.zoom }
func (c *Chart) Anchor() domain.Date     { return c.anchor }
func (c *Chart) Today() domain.Date      { return c.today }
func (c *Chart) Mapper() timeline.Mapper { return c.mapper }
func (c *Chart) Window() timeline.Window { return c.mapper.Window() }

// SetZoom switches granularity and regenerates the window.
func (c *Chart) SetZoom(z domain.ZoomLevel) {
	c.zoom = z
	c.regenerate()
}

// SetAnchor moves the window around a new anchor date.
func (c *Chart) SetAnchor(d domain.Date) {
	c.anchor = d
	c.regenerate()
}

// SetToday changes which day is highlighted and targeted by ScrollToToday.
func (c *Chart) SetToday(d domain.Date) {
	c.today = d
	c.regenerate()
}

func (c *Chart) regenerate() {
	c.mapper = timeline.NewMapper(timeline.GenerateAt(c.zoom, c.anchor, c.today))
	c.pane.SetTrackWidth(c.mapper.TrackWidth())
}

// SetItems replaces the host items and resets drafts. A session already in
// progress keeps its original dates and commits onto the new item with the
// same ID, if any.
func (c *Chart) SetItems(items []domain.WorkItem) {
	c.items = timeline.AssignRows(items)
	c.input = make(map[string]domain.WorkItem, len(c.items))
	for _, it := range c.items {
		c.input[it.ID] = it
	}
	holder, held := c.owner.Holder()
	for id := range c.controllers {
		if _, ok := c.input[id]; !ok && !(held && id == holder) {
			delete(c.controllers, id)
		}
	}
}

func (c *Chart) SetSelected(ids []string) {
	c.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		c.selected[id] = true
	}
}

func (c *Chart) IsSelected(id string) bool { return c.selected[id] }

// Items returns a copy of the draft items in lane order.
func (c *Chart) Items() []domain.WorkItem {
	out := make([]domain.WorkItem, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns the draft for id.
func (c *Chart) Item(id string) (domain.WorkItem, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return domain.WorkItem{}, false
}

// Changed returns drafts whose dates differ from what the host supplied.
func (c *Chart) Changed() []domain.WorkItem {
	var out []domain.WorkItem
	for _, it := range c.items {
		orig, ok := c.input[it.ID]
		if !ok || !orig.SameDates(&it) {
			out = append(out, it)
		}
	}
	return out
}

// Rebase accepts the current drafts as the host's state, typically after
// the host has persisted Changed.
func (c *Chart) Rebase() {
	for _, it := range c.items {
		c.input[it.ID] = it
	}
}

// Preview returns the drafts with any in-progress drag applied.
func (c *Chart) Preview() []domain.WorkItem {
	items := c.Items()
	if s, cand, ok := c.Dragging(); ok {
		if i := c.indexOf(s.ItemID); i >= 0 {
			items[i].Start = cand.Start
			items[i].End = cand.End
		}
	}
	return items
}

// Bars lays out the preview items. The layout is recomputed on every call.
func (c *Chart) Bars() []timeline.BarRect {
	return timeline.Layout(c.mapper, c.Preview())
}

// ContentHeight is the pixel height of all lanes.
func (c *Chart) ContentHeight() float64 {
	return timeline.ContentHeight(len(c.items))
}

// Hit returns the bar under the track position (x, y).
func (c *Chart) Hit(x, y float64) (domain.WorkItem, timeline.BarRect, bool) {
	row, ok := timeline.RowAt(y)
	if !ok || row >= len(c.items) {
		return domain.WorkItem{}, timeline.BarRect{}, false
	}
	it := c.items[row]
	bar := timeline.Bar(c.mapper, it)
	if !bar.Contains(x, y) {
		return domain.WorkItem{}, timeline.BarRect{}, false
	}
	return it, bar, true
}

// PointerDown starts a drag on the bar under (x, y), in track coordinates.
func (c *Chart) PointerDown(x, y float64) bool {
	it, bar, ok := c.Hit(x, y)
	if !ok {
		return false
	}
	ctrl := c.controllerFor(it.ID)
	if ctrl.PointerDown(it, bar, x) {
		return true
	}
	if mode, ok := interaction.ModeForZone(bar.HitZone(x)); ok {
		c.observer.ObserveDrag(context.Background(), DragEvent{
			ItemID:  it.ID,
			Mode:    mode,
			Outcome: DragRejected,
			From:    [2]domain.Date{it.Start, it.End},
			To:      [2]domain.Date{it.Start, it.End},
			Zoom:    c.zoom,
		})
	}
	return false
}

// PointerMove routes a pointer move to the active session, if any.
func (c *Chart) PointerMove(x float64) {
	c.scope.DispatchMove(x)
}

// PointerUp ends the active session and commits its dates to the drafts.
func (c *Chart) PointerUp() (interaction.Commit, bool) {
	c.lastCommit = nil
	c.scope.DispatchRelease()
	if c.lastCommit == nil {
		return interaction.Commit{}, false
	}
	return *c.lastCommit, true
}

// CancelDrag abandons the active session without touching the drafts.
func (c *Chart) CancelDrag() bool {
	holder, held := c.owner.Holder()
	if !held {
		return false
	}
	ctrl, ok := c.controllers[holder]
	if !ok {
		return false
	}
	s, ok := ctrl.Cancel()
	if ok {
		c.observer.ObserveDrag(context.Background(), DragEvent{
			ItemID:  s.ItemID,
			Mode:    s.Mode,
			Outcome: DragCancelled,
			From:    [2]domain.Date{s.OriginalStart, s.OriginalEnd},
			To:      [2]domain.Date{s.OriginalStart, s.OriginalEnd},
			Zoom:    c.zoom,
		})
	}
	return ok
}

// Dragging returns the active session and its candidate dates.
func (c *Chart) Dragging() (interaction.Session, interaction.Candidate, bool) {
	holder, held := c.owner.Holder()
	if !held {
		return interaction.Session{}, interaction.Candidate{}, false
	}
	ctrl, ok := c.controllers[holder]
	if !ok {
		return interaction.Session{}, interaction.Candidate{}, false
	}
	return ctrl.Active()
}

// Controller is the handle a host keeps to scroll the chart.
func (c *Chart) Controller() viewport.TimelineController { return c.scroller }

// Pane is the scroll container the chart renders through.
func (c *Chart) Pane() *viewport.Pane { return c.pane }

// ScrollOffset is the pane's current horizontal offset in track pixels.
func (c *Chart) ScrollOffset() float64 { return c.pane.Offset() }

func (c *Chart) controllerFor(id string) *interaction.Controller {
	if ctrl, ok := c.controllers[id]; ok {
		return ctrl
	}
	ctrl := interaction.NewController(
		interaction.WithOwner(c.owner),
		interaction.WithScope(c.scope),
		interaction.WithUnitWidth(c.mapper.UnitWidth()),
		interaction.OnCommit(c.applyCommit),
	)
	c.controllers[id] = ctrl
	return ctrl
}

func (c *Chart) applyCommit(cm interaction.Commit) {
	c.lastCommit = &cm
	if i := c.indexOf(cm.Session.ItemID); i >= 0 {
		c.items[i].Start = cm.Start
		c.items[i].End = cm.End
	}
	c.observer.ObserveDrag(context.Background(), DragEvent{
		ItemID:  cm.Session.ItemID,
		Mode:    cm.Session.Mode,
		Outcome: DragCommitted,
		From:    [2]domain.Date{cm.Session.OriginalStart, cm.Session.OriginalEnd},
		To:      [2]domain.Date{cm.Start, cm.End},
		Zoom:    c.zoom,
	})
}

func (c *Chart) indexOf(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
