package interaction

import (
	"math"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// Controller is the drag state machine for one bar.
//
//	Idle ──pointer-down body──▶ Moving ─────────┐
//	Idle ──pointer-down left edge──▶ ResizingLeft ├──pointer-up──▶ Idle
//	Idle ──pointer-down right edge──▶ ResizingRight┘
//
// Pointer moves while active only update the candidate dates; the candidate
// is handed to the commit callback on release. Controllers sharing a
// SessionOwner never run overlapping sessions.
type Controller struct {
	unitWidth float64
	owner     *SessionOwner
	scope     ListenerScope
	state     State

	onChange func(Session, Candidate)
	onCommit func(Commit)
}

// Option configures a Controller.
type Option func(*Controller)

// WithOwner shares a session owner between controllers.
func WithOwner(o *SessionOwner) Option {
	return func(c *Controller) { c.owner = o }
}

// WithScope sets where move and release listeners are attached.
func WithScope(s ListenerScope) Option {
	return func(c *Controller) { c.scope = s }
}

// WithUnitWidth overrides the pixels-per-day used for drag deltas.
func WithUnitWidth(w float64) Option {
	return func(c *Controller) {
		if w > 0 {
			c.unitWidth = w
		}
	}
}

// OnChange is called whenever a pointer move produces new candidate dates.
func OnChange(fn func(Session, Candidate)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// OnCommit is called once per session, on release.
func OnCommit(fn func(Commit)) Option {
	return func(c *Controller) { c.onCommit = fn }
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		unitWidth: timeline.UnitWidth,
		owner:     NewSessionOwner(),
		scope:     NewDocumentScope(),
		state:     Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State { return c.state }

// Active returns the running session and its current candidate.
func (c *Controller) Active() (Session, Candidate, bool) {
	return active(c.state)
}

// PointerDown starts a session when x lands on bar. The mode is chosen from
// the part of the bar under the pointer. It returns false when the pointer
// misses, a session is already running, or another item owns the pointer.
func (c *Controller) PointerDown(item domain.WorkItem, bar timeline.BarRect, x float64) bool {
	if _, idle := c.state.(Idle); !idle {
		return false
	}
	mode, ok := ModeForZone(bar.HitZone(x))
	if !ok {
		return false
	}
	if !c.owner.Acquire(item.ID) {
		return false
	}

	c.state = enter(Session{
		ItemID:        item.ID,
		Mode:          mode,
		GrabPixelX:    x,
		GrabOffset:    x - bar.X,
		OriginalStart: item.Start,
		OriginalEnd:   item.End,
	})
	c.scope.Attach(c)
	return true
}

// Move recomputes the candidate for pointer position x. The returned flag is
// false when the controller is idle or the resize would invert the range, in
// which case the candidate is left as it was.
func (c *Controller) Move(x float64) (Candidate, bool) {
	s, cur, ok := active(c.state)
	if !ok {
		return Candidate{}, false
	}
	delta := int(math.Round((x - s.GrabPixelX) / c.unitWidth))

	next := cur
	switch st := c.state.(type) {
	case Moving:
		next.Start = s.OriginalStart.AddDays(delta)
		next.End = next.Start.AddDays(s.Duration())
		st.Candidate = next
		c.state = st
	case ResizingLeft:
		start := s.OriginalStart.AddDays(delta)
		if !start.Before(cur.End) {
			return cur, false
		}
		next.Start = start
		st.Candidate = next
		c.state = st
	case ResizingRight:
		end := s.OriginalEnd.AddDays(delta)
		if !end.After(cur.Start) {
			return cur, false
		}
		next.End = end
		st.Candidate = next
		c.state = st
	}

	if next != cur && c.onChange != nil {
		c.onChange(s, next)
	}
	return next, true
}

// Release ends the session, making the last candidate the committed dates.
func (c *Controller) Release() (Commit, bool) {
	s, cand, ok := active(c.state)
	if !ok {
		return Commit{}, false
	}
	c.exit(s)

	commit := Commit{Session: s, Candidate: cand}
	if c.onCommit != nil {
		c.onCommit(commit)
	}
	return commit, true
}

// Cancel ends the session without committing; the item keeps its original
// dates. Pointer release never cancels, so only an explicit host action
// reaches this.
func (c *Controller) Cancel() (Session, bool) {
	s, _, ok := active(c.state)
	if !ok {
		return Session{}, false
	}
	c.exit(s)
	return s, true
}

// PointerMove implements PointerHandler.
func (c *Controller) PointerMove(x float64) { c.Move(x) }

// PointerRelease implements PointerHandler.
func (c *Controller) PointerRelease() { c.Release() }

func (c *Controller) exit(s Session) {
	c.state = Idle{}
	c.scope.Detach(c)
	c.owner.Release(s.ItemID)
}
