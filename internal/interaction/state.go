// Package interaction turns pointer events on a rendered bar into date
// changes: moving the whole bar or resizing either of its edges.
package interaction

import (
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// Mode is the kind of drag a session performs. It is fixed at pointer-down.
type Mode int

const (
	ModeMove Mode = iota
	ModeResizeLeft
	ModeResizeRight
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeResizeLeft:
		return "resize-left"
	case ModeResizeRight:
		return "resize-right"
	default:
		return "unknown"
	}
}

// ModeForZone maps the part of the bar under the pointer to a drag mode.
func ModeForZone(z timeline.Zone) (Mode, bool) {
	switch z {
	case timeline.ZoneBody:
		return ModeMove, true
	case timeline.ZoneLeftEdge:
		return ModeResizeLeft, true
	case timeline.ZoneRightEdge:
		return ModeResizeRight, true
	default:
		return 0, false
	}
}

// Session is one drag from pointer-down to pointer-up on a single item.
type Session struct {
	ItemID string
	Mode   Mode

	// GrabPixelX is the pointer's track position at pointer-down; GrabOffset
	// is its distance from the bar's left edge.
	GrabPixelX float64
	GrabOffset float64

	OriginalStart domain.Date
	OriginalEnd   domain.Date
}

// Duration is the day distance between the original dates. A move keeps it.
func (s Session) Duration() int {
	return s.OriginalStart.DaysUntil(s.OriginalEnd)
}

// Candidate holds the dates a session would commit right now.
type Candidate struct {
	Start domain.Date
	End   domain.Date
}

// Commit is what a finished session hands back.
type Commit struct {
	Session Session
	Candidate
}

// Changed reports whether the committed dates differ from the originals.
func (c Commit) Changed() bool {
	return c.Start != c.Session.OriginalStart || c.End != c.Session.OriginalEnd
}

// State is one of Idle, Moving, ResizingLeft or ResizingRight.
type State interface {
	Name() string
	isState()
}

type Idle struct{}

type Moving struct {
	Session   Session
	Candidate Candidate
}

type ResizingLeft struct {
	Session   Session
	Candidate Candidate
}

type ResizingRight struct {
	Session   Session
	Candidate Candidate
}

func (Idle) Name() string          { return "idle" }
func (Moving) Name() string        { return "moving" }
func (ResizingLeft) Name() string  { return "resizing-left" }
func (ResizingRight) Name() string { return "resizing-right" }

func (Idle) isState()          {}
func (Moving) isState()        {}
func (ResizingLeft) isState()  {}
func (ResizingRight) isState() {}

// enter builds the active state for a fresh session.
func enter(s Session) State {
	c := Candidate{Start: s.OriginalStart, End: s.OriginalEnd}
	switch s.Mode {
	case ModeResizeLeft:
		return ResizingLeft{Session: s, Candidate: c}
	case ModeResizeRight:
		return ResizingRight{Session: s, Candidate: c}
	default:
		return Moving{Session: s, Candidate: c}
	}
}

// active unpacks the session and candidate of a non-idle state.
func active(st State) (Session, Candidate, bool) {
	switch st := st.(type) {
	case Moving:
		return st.Session, st.Candidate, true
	case ResizingLeft:
		return st.Session, st.Candidate, true
	case ResizingRight:
		return st.Session, st.Candidate, true
	default:
		return Session{}, Candidate{}, false
	}
}
