package viewport

import "math"

// Pane is an in-memory ScrollContainer: a viewport of fixed width sliding
// over a track. Animated scrolls are queued as frames the host steps through
// on its own clock.
type Pane struct {
	width  float64
	track  float64
	offset float64
	frames int

	pending []float64
}

var _ ScrollContainer = (*Pane)(nil)

// NewPane returns a pane of the given viewport width. frames <= 0 selects
// DefaultFrames.
func NewPane(width float64, frames int) *Pane {
	if frames <= 0 {
		frames = DefaultFrames
	}
	return &Pane{width: width, frames: frames}
}

func (p *Pane) ViewportWidth() float64 { return p.width }

func (p *Pane) SetViewportWidth(w float64) { p.width = w }

// SetTrackWidth records the scrollable content width, used by ScrollBy.
func (p *Pane) SetTrackWidth(w float64) { p.track = w }

func (p *Pane) Offset() float64 { return p.offset }

// Target is where the pane will rest once pending frames have played.
func (p *Pane) Target() float64 {
	if n := len(p.pending); n > 0 {
		return p.pending[n-1]
	}
	return p.offset
}

// ScrollTo moves the viewport to offset, immediately or over queued frames.
func (p *Pane) ScrollTo(offset float64, animated bool) {
	if !animated || offset == p.offset {
		p.pending = nil
		p.offset = offset
		return
	}
	p.pending = Animate(p.offset, offset, p.frames)
}

// ScrollBy shifts the viewport by dx without animation, keeping it within
// the track.
func (p *Pane) ScrollBy(dx float64) {
	limit := math.Max(0, p.track-p.width)
	p.pending = nil
	p.offset = math.Min(math.Max(0, p.offset+dx), limit)
}

// Animating reports whether frames are still queued.
func (p *Pane) Animating() bool { return len(p.pending) > 0 }

// Step applies the next queued frame and reports whether more remain.
func (p *Pane) Step() bool {
	if len(p.pending) == 0 {
		return false
	}
	p.offset = p.pending[0]
	p.pending = p.pending[1:]
	return len(p.pending) > 0
}
