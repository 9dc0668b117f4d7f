// Package viewport scrolls the chart's visible window along the track.
package viewport

import (
	"math"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// DefaultFrames is the number of animation steps used for an eased scroll.
const DefaultFrames = 8

// TimelineController is the one capability the chart exposes to its host.
type TimelineController interface {
	ScrollToToday()
}

// ScrollContainer is the horizontally scrolling surface the chart lives in.
type ScrollContainer interface {
	ViewportWidth() float64
	ScrollTo(offset float64, animated bool)
}

// MapperSource supplies the current mapper and today's date. The chart's
// zoom can change between calls, so the scroller never caches a mapper.
type MapperSource interface {
	Mapper() timeline.Mapper
	Today() domain.Date
}

// Scroller implements TimelineController on top of a mapper.
type Scroller struct {
	source    MapperSource
	container ScrollContainer
}

var _ TimelineController = (*Scroller)(nil)

func NewScroller(source MapperSource, container ScrollContainer) *Scroller {
	return &Scroller{source: source, container: container}
}

// TodayOffset is the scroll offset that centers today in the viewport,
// never less than zero.
func (s *Scroller) TodayOffset() float64 {
	x := s.source.Mapper().DateToPixel(s.source.Today())
	return math.Max(0, x-s.container.ViewportWidth()/2)
}

// ScrollToToday centers today with an animated scroll.
func (s *Scroller) ScrollToToday() {
	s.container.ScrollTo(s.TodayOffset(), true)
}

// Animate returns ease-out-cubic offsets from `from` to `to` over frames
// steps. The last offset is exactly `to`.
func Animate(from, to float64, frames int) []float64 {
	if frames < 1 {
		return []float64{to}
	}
	out := make([]float64, frames)
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		p := 1 - math.Pow(1-t, 3)
		out[i-1] = from + (to-from)*p
	}
	out[frames-1] = to
	return out
}
