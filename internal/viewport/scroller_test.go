package viewport

import (
	"math"
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	mapper timeline.Mapper
	today  domain.Date
}

func (s fixedSource) Mapper() timeline.Mapper { return s.mapper }
func (s fixedSource) Today() domain.Date      { return s.today }

type recordingContainer struct {
	width    float64
	offset   float64
	animated bool
	calls    int
}

func (c *recordingContainer) ViewportWidth() float64 { return c.width }
func (c *recordingContainer) ScrollTo(offset float64, animated bool) {
	c.offset = offset
	c.animated = animated
	c.calls++
}

func source(zoom domain.ZoomLevel, today string) fixedSource {
	d := domain.MustParseDate(today)
	return fixedSource{mapper: timeline.NewMapper(timeline.Generate(zoom, d)), today: d}
}

func TestScrollToToday_CentersToday(t *testing.T) {
	src := source(domain.ZoomWeekBand, "2025-09-20")
	c := &recordingContainer{width: 800}
	s := NewScroller(src, c)

	s.ScrollToToday()

	todayPixel := src.mapper.DateToPixel(src.today)
	assert.Equal(t, math.Max(0, todayPixel-400), c.offset)
	assert.True(t, c.animated)
	assert.Equal(t, 1, c.calls)
}

func TestScrollToToday_ClampsAtZero(t *testing.T) {
	src := source(domain.ZoomDay, "2025-09-20")
	c := &recordingContainer{width: 1200}
	s := NewScroller(src, c)

	assert.Equal(t, 0.0, s.TodayOffset())
	s.ScrollToToday()
	assert.Equal(t, 0.0, c.offset)
}

func TestTodayOffset_MatchesFormulaPerZoom(t *testing.T) {
	for _, zoom := range domain.ZoomLevels {
		src := source(zoom, "2025-09-20")
		c := &recordingContainer{width: 640}
		s := NewScroller(src, c)
		want := math.Max(0, src.mapper.DateToPixel(src.today)-320)
		assert.Equal(t, want, s.TodayOffset(), "zoom %s", zoom)
	}
}

func TestAnimate_EaseOutEndsAtTarget(t *testing.T) {
	frames := Animate(0, 1000, 8)
	require.Len(t, frames, 8)
	assert.Equal(t, 1000.0, frames[7])

	// Ease-out: the first step covers more distance than the last.
	assert.Greater(t, frames[0], frames[7]-frames[6])
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i], frames[i-1])
	}

	assert.Equal(t, []float64{42}, Animate(10, 42, 0))
}

func TestPane_AnimatedScrollSteps(t *testing.T) {
	p := NewPane(400, 4)
	p.ScrollTo(800, true)

	assert.True(t, p.Animating())
	assert.Equal(t, 800.0, p.Target())
	assert.Equal(t, 0.0, p.Offset())

	steps := 0
	for p.Step() {
		steps++
	}
	assert.Equal(t, 3, steps)
	assert.Equal(t, 800.0, p.Offset())
	assert.False(t, p.Animating())
	assert.False(t, p.Step())
}

func TestPane_ImmediateScrollAndClamp(t *testing.T) {
	p := NewPane(400, 0)
	p.SetTrackWidth(1000)

	p.ScrollTo(250, false)
	assert.Equal(t, 250.0, p.Offset())

	p.ScrollBy(-1000)
	assert.Equal(t, 0.0, p.Offset())
	p.ScrollBy(5000)
	assert.Equal(t, 600.0, p.Offset())
}

func TestPane_ScrollByCancelsAnimation(t *testing.T) {
	p := NewPane(100, 8)
	p.SetTrackWidth(2000)
	p.ScrollTo(1000, true)
	p.Step()
	p.ScrollBy(10)
	assert.False(t, p.Animating())
}
