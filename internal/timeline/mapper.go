package timeline

import (
	"math"

	"github.com/alexanderramin/gantt/internal/domain"
)

// UnitWidth is the pixel width of one day on day-granular zoom levels.
const UnitWidth = 40.0

// Mapper converts between calendar dates and horizontal pixel positions for
// one generated window. It holds no mutable state.
type Mapper struct {
	window     Window
	monthWidth float64
}

// NewMapper returns the mapper for w.
func NewMapper(w Window) Mapper {
	m := Mapper{window: w}
	if months := w.Months(); months > 0 {
		m.monthWidth = m.TrackWidth() / float64(months)
	}
	return m
}

func (m Mapper) Window() Window { return m.window }

func (m Mapper) UnitWidth() float64 { return UnitWidth }

// TrackWidth is the full pixel width of the generated window.
func (m Mapper) TrackWidth() float64 {
	return float64(m.window.Len()) * UnitWidth
}

// MonthWidth is the pixel width of one month on MonthBand zoom.
func (m Mapper) MonthWidth() float64 { return m.monthWidth }

// DateToPixel returns the horizontal center of d's slot.
//
// On day-granular zoom the slot is found by calendar-field equality in the
// generated sequence. Dates outside the window are extrapolated from the
// first unit's day distance; the result is an approximation, not an error.
//
// On MonthBand zoom the position is the center of d's month, so every date in
// a month maps to the same pixel.
func (m Mapper) DateToPixel(d domain.Date) float64 {
	if !m.window.Zoom.DayGranular() {
		offset := d.MonthIndex() - m.window.Start.MonthIndex()
		return float64(offset)*m.monthWidth + m.monthWidth/2
	}
	idx, ok := m.window.IndexOf(d)
	if !ok {
		idx = m.window.Start.DaysUntil(d)
	}
	return float64(idx)*UnitWidth + UnitWidth/2
}

// WidthForRange returns the pixel width of the inclusive range [start, end].
// A zero-length or inverted range is one unit wide, never zero.
func (m Mapper) WidthForRange(start, end domain.Date) float64 {
	if end.Before(start) {
		end = start
	}
	if !m.window.Zoom.DayGranular() {
		span := end.MonthIndex() - start.MonthIndex() + 1
		return float64(span) * m.monthWidth
	}
	return float64(start.DaysUntil(end)+1) * UnitWidth
}

// PixelToDayDelta converts a horizontal pointer displacement to whole days,
// rounding half away from zero.
func (m Mapper) PixelToDayDelta(dx float64) int {
	return int(math.Round(dx / UnitWidth))
}

// PixelToDate returns the date whose slot contains x. On MonthBand zoom it
// returns the first day of the month under x.
func (m Mapper) PixelToDate(x float64) domain.Date {
	if !m.window.Zoom.DayGranular() {
		if m.monthWidth == 0 {
			return m.window.Start
		}
		months := int(math.Floor(x / m.monthWidth))
		return m.window.Start.FirstOfMonth().AddMonths(months)
	}
	return m.window.Start.AddDays(int(math.Floor(x / UnitWidth)))
}
