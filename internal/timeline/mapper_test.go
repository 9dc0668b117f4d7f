package timeline

import (
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDateToPixel_DayGranularCentersUnit(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomWeekBand, anchor))
	start := m.Window().Start

	assert.Equal(t, 20.0, m.DateToPixel(start))
	assert.Equal(t, 3*UnitWidth+20, m.DateToPixel(start.AddDays(3)))
}

func TestDateToPixel_ExtrapolatesOutsideWindow(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomWeekBand, anchor))
	w := m.Window()

	assert.Equal(t, -20.0, m.DateToPixel(w.Start.AddDays(-1)))
	assert.Equal(t, float64(w.Len())*UnitWidth+20, m.DateToPixel(w.End.AddDays(1)))
}

func TestDateToPixel_DayZoomExtrapolatesFromAnchor(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomDay, domain.MustParseDate("2025-09-01")))

	assert.Equal(t, 20.0, m.DateToPixel(domain.MustParseDate("2025-09-01")))
	assert.Equal(t, 4*UnitWidth+20, m.DateToPixel(domain.MustParseDate("2025-09-05")))
}

func TestDateToPixel_MonotonicPerZoom(t *testing.T) {
	for _, zoom := range domain.ZoomLevels {
		t.Run(string(zoom), func(t *testing.T) {
			m := NewMapper(Generate(zoom, anchor))
			d := domain.MustParseDate("2025-01-01")
			prev := m.DateToPixel(d)
			for i := 0; i < 500; i++ {
				d = d.AddDays(1)
				cur := m.DateToPixel(d)
				assert.GreaterOrEqual(t, cur, prev, "date %s", d)
				prev = cur
			}
		})
	}
}

func TestDateToPixel_MonthBandCentersMonth(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomMonthBand, anchor))
	mw := m.MonthWidth()

	assert.InDelta(t, m.TrackWidth()/9, mw, 1e-9)
	assert.InDelta(t, mw/2, m.DateToPixel(domain.MustParseDate("2025-06-01")), 1e-9)
	assert.Equal(t, m.DateToPixel(domain.MustParseDate("2025-07-01")), m.DateToPixel(domain.MustParseDate("2025-07-31")))
	assert.InDelta(t, 3*mw+mw/2, m.DateToPixel(anchor), 1e-9)
}

func TestWidthForRange_InclusiveDays(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomDay, domain.MustParseDate("2025-09-01")))

	w := m.WidthForRange(domain.MustParseDate("2025-09-01"), domain.MustParseDate("2025-09-05"))
	assert.Equal(t, 5*40.0, w)
}

func TestWidthForRange_ZeroLengthIsOneUnit(t *testing.T) {
	d := domain.MustParseDate("2025-09-10")

	for _, zoom := range []domain.ZoomLevel{domain.ZoomDay, domain.ZoomWeekBand} {
		m := NewMapper(Generate(zoom, anchor))
		assert.Equal(t, UnitWidth, m.WidthForRange(d, d), "zoom %s", zoom)
	}

	m := NewMapper(Generate(domain.ZoomMonthBand, anchor))
	assert.Equal(t, m.MonthWidth(), m.WidthForRange(d, d))
	assert.Greater(t, m.MonthWidth(), 0.0)
}

func TestWidthForRange_InvertedNeverBelowOneUnit(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomWeekBand, anchor))
	assert.Equal(t, UnitWidth, m.WidthForRange(anchor, anchor.AddDays(-5)))
}

func TestWidthForRange_MonthSpan(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomMonthBand, anchor))
	w := m.WidthForRange(domain.MustParseDate("2025-08-30"), domain.MustParseDate("2025-10-02"))
	assert.InDelta(t, 3*m.MonthWidth(), w, 1e-9)
}

func TestPixelToDayDelta_Rounds(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomDay, anchor))

	cases := map[float64]int{0: 0, 19: 0, 20: 1, 40: 1, 59: 1, 61: 2, -20: -1, -60: -2, -81: -2}
	for dx, want := range cases {
		assert.Equal(t, want, m.PixelToDayDelta(dx), "dx=%v", dx)
	}
}

func TestPixelToDate(t *testing.T) {
	m := NewMapper(Generate(domain.ZoomWeekBand, anchor))
	assert.Equal(t, m.Window().Start, m.PixelToDate(0))
	assert.Equal(t, m.Window().Start.AddDays(2), m.PixelToDate(2*UnitWidth+39))

	mm := NewMapper(Generate(domain.ZoomMonthBand, anchor))
	assert.Equal(t, domain.MustParseDate("2025-07-01"), mm.PixelToDate(mm.MonthWidth()*1.5))
}
