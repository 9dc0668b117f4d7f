// Package timeline generates the calendar window shown by the chart and maps
// dates in that window to horizontal pixel positions.
package timeline

import "github.com/alexanderramin/gantt/internal/domain"

// Window extents around the anchor month, in months.
const (
	weekBandMonthsBefore  = 2
	weekBandMonthsAfter   = 4
	monthBandMonthsBefore = 3
	monthBandMonthsAfter  = 5
)

// Unit is one calendar day within a generated window.
type Unit struct {
	Date    domain.Date
	IsToday bool
}

// PeriodGroup is a header bucket (a week or a month) of consecutive units.
type PeriodGroup struct {
	Label string
	Units []Unit
}

func (g PeriodGroup) Start() domain.Date { return g.Units[0].Date }
func (g PeriodGroup) End() domain.Date   { return g.Units[len(g.Units)-1].Date }

// Window is the ordered, finite set of days generated for a zoom level and
// anchor date, together with its header groups.
type Window struct {
	Zoom   domain.ZoomLevel
	Anchor domain.Date
	Start  domain.Date
	End    domain.Date
	Units  []Unit
	Groups []PeriodGroup

	index map[domain.Date]int
}

// Generate builds the window for zoom around anchor, treating anchor as today.
func Generate(zoom domain.ZoomLevel, anchor domain.Date) Window {
	return GenerateAt(zoom, anchor, anchor)
}

// GenerateAt builds the window for zoom around anchor and flags the unit
// matching today.
func GenerateAt(zoom domain.ZoomLevel, anchor, today domain.Date) Window {
	start, end := bounds(zoom, anchor)

	units := make([]Unit, 0, start.DaysUntil(end)+1)
	index := make(map[domain.Date]int, cap(units))
	for d := start; !d.After(end); d = d.AddDays(1) {
		index[d] = len(units)
		units = append(units, Unit{Date: d, IsToday: d == today})
	}

	return Window{
		Zoom:   zoom,
		Anchor: anchor,
		Start:  start,
		End:    end,
		Units:  units,
		Groups: group(zoom, units),
		index:  index,
	}
}

// Len returns the number of days in the window.
func (w Window) Len() int { return len(w.Units) }

// IndexOf returns the position of d in the window by calendar-field equality.
func (w Window) IndexOf(d domain.Date) (int, bool) {
	i, ok := w.index[d]
	return i, ok
}

// Contains reports whether d lies inside the window.
func (w Window) Contains(d domain.Date) bool {
	_, ok := w.index[d]
	return ok
}

// Months returns how many distinct calendar months the window touches.
func (w Window) Months() int {
	if len(w.Units) == 0 {
		return 0
	}
	return w.End.MonthIndex() - w.Start.MonthIndex() + 1
}

// Each calls fn for every unit in order until fn returns false. Every call
// starts again from the first unit.
func (w Window) Each(fn func(Unit) bool) {
	for _, u := range w.Units {
		if !fn(u) {
			return
		}
	}
}

func bounds(zoom domain.ZoomLevel, anchor domain.Date) (domain.Date, domain.Date) {
	month := anchor.FirstOfMonth()
	switch zoom {
	case domain.ZoomWeekBand:
		start := month.AddMonths(-weekBandMonthsBefore)
		end := month.AddMonths(weekBandMonthsAfter).LastOfMonth()
		return previousMonday(start), nextSunday(end)
	case domain.ZoomMonthBand:
		start := month.AddMonths(-monthBandMonthsBefore)
		end := month.AddMonths(monthBandMonthsAfter).LastOfMonth()
		return start, end
	default:
		return anchor, anchor
	}
}

// previousMonday snaps d back to the Monday on or before it.
func previousMonday(d domain.Date) domain.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// nextSunday snaps d forward to the Sunday on or after it.
func nextSunday(d domain.Date) domain.Date {
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDays(offset)
}

func group(zoom domain.ZoomLevel, units []Unit) []PeriodGroup {
	if len(units) == 0 {
		return nil
	}
	switch zoom {
	case domain.ZoomWeekBand:
		var groups []PeriodGroup
		for i := 0; i < len(units); i += 7 {
			j := min(i+7, len(units))
			groups = append(groups, PeriodGroup{
				Label: units[i].Date.Time().Format("Jan 02"),
				Units: units[i:j],
			})
		}
		return groups
	case domain.ZoomMonthBand:
		var groups []PeriodGroup
		start := 0
		for i := 1; i <= len(units); i++ {
			if i < len(units) && sameMonth(units[i].Date, units[start].Date) {
				continue
			}
			groups = append(groups, PeriodGroup{
				Label: monthLabel(units[start].Date),
				Units: units[start:i],
			})
			start = i
		}
		return groups
	default:
		return []PeriodGroup{{
			Label: units[0].Date.Time().Format("Mon, Jan 2 2006"),
			Units: units,
		}}
	}
}

func sameMonth(a, b domain.Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

func monthLabel(d domain.Date) string {
	return d.Time().Format("Jan 2006")
}
