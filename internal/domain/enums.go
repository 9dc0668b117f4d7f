package domain

import (
	"fmt"
	"strings"
)

type ZoomLevel string

const (
	ZoomDay       ZoomLevel = "day"
	ZoomWeekBand  ZoomLevel = "week"
	ZoomMonthBand ZoomLevel = "month"
)

// ZoomLevels lists the zoom levels from finest to coarsest.
var ZoomLevels = []ZoomLevel{ZoomDay, ZoomWeekBand, ZoomMonthBand}

// ParseZoomLevel accepts the zoom tokens plus a few common aliases.
func ParseZoomLevel(s string) (ZoomLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "d":
		return ZoomDay, nil
	case "week", "weekband", "w":
		return ZoomWeekBand, nil
	case "month", "monthband", "m":
		return ZoomMonthBand, nil
	default:
		return "", fmt.Errorf("unknown zoom level %q (want day, week or month)", s)
	}
}

// DayGranular reports whether positions on this zoom level resolve to single
// days. MonthBand positions resolve to whole months.
func (z ZoomLevel) DayGranular() bool {
	return z != ZoomMonthBand
}

// Next returns the following zoom level, wrapping from MonthBand back to Day.
func (z ZoomLevel) Next() ZoomLevel {
	for i, l := range ZoomLevels {
		if l == z {
			return ZoomLevels[(i+1)%len(ZoomLevels)]
		}
	}
	return ZoomWeekBand
}

type WorkItemStatus string

const (
	WorkItemTodo       WorkItemStatus = "todo"
	WorkItemInProgress WorkItemStatus = "in_progress"
	WorkItemBlocked    WorkItemStatus = "blocked"
	WorkItemDone       WorkItemStatus = "done"
)

// ValidWorkItemStatuses is the canonical set of accepted status strings.
var ValidWorkItemStatuses = map[string]bool{
	"todo": true, "in_progress": true, "blocked": true, "done": true,
}

// DefaultStatusColor returns the bar color used when an item carries none.
func DefaultStatusColor(s WorkItemStatus) string {
	switch s {
	case WorkItemInProgress:
		return "#83a598"
	case WorkItemBlocked:
		return "#fb4934"
	case WorkItemDone:
		return "#8ec07c"
	default:
		return "#928374"
	}
}
