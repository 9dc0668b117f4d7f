package timeline

import "github.com/alexanderramin/gantt/internal/domain"

// Lane geometry in pixels.
const (
	RowHeight = 60.0
	TopInset  = 20.0
	BarHeight = 40.0

	// EdgeHitZone is how close to a bar edge a pointer-down must land to
	// resize instead of move.
	EdgeHitZone = 8.0
)

// Zone identifies which part of a bar a pointer position falls on.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneBody
	ZoneLeftEdge
	ZoneRightEdge
)

// BarRect is the pixel rectangle of one work item.
type BarRect struct {
	ItemID string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r BarRect) Right() float64  { return r.X + r.Width }
func (r BarRect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether (x, y) lies on the bar, edges included.
func (r BarRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// HitZone classifies a horizontal position on the bar. The left edge wins
// when a bar is too narrow for both edge zones to be distinct.
func (r BarRect) HitZone(x float64) Zone {
	switch {
	case x < r.X || x > r.Right():
		return ZoneNone
	case x-r.X <= EdgeHitZone:
		return ZoneLeftEdge
	case r.Right()-x <= EdgeHitZone:
		return ZoneRightEdge
	default:
		return ZoneBody
	}
}

// RowY returns the top of the lane for row.
func RowY(row int) float64 {
	return TopInset + float64(row)*RowHeight
}

// RowAt returns the lane under y, if any bar could be there.
func RowAt(y float64) (int, bool) {
	if y < TopInset {
		return 0, false
	}
	row := int((y - TopInset) / RowHeight)
	if y-RowY(row) > BarHeight {
		return row, false
	}
	return row, true
}

// Bar lays out a single item.
func Bar(m Mapper, item domain.WorkItem) BarRect {
	return BarRect{
		ItemID: item.ID,
		X:      m.DateToPixel(item.Start),
		Y:      RowY(item.RowIndex),
		Width:  m.WidthForRange(item.Start, item.End),
		Height: BarHeight,
	}
}

// Layout lays out every item. Items keep the lanes they were loaded into;
// overlapping date ranges are not packed.
func Layout(m Mapper, items []domain.WorkItem) []BarRect {
	bars := make([]BarRect, len(items))
	for i, item := range items {
		bars[i] = Bar(m, item)
	}
	return bars
}

// AssignRows returns a copy of items with RowIndex set from list position.
func AssignRows(items []domain.WorkItem) []domain.WorkItem {
	out := make([]domain.WorkItem, len(items))
	for i, item := range items {
		item.RowIndex = i
		out[i] = item
	}
	return out
}

// ContentHeight returns the pixel height needed to show rows lanes.
func ContentHeight(rows int) float64 {
	return TopInset + float64(rows)*RowHeight
}
