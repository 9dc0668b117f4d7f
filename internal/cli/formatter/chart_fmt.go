package formatter

import (
	"math"
	"strings"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// Characters used by the terminal chart.
const (
	barDone     = "█"
	barTodo     = "▓"
	barDragging = "▒"
	todayMark   = "│"
)

// Grid maps terminal cells onto chart pixels. Each column covers CellPx
// track pixels; each lane is one line below the header lines.
type Grid struct {
	CellPx      float64
	LabelCols   int
	HeaderLines int
}

// DefaultGrid returns the grid used by the terminal views.
func DefaultGrid(cellPx float64) Grid {
	if cellPx <= 0 {
		cellPx = 10
	}
	return Grid{CellPx: cellPx, LabelCols: 20, HeaderLines: 2}
}

// TrackCols is how many columns of track fit into a terminal of width cols.
func (g Grid) TrackCols(width int) int {
	return max(0, width-g.LabelCols)
}

// ViewportPx is the track width in pixels visible in a terminal of width cols.
func (g Grid) ViewportPx(width int) float64 {
	return float64(g.TrackCols(width)) * g.CellPx
}

// TrackX returns the track pixel at the center of column col for a pane
// scrolled to offset. Columns inside the label area report false.
func (g Grid) TrackX(col int, offset float64) (float64, bool) {
	if col < g.LabelCols {
		return 0, false
	}
	return float64(col-g.LabelCols)*g.CellPx + g.CellPx/2 + offset, true
}

// TrackY returns the vertical center of the lane drawn on line.
func (g Grid) TrackY(line int) (float64, bool) {
	if line < g.HeaderLines {
		return 0, false
	}
	return timeline.RowY(line-g.HeaderLines) + timeline.BarHeight/2, true
}

// Column returns the terminal column (relative to the track) containing x.
func (g Grid) Column(x, offset float64) int {
	return int(math.Floor((x - offset) / g.CellPx))
}

// ChartText renders c into a terminal of width columns. Only lanes are
// drawn; the caller adds any status or help lines.
func ChartText(c *chart.Chart, g Grid, width int) string {
	cols := g.TrackCols(width)
	offset := c.ScrollOffset()
	mapper := c.Mapper()

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", g.LabelCols))
	b.WriteString(groupLine(mapper.Window(), g, cols, offset))
	b.WriteString("\n")
	b.WriteString(PadRight(StyleDim.Render(zoomLabel(c.Zoom())), g.LabelCols))
	b.WriteString(unitLine(mapper.Window(), g, cols, offset))
	b.WriteString("\n")

	todayCol := -1
	if mapper.Window().Contains(c.Today()) {
		todayCol = g.Column(mapper.DateToPixel(c.Today()), offset)
	}

	dragID := ""
	if s, _, ok := c.Dragging(); ok {
		dragID = s.ItemID
	}

	items := c.Preview()
	for i, it := range items {
		bar := timeline.Bar(mapper, it)
		label := Truncate(it.Title, g.LabelCols-1)
		if c.IsSelected(it.ID) {
			label = StyleYellow.Render(label)
		}
		b.WriteString(PadRight(label, g.LabelCols))
		b.WriteString(laneLine(it, bar, g, cols, offset, todayCol, it.ID == dragID))
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func zoomLabel(z domain.ZoomLevel) string {
	return "zoom: " + string(z)
}

// groupLine writes each period label at the column its first day starts in.
func groupLine(w timeline.Window, g Grid, cols int, offset float64) string {
	line := make([]rune, cols)
	for i := range line {
		line[i] = ' '
	}
	for _, grp := range w.Groups {
		idx, _ := w.IndexOf(grp.Start())
		col := g.Column(float64(idx)*timeline.UnitWidth, offset)
		if col >= cols {
			break
		}
		label := []rune("▏" + grp.Label)
		for j, r := range label {
			if c := col + j; c >= 0 && c < cols {
				line[c] = r
			}
		}
	}
	return StyleHeader.Render(string(line))
}

// unitLine numbers days when there is room for two digits per day.
func unitLine(w timeline.Window, g Grid, cols int, offset float64) string {
	perDay := int(timeline.UnitWidth / g.CellPx)
	if !w.Zoom.DayGranular() || perDay < 2 {
		return StyleDim.Render(strings.Repeat("─", cols))
	}
	line := make([]rune, cols)
	for i := range line {
		line[i] = ' '
	}
	for i, u := range w.Units {
		col := g.Column(float64(i)*timeline.UnitWidth, offset)
		if col >= cols {
			break
		}
		digits := []rune(twoDigits(u.Date.Day))
		for j, r := range digits {
			if c := col + j; c >= 0 && c < cols {
				line[c] = r
			}
		}
	}
	return StyleDim.Render(string(line))
}

func twoDigits(n int) string {
	if n < 10 {
		return " " + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func laneLine(it domain.WorkItem, bar timeline.BarRect, g Grid, cols int, offset float64, todayCol int, dragging bool) string {
	first := g.Column(bar.X, offset)
	last := int(math.Ceil((bar.Right()-offset)/g.CellPx)) - 1
	doneCols := (last - first + 1) * it.Progress / 100

	style := ItemStyle(it)
	if dragging {
		style = StyleYellow
	}

	var b strings.Builder
	for col := 0; col < cols; col++ {
		switch {
		case col >= first && col <= last:
			switch {
			case dragging:
				b.WriteString(style.Render(barDragging))
			case col-first < doneCols:
				b.WriteString(style.Render(barDone))
			default:
				b.WriteString(style.Render(barTodo))
			}
		case col == todayCol:
			b.WriteString(StyleRed.Render(todayMark))
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}
