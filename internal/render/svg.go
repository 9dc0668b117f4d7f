// Package render exports a chart as a standalone SVG or PNG image using the
// same pixel geometry the interactive chart hit-tests against.
package render

import (
	"fmt"
	"io"
	"math"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// Header band geometry in pixels.
const (
	GroupRowHeight = 24
	UnitRowHeight  = 20
	HeaderHeight   = GroupRowHeight + UnitRowHeight
	DefaultLabels  = 180
	MaxLabelWidth  = 2000
)

// Palette, shared with the terminal formatter.
const (
	colorBg      = "#282828"
	colorGrid    = "#3c3836"
	colorDim     = "#928374"
	colorFg      = "#ebdbb2"
	colorHeader  = "#fe8019"
	colorToday   = "#fb4934"
	colorSelect  = "#fabd2f"
	colorWeekend = "#32302f"
)

// Options tune the exported document.
type Options struct {
	// LabelWidth is the width of the title column left of the track. Zero
	// selects DefaultLabels; a negative value hides the column.
	LabelWidth int
	Title      string
}

// Validate rejects options that would size the canvas unreasonably.
func (o Options) Validate() error {
	if o.LabelWidth > MaxLabelWidth {
		return fmt.Errorf("label width %d exceeds %d", o.LabelWidth, MaxLabelWidth)
	}
	return nil
}

// SVG writes c as an SVG document. The first write error is returned.
func SVG(w io.Writer, c *chart.Chart, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	ew := &errWriter{w: w}
	newRenderer(ew, c, opts).draw()
	if ew.err != nil {
		return fmt.Errorf("writing svg: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first error so drawing code can ignore write results.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}

// frame is the canvas geometry shared by every output format.
type frame struct {
	chart  *chart.Chart
	mapper timeline.Mapper
	labels int
	title  string
}

func newFrame(c *chart.Chart, opts Options) frame {
	labels := opts.LabelWidth
	switch {
	case labels == 0:
		labels = DefaultLabels
	case labels < 0:
		labels = 0
	}
	return frame{chart: c, mapper: c.Mapper(), labels: labels, title: opts.Title}
}

func px(v float64) int { return int(math.Round(v)) }

func (f frame) width() int  { return f.labels + px(f.mapper.TrackWidth()) }
func (f frame) height() int { return HeaderHeight + px(f.chart.ContentHeight()) }

// trackX converts a track pixel to a canvas pixel.
func (f frame) trackX(x float64) int { return f.labels + px(x) }

func (f frame) groupX(g timeline.PeriodGroup) int {
	i, _ := f.mapper.Window().IndexOf(g.Start())
	return f.trackX(float64(i) * timeline.UnitWidth)
}

type renderer struct {
	frame
	canvas *svg.SVG
}

func newRenderer(w io.Writer, c *chart.Chart, opts Options) *renderer {
	return &renderer{frame: newFrame(c, opts), canvas: svg.New(w)}
}

func (r *renderer) draw() {
	cv := r.canvas
	cv.Start(r.width(), r.height())
	if r.title != "" {
		cv.Title(r.title)
	}
	cv.Rect(0, 0, r.width(), r.height(), "fill:"+colorBg)

	r.drawGrid()
	r.drawHeader()
	r.drawToday()
	r.drawBars()
	cv.End()
}

func (r *renderer) drawGrid() {
	cv := r.canvas
	win := r.mapper.Window()
	top, bottom := HeaderHeight, r.height()

	cv.Gid("grid")
	if win.Zoom.DayGranular() {
		for i, u := range win.Units {
			x := r.trackX(float64(i) * timeline.UnitWidth)
			if wd := u.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				cv.Rect(x, top, px(timeline.UnitWidth), bottom-top, "fill:"+colorWeekend)
			}
			cv.Line(x, top, x, bottom, "stroke:"+colorGrid+";stroke-width:1")
		}
	}
	for _, g := range win.Groups {
		x := r.groupX(g)
		cv.Line(x, 0, x, bottom, "stroke:"+colorDim+";stroke-width:1")
	}
	cv.Gend()
}

func (r *renderer) drawHeader() {
	cv := r.canvas
	win := r.mapper.Window()

	cv.Gid("header")
	cv.Line(0, HeaderHeight, r.width(), HeaderHeight, "stroke:"+colorDim+";stroke-width:1")
	for _, g := range win.Groups {
		cv.Text(r.groupX(g)+4, GroupRowHeight-8, g.Label,
			"fill:"+colorHeader+";font-family:monospace;font-size:12px;font-weight:bold")
	}
	if win.Zoom.DayGranular() {
		for i, u := range win.Units {
			x := r.trackX(float64(i)*timeline.UnitWidth + timeline.UnitWidth/2)
			style := "fill:" + colorDim + ";font-family:monospace;font-size:10px;text-anchor:middle"
			if u.IsToday {
				style = "fill:" + colorToday + ";font-family:monospace;font-size:10px;text-anchor:middle;font-weight:bold"
			}
			cv.Text(x, HeaderHeight-6, fmt.Sprintf("%d", u.Date.Day), style)
		}
	}
	cv.Gend()
}

func (r *renderer) drawToday() {
	today := r.chart.Today()
	if !r.mapper.Window().Contains(today) {
		return
	}
	x := r.trackX(r.mapper.DateToPixel(today))
	r.canvas.Line(x, HeaderHeight, x, r.height(), "stroke:"+colorToday+";stroke-width:2;stroke-dasharray:4,3")
}

func (r *renderer) drawBars() {
	cv := r.canvas
	cv.Gid("bars")
	for _, it := range r.chart.Preview() {
		bar := timeline.Bar(r.mapper, it)
		r.drawLabel(it, bar)
		r.drawBar(it, bar)
	}
	cv.Gend()
}

func (r *renderer) drawLabel(it domain.WorkItem, bar timeline.BarRect) {
	if r.labels == 0 {
		return
	}
	y := HeaderHeight + px(bar.Y+bar.Height/2) + 4
	r.canvas.Text(8, y, truncate(it.Title, r.labels/7),
		"fill:"+colorFg+";font-family:monospace;font-size:12px")
}

func (r *renderer) drawBar(it domain.WorkItem, bar timeline.BarRect) {
	cv := r.canvas
	x, y := r.trackX(bar.X), HeaderHeight+px(bar.Y)
	w, h := px(bar.Width), px(bar.Height)

	cv.Roundrect(x, y, w, h, 4, 4, "fill:"+it.Color()+";fill-opacity:0.85")
	if it.Progress > 0 {
		done := w * min(it.Progress, 100) / 100
		cv.Roundrect(x, y+h-6, done, 6, 2, 2, "fill:"+colorFg+";fill-opacity:0.6")
	}
	if r.chart.IsSelected(it.ID) {
		cv.Roundrect(x-2, y-2, w+4, h+4, 5, 5, "fill:none;stroke:"+colorSelect+";stroke-width:2")
	}
	cv.Text(x+6, y+h/2+4, truncate(it.Title, w/7),
		"fill:"+colorBg+";font-family:monospace;font-size:11px")
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	rs := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(rs) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(rs[:n-1]) + "…"
}
