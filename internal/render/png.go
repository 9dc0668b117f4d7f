package render

import (
	"fmt"
	"io"
	"time"

	"git.sr.ht/~sbinet/gg"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// PNG rasterizes c with the same layout SVG produces.
func PNG(w io.Writer, c *chart.Chart, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	r := &rasterizer{frame: newFrame(c, opts)}
	r.dc = gg.NewContext(r.width(), r.height())
	r.draw()
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

type rasterizer struct {
	frame
	dc *gg.Context
}

func (r *rasterizer) draw() {
	dc := r.dc
	dc.SetHexColor(colorBg)
	dc.Clear()

	r.drawGrid()
	r.drawHeader()
	r.drawToday()
	r.drawBars()
}

func (r *rasterizer) vline(x int, top, bottom float64, color string, width float64) {
	dc := r.dc
	dc.SetHexColor(color)
	dc.SetLineWidth(width)
	dc.DrawLine(float64(x)+0.5, top, float64(x)+0.5, bottom)
	dc.Stroke()
}

func (r *rasterizer) drawGrid() {
	dc := r.dc
	win := r.mapper.Window()
	top, bottom := float64(HeaderHeight), float64(r.height())

	if win.Zoom.DayGranular() {
		for i, u := range win.Units {
			x := r.trackX(float64(i) * timeline.UnitWidth)
			if wd := u.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				dc.SetHexColor(colorWeekend)
				dc.DrawRectangle(float64(x), top, timeline.UnitWidth, bottom-top)
				dc.Fill()
			}
			r.vline(x, top, bottom, colorGrid, 1)
		}
	}
	for _, g := range win.Groups {
		r.vline(r.groupX(g), 0, bottom, colorDim, 1)
	}
}

func (r *rasterizer) drawHeader() {
	dc := r.dc
	win := r.mapper.Window()

	dc.SetHexColor(colorDim)
	dc.SetLineWidth(1)
	dc.DrawLine(0, HeaderHeight+0.5, float64(r.width()), HeaderHeight+0.5)
	dc.Stroke()

	dc.SetHexColor(colorHeader)
	for _, g := range win.Groups {
		dc.DrawString(g.Label, float64(r.groupX(g)+4), GroupRowHeight-8)
	}
	if !win.Zoom.DayGranular() {
		return
	}
	for i, u := range win.Units {
		color := colorDim
		if u.IsToday {
			color = colorToday
		}
		dc.SetHexColor(color)
		x := float64(r.trackX(float64(i)*timeline.UnitWidth + timeline.UnitWidth/2))
		dc.DrawStringAnchored(fmt.Sprintf("%d", u.Date.Day), x, HeaderHeight-6, 0.5, 0)
	}
}

func (r *rasterizer) drawToday() {
	today := r.chart.Today()
	if !r.mapper.Window().Contains(today) {
		return
	}
	dc := r.dc
	dc.SetDash(4, 3)
	r.vline(r.trackX(r.mapper.DateToPixel(today)), HeaderHeight, float64(r.height()), colorToday, 2)
	dc.SetDash()
}

func (r *rasterizer) drawBars() {
	for _, it := range r.chart.Preview() {
		bar := timeline.Bar(r.mapper, it)
		r.drawLabel(it, bar)
		r.drawBar(it, bar)
	}
}

func (r *rasterizer) drawLabel(it domain.WorkItem, bar timeline.BarRect) {
	if r.labels == 0 {
		return
	}
	dc := r.dc
	dc.SetHexColor(colorFg)
	y := float64(HeaderHeight + px(bar.Y+bar.Height/2) + 4)
	dc.DrawString(truncate(it.Title, r.labels/7), 8, y)
}

func (r *rasterizer) drawBar(it domain.WorkItem, bar timeline.BarRect) {
	dc := r.dc
	x, y := float64(r.trackX(bar.X)), float64(HeaderHeight+px(bar.Y))
	w, h := float64(px(bar.Width)), float64(px(bar.Height))

	dc.SetHexColor(it.Color())
	dc.DrawRoundedRectangle(x, y, w, h, 4)
	dc.Fill()
	if it.Progress > 0 {
		done := w * float64(min(it.Progress, 100)) / 100
		dc.SetHexColor(colorFg)
		dc.DrawRoundedRectangle(x, y+h-6, done, 6, 2)
		dc.Fill()
	}
	if r.chart.IsSelected(it.ID) {
		dc.SetHexColor(colorSelect)
		dc.SetLineWidth(2)
		dc.DrawRoundedRectangle(x-2, y-2, w+4, h+4, 5)
		dc.Stroke()
	}
	dc.SetHexColor(colorBg)
	dc.DrawString(truncate(it.Title, int(w)/7), x+6, y+h/2+4)
}
