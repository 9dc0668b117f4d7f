package cli

import (
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/spf13/pflag"
)

// zoomValue is a pflag.Value accepting the zoom tokens and their aliases.
type zoomValue struct {
	z *domain.ZoomLevel
}

var _ pflag.Value = (*zoomValue)(nil)

func newZoomValue(def domain.ZoomLevel, p *domain.ZoomLevel) *zoomValue {
	*p = def
	return &zoomValue{z: p}
}

func (v *zoomValue) String() string { return string(*v.z) }
func (v *zoomValue) Type() string   { return "zoom" }

func (v *zoomValue) Set(s string) error {
	z, err := domain.ParseZoomLevel(s)
	if err != nil {
		return err
	}
	*v.z = z
	return nil
}

// dateValue is a pflag.Value holding a YYYY-MM-DD date. The zero date
// means unset.
type dateValue struct {
	d *domain.Date
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(p *domain.Date) *dateValue {
	return &dateValue{d: p}
}

func (v *dateValue) String() string {
	if v.d.IsZero() {
		return ""
	}
	return v.d.String()
}

func (v *dateValue) Type() string { return "date" }

func (v *dateValue) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

// addZoomFlag registers --zoom on fs, defaulting to def.
func addZoomFlag(fs *pflag.FlagSet, p *domain.ZoomLevel, def domain.ZoomLevel) {
	fs.VarP(newZoomValue(def, p), "zoom", "z", "Zoom level: day, week or month")
}

// addAnchorFlag registers --anchor on fs.
func addAnchorFlag(fs *pflag.FlagSet, p *domain.Date) {
	fs.Var(newDateValue(p), "anchor", "Date the timeline is built around (default today)")
}
