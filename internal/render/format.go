package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/gantt/internal/chart"
)

// Format names an export encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want svg or png)", s)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to SVG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatSVG
}

// ContentType is the MIME type of documents in format f.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Write encodes c in format f.
func Write(w io.Writer, f Format, c *chart.Chart, opts Options) error {
	switch f {
	case FormatSVG:
		return SVG(w, c, opts)
	case FormatPNG:
		return PNG(w, c, opts)
	default:
		return fmt.Errorf("unsupported format %q (want svg or png)", f)
	}
}
