package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexColor(t *testing.T, hex string) color.RGBA {
	t.Helper()
	var r, g, b uint8
	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	require.NoError(t, err)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	assert.Equal(t, want, got, "pixel (%d,%d)", x, y)
}

func TestPNG_SizeMatchesSVGFrame(t *testing.T) {
	c := testChart(domain.ZoomWeekBand)
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, c, Options{}))

	img := decodePNG(t, buf.Bytes())
	f := newFrame(c, Options{})
	assert.Equal(t, f.width(), img.Bounds().Dx())
	assert.Equal(t, f.height(), img.Bounds().Dy())
}

func TestPNG_PaintsBarsAtLayoutGeometry(t *testing.T) {
	c := testChart(domain.ZoomWeekBand)
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, c, Options{}))
	img := decodePNG(t, buf.Bytes())

	// Bar a spans x 2720..2920, y 64..104 on the canvas; sample above the
	// title text and the progress strip.
	assertPixel(t, img, 2860, 72, hexColor(t, domain.DefaultStatusColor(domain.WorkItemInProgress)))
	assertPixel(t, img, 2, img.Bounds().Dy()-2, hexColor(t, colorBg))
}

func TestPNG_ReturnsWriteError(t *testing.T) {
	err := PNG(failingWriter{}, testChart(domain.ZoomDay), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing png")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = ParseFormat(" svg ")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	_, err = ParseFormat("txt")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatPNG, FormatFromPath("out/chart.PNG"))
	assert.Equal(t, FormatSVG, FormatFromPath("chart.svg"))
	assert.Equal(t, FormatSVG, FormatFromPath("chart"))
	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "image/svg+xml", FormatSVG.ContentType())
}

func TestWrite_DispatchesOnFormat(t *testing.T) {
	c := testChart(domain.ZoomDay)

	var svgBuf, pngBuf bytes.Buffer
	require.NoError(t, Write(&svgBuf, FormatSVG, c, Options{}))
	require.NoError(t, Write(&pngBuf, FormatPNG, c, Options{}))

	assert.Contains(t, svgBuf.String(), "<svg")
	assert.True(t, bytes.HasPrefix(pngBuf.Bytes(), []byte("\x89PNG")))
	assert.Error(t, Write(&svgBuf, Format("txt"), c, Options{}))
}

func TestOptionsValidate_BoundsLabelWidth(t *testing.T) {
	assert.NoError(t, Options{LabelWidth: MaxLabelWidth}.Validate())
	assert.NoError(t, Options{LabelWidth: -1}.Validate())
	assert.Error(t, Options{LabelWidth: MaxLabelWidth + 1}.Validate())

	c := testChart(domain.ZoomDay)
	huge := Options{LabelWidth: 2_000_000_000}
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, c, huge))
	assert.Error(t, SVG(&buf, c, huge))
	assert.Zero(t, buf.Len(), "nothing is written for rejected options")
}
