package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		zoom       domain.ZoomLevel
		anchor     domain.Date
		out, title string
		format     string
		labelWidth int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the whole timeline window as an SVG or PNG image",
		Long: `Render the whole generated window, not just what fits on screen.

The format follows --format, or the extension of --out, and defaults to SVG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := render.FormatFromPath(out)
			if format != "" {
				parsed, err := render.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			}

			opts := render.Options{Title: title, LabelWidth: labelWidth}
			if err := opts.Validate(); err != nil {
				return err
			}

			c, err := newChart(cmd.Context(), app, chartSettings{Zoom: zoom, Anchor: anchor})
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer file.Close()
				w = file
			}

			if err := render.Write(w, f, c, opts); err != nil {
				return err
			}
			if out != "" && out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
			}
			return nil
		},
	}

	addZoomFlag(cmd.Flags(), &zoom, app.Config.Zoom)
	addAnchorFlag(cmd.Flags(), &anchor)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: svg or png (default from --out)")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().IntVar(&labelWidth, "label-width", render.DefaultLabels, fmt.Sprintf("Width of the title column in pixels (at most %d, negative hides it)", render.MaxLabelWidth))

	return cmd
}
