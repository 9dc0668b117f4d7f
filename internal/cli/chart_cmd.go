package cli

import (
	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/spf13/cobra"
)

func newChartCmd(app *App) *cobra.Command {
	var (
		zoom   domain.ZoomLevel
		anchor domain.Date
		width  int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the timeline around the anchor date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid := formatter.DefaultGrid(app.Config.CellPx)
			c, err := newChart(cmd.Context(), app, chartSettings{
				Zoom:          zoom,
				Anchor:        anchor,
				ViewportWidth: grid.ViewportPx(width),
			})
			if err != nil {
				return err
			}
			centerOn(c, c.Anchor())
			printf(cmd, "%s\n", formatter.ChartText(c, grid, width))
			return nil
		},
	}

	addZoomFlag(cmd.Flags(), &zoom, app.Config.Zoom)
	addAnchorFlag(cmd.Flags(), &anchor)
	cmd.Flags().IntVarP(&width, "width", "w", 100, "Output width in columns")

	return cmd
}
