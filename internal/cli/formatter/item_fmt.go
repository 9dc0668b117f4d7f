package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
)

// FormatItemList renders work items as a table inside a bordered box.
func FormatItemList(items []*domain.WorkItem, today domain.Date) string {
	headers := []string{"ID", "ROW", "TITLE", "DATES", "STARTS", "STATUS", "PROGRESS"}
	rows := make([][]string, 0, len(items))

	for _, w := range items {
		rows = append(rows, []string{
			TruncID(w.ID),
			fmt.Sprintf("%d", w.RowIndex),
			ItemStyle(*w).Render("■ ") + Bold(Truncate(w.Title, 40)),
			DateRange(w.Start, w.End),
			RelativeDay(w.Start, today),
			StatusPill(w.Status),
			RenderProgress(w.Progress, 10),
		})
	}

	return RenderBox("Work Items", RenderTable(headers, rows))
}

// FormatItemDetail renders a single item card.
func FormatItemDetail(w *domain.WorkItem, today domain.Date) string {
	var b strings.Builder
	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(PadRight(label, 10)), value)
	}

	field("ID", w.ID)
	field("Title", Bold(w.Title))
	field("Dates", DateRange(w.Start, w.End))
	field("Starts", RelativeDay(w.Start, today))
	field("Ends", RelativeDay(w.End, today))
	field("Lane", fmt.Sprintf("%d", w.RowIndex))
	field("Status", StatusPill(w.Status))
	field("Color", ItemStyle(*w).Render("■ "+w.Color()))
	field("Progress", RenderProgress(w.Progress, 20))

	return RenderBox(w.Title, strings.TrimRight(b.String(), "\n"))
}
