package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ganttHuhTheme returns a custom huh theme using the formatter palette.
func ganttHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// itemFields are the raw form values for a new work item.
type itemFields struct {
	Title    string
	Start    string
	End      string
	Status   string
	Color    string
	Progress string
}

// itemForm collects the fields "gantt item add" was not given on the command line.
func itemForm(f *itemFields) *huh.Form {
	statuses := make([]huh.Option[string], 0, 4)
	for _, s := range []domain.WorkItemStatus{
		domain.WorkItemTodo, domain.WorkItemInProgress, domain.WorkItemBlocked, domain.WorkItemDone,
	} {
		statuses = append(statuses, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&f.Title).Validate(validateRequired),
			huh.NewInput().Title("Start (YYYY-MM-DD)").Placeholder(domain.Today().String()).
				Value(&f.Start).Validate(validateDate),
			huh.NewInput().Title("End (YYYY-MM-DD, blank for same day)").
				Value(&f.End).Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Status").Options(statuses...).Value(&f.Status),
			huh.NewInput().Title("Color (#rrggbb, blank for status color)").
				Value(&f.Color).Validate(validateOptionalColor),
			huh.NewInput().Title("Progress %").Placeholder("0").
				Value(&f.Progress).Validate(validateProgress),
		),
	).WithTheme(ganttHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	_, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateDate(s)
}

func validateOptionalColor(s string) error {
	if domain.ValidColor(s) {
		return nil
	}
	return fmt.Errorf("use #rrggbb")
}

func validateProgress(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("enter a whole number from 0 to 100")
	}
	return nil
}

// toWorkItem validates the fields and builds an unsaved item. The lane is
// left for the service to assign.
func (f itemFields) toWorkItem() (*domain.WorkItem, error) {
	if err := validateRequired(f.Title); err != nil {
		return nil, domain.ErrEmptyTitle
	}
	start, err := domain.ParseDate(strings.TrimSpace(f.Start))
	if err != nil {
		return nil, err
	}
	end := start
	if strings.TrimSpace(f.End) != "" {
		if end, err = domain.ParseDate(strings.TrimSpace(f.End)); err != nil {
			return nil, err
		}
	}

	status := domain.WorkItemTodo
	if f.Status != "" {
		if !domain.ValidWorkItemStatuses[f.Status] {
			return nil, fmt.Errorf("invalid status %q", f.Status)
		}
		status = domain.WorkItemStatus(f.Status)
	}
	if err := validateOptionalColor(f.Color); err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", f.Color, err)
	}
	if err := validateProgress(f.Progress); err != nil {
		return nil, fmt.Errorf("invalid progress %q: %w", f.Progress, err)
	}
	progress, _ := strconv.Atoi(strings.TrimSpace(f.Progress))

	w := &domain.WorkItem{
		Title:       strings.TrimSpace(f.Title),
		Start:       start,
		End:         end,
		RowIndex:    -1,
		Status:      status,
		StatusColor: f.Color,
		Progress:    progress,
	}
	return w, w.Validate()
}
