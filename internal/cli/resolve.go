package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/sahilm/fuzzy"
)

// resolveItemID resolves a work item identifier which can be:
//   - A full ID
//   - A unique ID prefix (as printed by "gantt list")
//   - A fuzzy match on the title, when exactly one item scores best
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	items, err := app.WorkItems.List(ctx)
	if err != nil {
		return "", err
	}
	return matchItem(items, input)
}

func matchItem(items []*domain.WorkItem, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty work item reference")
	}

	var prefixed []*domain.WorkItem
	for _, w := range items {
		if w.ID == input {
			return w.ID, nil
		}
		if strings.HasPrefix(w.ID, input) {
			prefixed = append(prefixed, w)
		}
	}
	switch len(prefixed) {
	case 1:
		return prefixed[0].ID, nil
	case 0:
	default:
		return "", fmt.Errorf("ID prefix %q matches %d work items", input, len(prefixed))
	}

	titles := make([]string, len(items))
	for i, w := range items {
		titles[i] = w.Title
	}
	matches := fuzzy.Find(input, titles)
	if len(matches) == 0 {
		return "", fmt.Errorf("no work item matches %q", input)
	}
	if len(matches) > 1 && matches[0].Score == matches[1].Score {
		return "", fmt.Errorf("%q is ambiguous: %q or %q", input, matches[0].Str, matches[1].Str)
	}
	return items[matches[0].Index].ID, nil
}
