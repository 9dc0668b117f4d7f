package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
)

// ErrInvalidSchema marks an import file that cannot be turned into items.
var ErrInvalidSchema = errors.New("invalid import schema")

// Validate checks the schema before conversion and returns every problem
// found, not just the first.
func Validate(schema *ImportSchema) []error {
	var errs []error
	if len(schema.Items) == 0 {
		return []error{fmt.Errorf("items: at least one item is required")}
	}

	ids := make(map[string]bool)
	for i, it := range schema.Items {
		prefix := fmt.Sprintf("items[%d]", i)

		if strings.TrimSpace(it.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if it.ID != "" {
			if ids[it.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, it.ID))
			}
			ids[it.ID] = true
		}

		start, startErr := parseDate(prefix+".start", it.Start)
		if startErr != nil {
			errs = append(errs, startErr)
		}
		end, endErr := parseDate(prefix+".end", it.End)
		if endErr != nil {
			errs = append(errs, endErr)
		}
		if startErr == nil && endErr == nil && start.After(end) {
			errs = append(errs, fmt.Errorf("%s: start %s is after end %s", prefix, it.Start, it.End))
		}

		if it.Status != "" && !domain.ValidWorkItemStatuses[it.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, it.Status))
		}
		if !domain.ValidColor(it.Color) {
			errs = append(errs, fmt.Errorf("%s.color: %q is not a #rrggbb color", prefix, it.Color))
		}
		if it.Progress != nil && (*it.Progress < 0 || *it.Progress > 100) {
			errs = append(errs, fmt.Errorf("%s.progress: %d is outside 0..100", prefix, *it.Progress))
		}
	}
	return errs
}

// Join folds validation errors into one error wrapping ErrInvalidSchema.
func Join(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidSchema, msg)
}

func parseDate(field, s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, fmt.Errorf("%s is required", field)
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)
	}
	return d, nil
}
