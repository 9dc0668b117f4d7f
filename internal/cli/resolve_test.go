package cli

import (
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchItem(t *testing.T) {
	items := []*domain.WorkItem{
		{ID: "a1b2c3d4-0000", Title: "Design review"},
		{ID: "a1b2ffff-0000", Title: "Build pipeline"},
		{ID: "77770000-0000", Title: "Alpha one"},
		{ID: "88880000-0000", Title: "Alpha two"},
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"exact id", "a1b2c3d4-0000", "a1b2c3d4-0000", ""},
		{"unique prefix", "a1b2c", "a1b2c3d4-0000", ""},
		{"ambiguous prefix", "a1b2", "", "matches 2 work items"},
		{"fuzzy title", "pipe", "a1b2ffff-0000", ""},
		{"ambiguous title", "Alpha", "", "ambiguous"},
		{"no match", "zzz", "", "no work item matches"},
		{"empty", "  ", "", "empty work item reference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchItem(items, tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
