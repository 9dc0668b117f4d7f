package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of an item import file. YAML and
// JSON files are both accepted.
type ImportSchema struct {
	Items []ItemImport `yaml:"items" json:"items"`
}

// ItemImport defines one work item in the import file. Dates are YYYY-MM-DD.
type ItemImport struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Title    string `yaml:"title" json:"title"`
	Start    string `yaml:"start" json:"start"`
	End      string `yaml:"end" json:"end"`
	Status   string `yaml:"status,omitempty" json:"status,omitempty"`
	Color    string `yaml:"color,omitempty" json:"color,omitempty"`
	Progress *int   `yaml:"progress,omitempty" json:"progress,omitempty"`
}

// LoadFile reads and parses an import file.
func LoadFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes an import document. JSON is a subset of YAML, so one decoder
// serves both formats.
func Parse(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return &schema, nil
}
