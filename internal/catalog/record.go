package catalog

import (
	"companydir/internal/normalize"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is one company in the directory. Every field is optional; a missing
// field and an empty one are the same thing. An empty Website means the
// company has no link.
type Record struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	City        string `json:"city,omitempty" yaml:"city,omitempty"`
	Wilaya      string `json:"wilaya,omitempty" yaml:"wilaya,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Website     string `json:"website,omitempty" yaml:"website,omitempty"`
}

// Field returns the value of the field a sort key points at. Unknown keys
// read the name.
func (r Record) Field(key SortKey) string {
	switch key {
	case SortByCategory:
		return r.Category
	case SortByWilaya:
		return r.Wilaya
	case SortByCity:
		return r.City
	case SortByType:
		return r.Type
	default:
		return r.Name
	}
}

// searchable lists the fields a free-text query looks at.
func (r Record) searchable() [6]string {
	return [6]string{r.Name, r.Description, r.City, r.Wilaya, r.Category, r.Type}
}

func (r Record) HasWebsite() bool {
	return r.Website != ""
}

// UnmarshalJSON accepts records whose fields carry the wrong JSON type.
// Numbers and booleans keep their text; null, arrays and objects are empty.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	*r = Record{}
	for key, v := range raw {
		r.set(key, jsonText(v))
	}
	return nil
}

func jsonText(v any) string {
	switch v.(type) {
	case string, float64, bool, json.Number:
		return normalize.Coerce(v)
	default:
		return ""
	}
}

// UnmarshalYAML applies the same leniency as UnmarshalJSON: any scalar is
// read as text, nulls and collections are empty.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	*r = Record{}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: record must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := resolveAlias(node.Content[i]), resolveAlias(node.Content[i+1])
		if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
			continue
		}
		r.set(key.Value, val.Value)
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func (r *Record) set(key, value string) {
	switch key {
	case "name":
		r.Name = value
	case "description":
		r.Description = value
	case "city":
		r.City = value
	case "wilaya":
		r.Wilaya = value
	case "category":
		r.Category = value
	case "type":
		r.Type = value
	case "website":
		r.Website = value
	}
}
