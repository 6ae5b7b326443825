// Package itemfile loads drawable records from TOML documents of the form
//
//	[[item]]
//	name = "Bar"
//	c = 69
//	d = 2131283
package itemfile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"tsuika/internal/drawable"
)

// DefaultName is used for tables without a name key
const DefaultName = "item"

// Record is one [[item]] table
type Record struct {
	Name   string
	Fields map[string]any
}

// Draw renders the record like a struct dump, with keys in sorted order
func (r Record) Draw() string {
	if len(r.Fields) == 0 {
		return r.Name
	}

	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString(" {\n")
	for _, k := range keys {
		value := drawable.Dump(r.Fields[k])
		// Re-indent nested multi-line values one level
		value = strings.ReplaceAll(value, "\n", "\n    ")
		fmt.Fprintf(&b, "    %s: %s,\n", k, value)
	}
	b.WriteString("}")
	return b.String()
}

type document struct {
	Items []map[string]any `toml:"item"`
}

// Parse decodes item tables from TOML data
func Parse(data []byte) ([]Record, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}

	records := make([]Record, 0, len(doc.Items))
	for i, table := range doc.Items {
		rec := Record{Name: DefaultName, Fields: make(map[string]any, len(table))}
		for k, v := range table {
			if k != "name" {
				rec.Fields[k] = v
				continue
			}
			name, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: name must be a string, got %T", i, v)
			}
			rec.Name = name
		}
		records = append(records, rec)
	}
	return records, nil
}

// Load reads path and returns its records as drawables, in file order
func Load(path string) ([]drawable.Drawable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	items := make([]drawable.Drawable, 0, len(records))
	for _, rec := range records {
		items = append(items, rec)
	}
	return items, nil
}
