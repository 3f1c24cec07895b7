package sample

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/pathspec"
)

// collectionSeparator joins multi-value cells in CSV output. Generated
// projects split on the same rune.
const collectionSeparator = ";"

// Fixture is one synthesized record set. CSV-addressed fixtures fill Rows;
// everything else fills Docs.
type Fixture struct {
	Format  cocogen.InputFormat
	Headers []string
	Rows    [][]string
	Docs    []map[string]any
}

// Len returns the record count.
func (f *Fixture) Len() int {
	if f.Format.UsesCSVAddressing() {
		return len(f.Rows)
	}

	return len(f.Docs)
}

// append adds one record from per-column cell lists.
func (f *Fixture) append(columns []*column, cells [][]string) {
	if f.Format.UsesCSVAddressing() {
		row := make([]string, len(columns))
		for ci := range columns {
			row[ci] = strings.Join(cells[ci], collectionSeparator)
		}

		f.Rows = append(f.Rows, row)

		return
	}

	doc := make(map[string]any)

	for ci, col := range columns {
		var value any
		if col.multi {
			value = cells[ci]
		} else if len(cells[ci]) > 0 {
			value = cells[ci][0]
		}

		place(doc, col.address, value)
	}

	f.Docs = append(f.Docs, doc)
}

// place sets a value at a dotted address, nesting maps along the path's
// property keys. Index steps do not add nesting; fixtures keep one document
// per record.
func place(doc map[string]any, address string, value any) {
	keys := addressKeys(address)
	if len(keys) == 0 {
		return
	}

	node := doc

	for _, key := range keys[:len(keys)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[key] = child
		}

		node = child
	}

	node[keys[len(keys)-1]] = value
}

func addressKeys(address string) []string {
	p, err := pathspec.Parse(address)
	if err != nil {
		return []string{address}
	}

	return p.Keys()
}

// WriteCSV writes headers plus one line per record.
func (f *Fixture) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.Headers); err != nil {
		return err
	}

	if err := cw.WriteAll(f.Rows); err != nil {
		return err
	}

	cw.Flush()

	return cw.Error()
}

// WriteJSON writes the document list as indented JSON.
func (f *Fixture) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(f.Docs)
}

// WriteYAML writes the document list as YAML.
func (f *Fixture) WriteYAML(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(f.Docs)
}

// Write renders in the fixture's own input format. REST and custom formats
// ship JSON fixtures.
func (f *Fixture) Write(w io.Writer) error {
	switch f.Format {
	case cocogen.FormatCSV:
		return f.WriteCSV(w)
	case cocogen.FormatYAML:
		return f.WriteYAML(w)
	default:
		return f.WriteJSON(w)
	}
}
