// Package sample synthesizes fixture data for generated connectors: one
// plausible record set matching the IR's source bindings, so a freshly
// generated project runs against something before real data is wired up.
package sample

import (
	"fmt"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/render"
)

// Options configures one synthesis run.
type Options struct {
	// Count is the number of records; defaults to 3.
	Count int

	// Overrides maps a property name (or property.path for entity leaves) to
	// an expr program computing the cell value. The program sees name,
	// header, type and index.
	Overrides map[string]string
}

const defaultCount = 3

// noGroup marks columns outside any alignment group.
const noGroup = -1

// column is one addressable cell source in the fixture.
type column struct {
	key     string
	address string
	typ     cocogen.PropertyType
	multi   bool

	// group links the leaf columns of one multi-field entity collection;
	// their ragged value lists are reconciled together.
	group int
}

// Synthesize builds a fixture for the IR. Multi-field entity collections get
// independently-lengthed value lists reconciled through render.Align, so the
// fixture exercises broadcast and padding.
func Synthesize(ir *cocogen.ConnectorIR, opts Options) (*Fixture, error) {
	count := opts.Count
	if count <= 0 {
		count = defaultCount
	}

	overrides, err := compileOverrides(opts.Overrides)
	if err != nil {
		return nil, err
	}

	columns := layout(ir)

	fixture := &Fixture{Format: ir.Connection.InputFormat}
	for _, col := range columns {
		fixture.Headers = append(fixture.Headers, col.address)
	}

	for i := 0; i < count; i++ {
		cells, err := record(columns, overrides, i)
		if err != nil {
			return nil, err
		}

		fixture.append(columns, cells)
	}

	return fixture, nil
}

// layout flattens the IR's bindings into fixture columns in property order.
func layout(ir *cocogen.ConnectorIR) []*column {
	var columns []*column

	groups := 0

	for _, p := range ir.Properties {
		switch {
		case p.Entity != nil:
			group := noGroup
			if p.Type.IsCollection() && addressedLeaves(p) > 1 {
				group = groups
				groups++
			}

			for _, f := range p.Entity.Fields {
				if f.Source.NoSource {
					continue
				}

				columns = append(columns, &column{
					key:     p.Name + "." + f.Path,
					address: f.Source.Address(),
					typ:     cocogen.TypeString,
					multi:   p.Type.IsCollection(),
					group:   group,
				})
			}

		case p.Serialized != nil:
			for _, f := range p.Serialized.Fields {
				columns = append(columns, &column{
					key:     p.Name + "." + f.Name,
					address: f.Name,
					typ:     f.Type,
					group:   noGroup,
				})
			}

		case p.Source.NoSource:
			// Nothing to synthesize; the generated project throws here.

		default:
			columns = append(columns, &column{
				key:     p.Name,
				address: p.Source.Address(),
				typ:     p.Type,
				multi:   p.Type.IsCollection(),
				group:   noGroup,
			})
		}
	}

	return columns
}

func addressedLeaves(p *cocogen.Property) int {
	n := 0

	for _, f := range p.Entity.Fields {
		if !f.Source.NoSource {
			n++
		}
	}

	return n
}

// record produces one cell list per column for record i. Grouped columns are
// synthesized ragged, aligned together, then read back per column.
func record(columns []*column, overrides map[string]*override, i int) ([][]string, error) {
	cells := make([][]string, len(columns))

	// Alignment groups first: ragged lengths cycle through 0, 1 and longer
	// lists so every record shape shows up across a default run.
	grouped := make(map[int][]int)

	for ci, col := range columns {
		if col.group != noGroup {
			grouped[col.group] = append(grouped[col.group], ci)
		}
	}

	for _, members := range grouped {
		lists := make([][]string, len(members))

		for mi, ci := range members {
			col := columns[ci]
			length := (i + mi*2) % 4

			list := make([]string, length)
			for vi := range list {
				list[vi] = valueFor(col.address, col.typ, i+vi)
			}

			lists[mi] = list
		}

		aligned := render.Align(lists)

		for mi, ci := range members {
			values := make([]string, len(aligned))
			for ri, row := range aligned {
				values[ri] = row[mi]
			}

			cells[ci] = values
		}
	}

	for ci, col := range columns {
		if col.group != noGroup {
			continue
		}

		if col.multi {
			length := 1 + i%3

			list := make([]string, length)
			for vi := range list {
				list[vi] = valueFor(col.address, col.typ, i+vi)
			}

			cells[ci] = list

			continue
		}

		cells[ci] = []string{valueFor(col.address, col.typ, i)}
	}

	// Overrides replace whole cells, evaluated once per record.
	for ci, col := range columns {
		o, ok := overrides[col.key]
		if !ok {
			continue
		}

		value, err := o.eval(newOverrideEnv(col.key, col.address, col.typ, i))
		if err != nil {
			return nil, err
		}

		cells[ci] = []string{value}
	}

	return cells, nil
}

// String renders the fixture in its own format, for logging and tests.
func (f *Fixture) String() string {
	return fmt.Sprintf("fixture(%s: %d columns, %d records)", f.Format, len(f.Headers), f.Len())
}
