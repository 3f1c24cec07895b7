package graphtypes

import (
	"strings"

	"github.com/wictorwilen/cocogen-sub001/fieldtree"
)

// DerivedType is a profile-record shape synthesized when no catalog type
// matches a property's field mappings exactly. During a resolution pass
// derived types are mutable accumulators owned by the deriver; Resolve
// hands them off frozen and renderers must not mutate them.
type DerivedType struct {
	// Name is the synthesized type name ({parentTypeName}{PascalKey}).
	Name string

	// Fields in first-encounter order.
	Fields []*DerivedField
}

// Field returns the field with the given name, or nil.
func (t *DerivedType) Field(name string) *DerivedField {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// DerivedField is one field of a derived type: a string-typed leaf or a
// reference to a nested derived type.
type DerivedField struct {
	Name string

	// Type is the Edm type for leaf fields; empty when Nested is set.
	Type string

	// Nested is the nested derived type for non-leaf fields.
	Nested *DerivedType
}

// deriver accumulates derived types during a single resolution pass. It is
// passed by reference through the recursion and never exposed outside
// Resolve; concurrent mutation of one deriver is not supported.
type deriver struct {
	types map[string]*DerivedType
	order []string
}

func newDeriver() *deriver {
	return &deriver{types: make(map[string]*DerivedType)}
}

// derive synthesizes (or extends) the derived type with the given name from
// an interior tree node. Repeated names merge accretively: new keys are
// appended, and a key collision on a nested field recurses into the
// existing nested type instead of replacing it.
func (d *deriver) derive(name string, node *fieldtree.Node) *DerivedType {
	t := d.types[name]
	if t == nil {
		t = &DerivedType{Name: name}
		d.types[name] = t
		d.order = append(d.order, name)
	}

	for _, key := range node.Keys() {
		child := node.Child(key)
		existing := t.Field(key)

		switch {
		case existing == nil && child.IsLeaf():
			t.Fields = append(t.Fields, &DerivedField{Name: key, Type: "Edm.String"})

		case existing == nil:
			nested := d.derive(name+pascal(key), child)
			t.Fields = append(t.Fields, &DerivedField{Name: key, Nested: nested})

		case existing.Nested != nil && !child.IsLeaf():
			d.derive(existing.Nested.Name, child)

		default:
			// Duplicate key with a divergent or identical shape: the
			// first-placed field wins.
		}
	}

	return t
}

// deriveChildren synthesizes types for every interior child of node, using
// the parent catalog type's name as the prefix. Leaf children stay fields
// of the parent and need no synthesis.
func (d *deriver) deriveChildren(parentName string, node *fieldtree.Node) {
	for _, key := range node.Keys() {
		child := node.Child(key)
		if child.IsLeaf() {
			continue
		}

		d.derive(parentName+pascal(key), child)
	}
}

// frozen returns the accumulated types in first-encounter order.
func (d *deriver) frozen() []*DerivedType {
	out := make([]*DerivedType, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.types[name])
	}

	return out
}

// pascal upper-cases the first rune of a key for type-name composition.
func pascal(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
