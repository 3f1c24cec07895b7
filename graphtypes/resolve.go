package graphtypes

import (
	"fmt"
	"sort"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/fieldtree"
)

// Resolution is the frozen result of one resolution pass: the catalog types
// a connector needs plus any synthesized derived types. Renderers consume
// it read-only.
type Resolution struct {
	// Used maps included catalog type names to their definitions.
	Used map[string]*ProfileType

	// Derived holds synthesized types in first-encounter order.
	Derived []*DerivedType

	// Aliases maps alternate type names to canonical ones, copied from the
	// snapshot for consumers that emit alias declarations.
	Aliases map[string]string

	snap    *Snapshot
	derived map[string]*DerivedType
}

// Resolve computes the transitive closure of catalog types referenced by
// the IR's people labels and synthesizes derived types for entity mappings
// that no catalog type covers. Single pass, not safe for concurrent reuse
// of the same in-progress state.
func Resolve(ir *cocogen.ConnectorIR, snap *Snapshot) (*Resolution, error) {
	r := &Resolution{
		Used:    make(map[string]*ProfileType),
		Aliases: snap.Aliases,
		snap:    snap,
	}

	// Seed: the root marker plus every people label's type.
	if err := r.include(RootMarkerType); err != nil {
		return nil, err
	}

	for _, p := range ir.EntityProperties() {
		name, err := snap.TypeForLabel(string(p.Entity.Kind))
		if err != nil {
			return nil, err
		}

		if err := r.include(name); err != nil {
			return nil, err
		}
	}

	// Closure step 1: base types to fixpoint.
	// Closure step 2: referenced structural types to fixpoint. The catalog
	// is acyclic by construction, and the inclusion set makes both loops
	// terminate regardless.
	for changed := true; changed; {
		changed = false

		for _, t := range r.typesSnapshot() {
			if t.BaseType != "" && r.Used[t.BaseType] == nil {
				if err := r.include(t.BaseType); err != nil {
					return nil, err
				}

				changed = true
			}

			for _, prop := range t.Properties {
				ref := ParseTypeRef(prop.Type)
				if ref.IsScalar() || snap.IsEnum(ref.Name) || r.Used[ref.Name] != nil {
					continue
				}

				if err := r.include(ref.Name); err != nil {
					return nil, err
				}

				changed = true
			}
		}
	}

	// Derived-type synthesis for mappings no catalog type covers exactly.
	d := newDeriver()

	for _, p := range ir.EntityProperties() {
		parent, err := snap.TypeForLabel(string(p.Entity.Kind))
		if err != nil {
			return nil, err
		}

		tree := fieldtree.Build(entityFields(p))
		if !matchesCatalog(snap, parent, tree) {
			d.deriveChildren(parent, tree)
		}
	}

	r.Derived = d.frozen()
	r.derived = d.types

	return r, nil
}

// include adds a catalog type by name, failing with the missing type's name
// so a stale snapshot can be regenerated.
func (r *Resolution) include(name string) error {
	if r.Used[name] != nil {
		return nil
	}

	t := r.snap.Type(name)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCatalogType, name)
	}

	r.Used[t.Name] = t

	return nil
}

// typesSnapshot returns the currently included types; iteration order does
// not matter for fixpoint computation.
func (r *Resolution) typesSnapshot() []*ProfileType {
	out := make([]*ProfileType, 0, len(r.Used))
	for _, t := range r.Used {
		out = append(out, t)
	}

	return out
}

// TypeNameForKind returns the catalog type name backing an entity kind.
func (r *Resolution) TypeNameForKind(kind cocogen.EntityKind) (string, error) {
	return r.snap.TypeForLabel(string(kind))
}

// DerivedByName returns the derived type with the given name, or nil.
func (r *Resolution) DerivedByName(name string) *DerivedType {
	return r.derived[name]
}

// NestedTypeName returns the type backing the given key of parent: a
// derived type when one was synthesized for this position, otherwise the
// catalog-declared structural reference. Empty when the key is scalar,
// enum, or unknown.
func (r *Resolution) NestedTypeName(parent, key string) string {
	if name := parent + pascal(key); r.derived[name] != nil {
		return name
	}

	t := r.snap.Type(parent)
	if t == nil {
		return ""
	}

	prop := t.Property(key)
	if prop == nil {
		return ""
	}

	ref := ParseTypeRef(prop.Type)
	if ref.IsScalar() || r.snap.IsEnum(ref.Name) {
		return ""
	}

	return ref.Name
}

// FieldIsCollection reports whether parent's key is declared
// Collection-wrapped in the catalog. Derived fields are never collections.
func (r *Resolution) FieldIsCollection(parent, key string) bool {
	t := r.snap.Type(parent)
	if t == nil {
		return false
	}

	prop := t.Property(key)
	if prop == nil {
		return false
	}

	return ParseTypeRef(prop.Type).Collection
}

// OrderedTypeNames returns every emitted type name: the root marker first,
// then all remaining catalog and derived names alphabetically by their
// target-language (Pascal-cased) name. Consumers hard-code this ordering
// for forward references, so it must stay stable.
func (r *Resolution) OrderedTypeNames() []string {
	names := make([]string, 0, len(r.Used)+len(r.Derived))

	for name := range r.Used {
		if name != RootMarkerType {
			names = append(names, name)
		}
	}

	for _, t := range r.Derived {
		names = append(names, t.Name)
	}

	sort.Slice(names, func(i, j int) bool {
		return pascal(names[i]) < pascal(names[j])
	})

	return append([]string{RootMarkerType}, names...)
}

// matchesCatalog reports whether every key of the tree corresponds 1:1 to
// a declared property of the catalog type, recursing through structural
// references for interior nodes.
func matchesCatalog(snap *Snapshot, typeName string, node *fieldtree.Node) bool {
	t := snap.Type(typeName)
	if t == nil {
		return false
	}

	for _, key := range node.Keys() {
		prop := t.Property(key)
		if prop == nil {
			return false
		}

		child := node.Child(key)
		if child.IsLeaf() {
			continue
		}

		ref := ParseTypeRef(prop.Type)
		if ref.IsScalar() || snap.IsEnum(ref.Name) {
			return false
		}

		if !matchesCatalog(snap, ref.Name, child) {
			return false
		}
	}

	return true
}

// entityFields adapts a property's entity mapping to fieldtree fields.
func entityFields(p *cocogen.Property) []fieldtree.Field {
	fields := make([]fieldtree.Field, 0, len(p.Entity.Fields))
	for _, f := range p.Entity.Fields {
		fields = append(fields, fieldtree.Field{Path: f.Path, Source: f.Source})
	}

	return fields
}
