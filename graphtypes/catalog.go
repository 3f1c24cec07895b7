// Package graphtypes resolves the profile entity types a connector schema
// needs: the transitive closure of referenced catalog types plus ad-hoc
// types derived from entity field mappings.
package graphtypes

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	// ErrUnknownCatalogType is returned when a referenced type name is not
	// in the snapshot. The message names the type so a stale snapshot can
	// be regenerated.
	ErrUnknownCatalogType = errors.New("graphtypes: type not in catalog snapshot")

	// ErrUnknownLabel is returned when a people label has no type mapping.
	ErrUnknownLabel = errors.New("graphtypes: no catalog type for label")
)

// RootMarkerType anchors every resolution: all profile entity types derive
// from it and emitted declarations list it first.
const RootMarkerType = "itemFacet"

// ProfileProperty is one property of a catalog profile type. Type is an
// Edm scalar name, an enum name, a Collection(X) wrapper, or another
// catalog type name.
type ProfileProperty struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable,omitempty"`
}

// ProfileType is one entry of the static profile-type catalog.
type ProfileType struct {
	Name       string            `yaml:"name"`
	BaseType   string            `yaml:"baseType,omitempty"`
	Properties []ProfileProperty `yaml:"properties,omitempty"`
	Required   []string          `yaml:"required,omitempty"`
}

// Property returns the declared property with the given name, or nil.
func (t *ProfileType) Property(name string) *ProfileProperty {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			return &t.Properties[i]
		}
	}

	return nil
}

// Snapshot is a versioned, read-only snapshot of the catalog service's
// profile types. It is reference data loadable without network access.
type Snapshot struct {
	// Version identifies the catalog snapshot this was generated from.
	Version string `yaml:"version"`

	// Types are the catalog profile types.
	Types []ProfileType `yaml:"types"`

	// Aliases maps alternate type names to canonical ones.
	Aliases map[string]string `yaml:"aliases,omitempty"`

	// Labels maps people labels to catalog type names.
	Labels map[string]string `yaml:"labels"`

	// Enums lists enum-like string types that are not structural types.
	Enums []string `yaml:"enums,omitempty"`

	index map[string]*ProfileType
	enums map[string]bool
}

// LoadSnapshot parses a snapshot document.
func LoadSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot

	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing catalog snapshot: %w", err)
	}

	snap.buildIndex()

	return &snap, nil
}

func (s *Snapshot) buildIndex() {
	s.index = make(map[string]*ProfileType, len(s.Types))
	for i := range s.Types {
		s.index[s.Types[i].Name] = &s.Types[i]
	}

	s.enums = make(map[string]bool, len(s.Enums))
	for _, e := range s.Enums {
		s.enums[e] = true
	}
}

// Type returns the catalog type with the given name, resolving aliases.
// Returns nil when the snapshot has no such type.
func (s *Snapshot) Type(name string) *ProfileType {
	if canonical, ok := s.Aliases[name]; ok {
		name = canonical
	}

	return s.index[name]
}

// TypeForLabel returns the catalog type name a people label maps to.
func (s *Snapshot) TypeForLabel(label string) (string, error) {
	name, ok := s.Labels[label]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLabel, label)
	}

	return name, nil
}

// IsEnum reports whether name is an enum-like string type.
func (s *Snapshot) IsEnum(name string) bool {
	return s.enums[name]
}

// TypeRef is a parsed catalog type reference.
type TypeRef struct {
	// Name is the referenced type with any Collection wrapper removed.
	Name string

	// Collection reports whether the reference was Collection-wrapped.
	Collection bool
}

// ParseTypeRef unwraps Collection(X) wrappers.
func ParseTypeRef(s string) TypeRef {
	if inner, ok := strings.CutPrefix(s, "Collection("); ok {
		return TypeRef{Name: strings.TrimSuffix(inner, ")"), Collection: true}
	}

	return TypeRef{Name: s}
}

// IsScalar reports whether the reference names an Edm scalar.
func (r TypeRef) IsScalar() bool {
	return strings.HasPrefix(r.Name, "Edm.")
}

//go:embed snapshot.yaml
var embeddedSnapshot []byte

var (
	defaultSnapshot     *Snapshot
	defaultSnapshotOnce sync.Once
)

// DefaultSnapshot returns the snapshot bundled with the generator.
func DefaultSnapshot() *Snapshot {
	defaultSnapshotOnce.Do(func() {
		snap, err := LoadSnapshot(embeddedSnapshot)
		if err != nil {
			// The embedded snapshot is validated by tests; a parse
			// failure here is a build defect.
			panic(err)
		}

		defaultSnapshot = snap
	})

	return defaultSnapshot
}
