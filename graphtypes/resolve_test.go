package graphtypes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/graphtypes"
)

func entityProperty(name string, kind cocogen.EntityKind, paths ...string) *cocogen.Property {
	entity := &cocogen.PersonEntity{Kind: kind}

	for _, path := range paths {
		entity.Fields = append(entity.Fields, cocogen.EntityField{
			Path:   path,
			Source: cocogen.SourceBinding{CSVHeaders: []string{path}},
		})
	}

	return &cocogen.Property{
		Name:   name,
		Type:   cocogen.TypeStringCollection,
		Entity: entity,
	}
}

func irWith(props ...*cocogen.Property) *cocogen.ConnectorIR {
	return &cocogen.ConnectorIR{
		Connection: cocogen.Connection{InputFormat: cocogen.FormatCSV},
		Properties: props,
	}
}

func TestResolveCatalogMatch(t *testing.T) {
	t.Parallel()

	r, err := graphtypes.Resolve(
		irWith(entityProperty("skills", cocogen.EntitySkills, "displayName", "proficiency")),
		graphtypes.DefaultSnapshot(),
	)
	require.NoError(t, err)

	require.Contains(t, r.Used, graphtypes.RootMarkerType)
	require.Contains(t, r.Used, "skillProficiency")
	require.Empty(t, r.Derived, "catalog-shaped mapping must not synthesize types")
}

func TestResolveTransitiveClosure(t *testing.T) {
	t.Parallel()

	r, err := graphtypes.Resolve(
		irWith(entityProperty("positions", cocogen.EntityPositions,
			"detail.jobTitle", "detail.company.displayName")),
		graphtypes.DefaultSnapshot(),
	)
	require.NoError(t, err)

	// workPosition pulls in its structural references and their references.
	for _, name := range []string{
		graphtypes.RootMarkerType,
		"workPosition",
		"positionDetail",
		"companyDetail",
		"physicalAddress",
		"relatedPerson",
	} {
		require.Contains(t, r.Used, name)
	}

	require.Empty(t, r.Derived)
}

func TestResolveDerivesUnknownShape(t *testing.T) {
	t.Parallel()

	r, err := graphtypes.Resolve(
		irWith(entityProperty("skills", cocogen.EntitySkills,
			"displayName", "detail.category")),
		graphtypes.DefaultSnapshot(),
	)
	require.NoError(t, err)

	require.Len(t, r.Derived, 1)

	d := r.DerivedByName("skillProficiencyDetail")
	require.NotNil(t, d)
	require.NotNil(t, d.Field("category"))
	require.Equal(t, "Edm.String", d.Field("category").Type)

	require.Equal(t, "skillProficiencyDetail", r.NestedTypeName("skillProficiency", "detail"))
}

func TestResolveDerivedMergeIsAccretive(t *testing.T) {
	t.Parallel()

	snap := graphtypes.DefaultSnapshot()

	// Two properties contribute to the same derived name; the result is the
	// key union regardless of which property is seen first.
	first := irWith(
		entityProperty("primarySkills", cocogen.EntitySkills, "displayName", "detail.category"),
		entityProperty("secondarySkills", cocogen.EntitySkills, "displayName", "detail.subcategory"),
	)
	second := irWith(
		entityProperty("secondarySkills", cocogen.EntitySkills, "displayName", "detail.subcategory"),
		entityProperty("primarySkills", cocogen.EntitySkills, "displayName", "detail.category"),
	)

	ra, err := graphtypes.Resolve(first, snap)
	require.NoError(t, err)

	rb, err := graphtypes.Resolve(second, snap)
	require.NoError(t, err)

	da := ra.DerivedByName("skillProficiencyDetail")
	db := rb.DerivedByName("skillProficiencyDetail")
	require.NotNil(t, da)
	require.NotNil(t, db)

	names := func(d *graphtypes.DerivedType) map[string]bool {
		out := make(map[string]bool, len(d.Fields))
		for _, f := range d.Fields {
			out[f.Name] = true
		}

		return out
	}

	require.Equal(t, names(da), names(db))
	require.Equal(t, map[string]bool{"category": true, "subcategory": true}, names(da))
}

func TestResolveUnknownCatalogType(t *testing.T) {
	t.Parallel()

	snap, err := graphtypes.LoadSnapshot([]byte(`
version: "test"
labels:
  skills: missingType
types:
  - name: itemFacet
`))
	require.NoError(t, err)

	_, err = graphtypes.Resolve(
		irWith(entityProperty("skills", cocogen.EntitySkills, "displayName")),
		snap,
	)
	require.ErrorIs(t, err, graphtypes.ErrUnknownCatalogType)
	require.ErrorContains(t, err, "missingType")
}

func TestFieldIsCollection(t *testing.T) {
	t.Parallel()

	r, err := graphtypes.Resolve(
		irWith(entityProperty("skills", cocogen.EntitySkills, "displayName")),
		graphtypes.DefaultSnapshot(),
	)
	require.NoError(t, err)

	require.True(t, r.FieldIsCollection("skillProficiency", "categories"))
	require.False(t, r.FieldIsCollection("skillProficiency", "displayName"))
	require.False(t, r.FieldIsCollection("skillProficiency", "nope"))
}

func TestOrderedTypeNames(t *testing.T) {
	t.Parallel()

	r, err := graphtypes.Resolve(
		irWith(entityProperty("skills", cocogen.EntitySkills, "displayName", "detail.category")),
		graphtypes.DefaultSnapshot(),
	)
	require.NoError(t, err)

	names := r.OrderedTypeNames()
	require.Equal(t, graphtypes.RootMarkerType, names[0])

	// Stable alphabetical order by emitted (Pascal) name after the root.
	rest := names[1:]
	for i := 1; i < len(rest); i++ {
		require.LessOrEqual(t, rest[i-1], rest[i])
	}
}
