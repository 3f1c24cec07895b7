package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/graphtypes"
	"github.com/wictorwilen/cocogen-sub001/render"
	"github.com/wictorwilen/cocogen-sub001/render/csharp"
	"github.com/wictorwilen/cocogen-sub001/render/typescript"
)

func csvIR(props ...*cocogen.Property) *cocogen.ConnectorIR {
	return &cocogen.ConnectorIR{
		Connection: cocogen.Connection{InputFormat: cocogen.FormatCSV},
		Properties: props,
	}
}

func rendererFor(t *testing.T, target render.Target, ir *cocogen.ConnectorIR) *render.Renderer {
	t.Helper()

	types, err := graphtypes.Resolve(ir, graphtypes.DefaultSnapshot())
	require.NoError(t, err)

	return render.New(target, ir, types)
}

func csvBinding(header string) cocogen.SourceBinding {
	return cocogen.SourceBinding{CSVHeaders: []string{header}}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	require.NotNil(t, render.Get(cocogen.TargetTypeScript))
	require.NotNil(t, render.Get(cocogen.TargetCSharp))
	require.Nil(t, render.Get("cobol"))
	require.Len(t, render.RegisteredTargets(), 2)
}

func TestPlainProperty(t *testing.T) {
	t.Parallel()

	ir := csvIR(
		&cocogen.Property{Name: "title", Type: cocogen.TypeString, Source: csvBinding("title")},
		&cocogen.Property{Name: "age", Type: cocogen.TypeInt64, Source: csvBinding("age")},
		&cocogen.Property{Name: "tags", Type: cocogen.TypeStringCollection, Source: csvBinding("tags")},
	)
	r := rendererFor(t, typescript.New(), ir)

	tests := []struct {
		property string
		expected string
	}{
		{"title", "row['title']"},
		{"age", "toInt64(row['age'])"},
		{"tags", "parseCollection(row['tags'])"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.property, func(t *testing.T) {
			t.Parallel()

			code, err := r.PropertyValue(ir.PropertyByName(tt.property))
			require.NoError(t, err)
			require.Equal(t, tt.expected, code)
		})
	}
}

func TestDefaultAppliesBeforeValidation(t *testing.T) {
	t.Parallel()

	minLen := 2
	ir := csvIR(&cocogen.Property{
		Name:      "country",
		Type:      cocogen.TypeString,
		MinLength: &minLen,
		Source: cocogen.SourceBinding{
			CSVHeaders: []string{"country"},
			Default:    "Norway",
		},
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t,
		"validateString(applyDefault(row['country'], 'Norway'), { minLength: 2 }, 'country')",
		code)
}

func TestCollectionDefaultAppliesAfterParse(t *testing.T) {
	t.Parallel()

	minLen := 2
	ir := csvIR(&cocogen.Property{
		Name:      "tags",
		Type:      cocogen.TypeStringCollection,
		MinLength: &minLen,
		Source: cocogen.SourceBinding{
			CSVHeaders: []string{"tags"},
			Default:    "general",
		},
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t,
		"validateStringCollection(applyDefault(parseCollection(row['tags']), 'general'), { minLength: 2 }, 'tags')",
		code)
}

func TestNoSourceThrows(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{
		Name:   "ghost",
		Type:   cocogen.TypeString,
		Source: cocogen.SourceBinding{NoSource: true},
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t, "(() => { throw new Error('no source mapping for ghost'); })()", code)
}

func TestEntitySingleObject(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{
		Name: "name",
		Type: cocogen.TypeString,
		Entity: &cocogen.PersonEntity{
			Kind: cocogen.EntityNames,
			Fields: []cocogen.EntityField{
				{Path: "displayName", Source: csvBinding("full name")},
			},
		},
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t, "({ displayName: row['full name'] } as PersonName)", code)
}

func TestEntitySingleFieldCollection(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{
		Name: "skills",
		Type: cocogen.TypeStringCollection,
		Entity: &cocogen.PersonEntity{
			Kind: cocogen.EntitySkills,
			Fields: []cocogen.EntityField{
				{Path: "displayName", Source: csvBinding("skill")},
			},
		},
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t,
		"collect(parseCollection(row['skill']), (value) => ({ displayName: value } as SkillProficiency))",
		code)
}

func TestEntityAlignedCollection(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{
		Name: "skills",
		Type: cocogen.TypeStringCollection,
		Entity: &cocogen.PersonEntity{
			Kind: cocogen.EntitySkills,
			Fields: []cocogen.EntityField{
				{Path: "displayName", Source: csvBinding("skill")},
				{Path: "proficiency", Source: csvBinding("skill level")},
			},
		},
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t,
		"align([parseCollection(row['skill']), parseCollection(row['skill level'])], "+
			"(values) => ({ displayName: values[0], proficiency: values[1] } as SkillProficiency))",
		code)
}

func TestEntityAlignedCollectionCSharp(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{
		Name: "skills",
		Type: cocogen.TypeStringCollection,
		Entity: &cocogen.PersonEntity{
			Kind: cocogen.EntitySkills,
			Fields: []cocogen.EntityField{
				{Path: "displayName", Source: csvBinding("skill")},
				{Path: "proficiency", Source: csvBinding("skill level")},
			},
		},
	})

	code, err := rendererFor(t, csharp.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t,
		`Helpers.Align(new[] { Helpers.ParseCollection(row["skill"]), Helpers.ParseCollection(row["skill level"]) }, `+
			`values => new SkillProficiency { DisplayName = values[0], Proficiency = values[1] })`,
		code)
}

func TestEntityNestedDerivedCast(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{
		Name: "skills",
		Type: cocogen.TypeStringCollection,
		Entity: &cocogen.PersonEntity{
			Kind: cocogen.EntitySkills,
			Fields: []cocogen.EntityField{
				{Path: "displayName", Source: csvBinding("skill")},
				{Path: "detail.category", Source: csvBinding("skill category")},
			},
		},
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t,
		"align([parseCollection(row['skill']), parseCollection(row['skill category'])], "+
			"(values) => ({ displayName: values[0], detail: ({ category: values[1] } as SkillProficiencyDetail) } as SkillProficiency))",
		code)
}

func TestSerializedProperty(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{
		Name: "badge",
		Type: cocogen.TypeString,
		Serialized: &cocogen.SerializedModel{
			Name: "Badge",
			Fields: []cocogen.SerializedField{
				{Name: "label", Type: cocogen.TypeString},
				{Name: "level", Type: cocogen.TypeInt64},
			},
		},
		Source: csvBinding("badge"),
	})

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t, "stringify({ label: row['label'], level: toInt64(row['level']) })", code)
}

func TestJSONAddressing(t *testing.T) {
	t.Parallel()

	ir := &cocogen.ConnectorIR{
		Connection: cocogen.Connection{InputFormat: cocogen.FormatJSON},
		Properties: []*cocogen.Property{{
			Name:   "city",
			Type:   cocogen.TypeString,
			Source: cocogen.SourceBinding{JSONPath: "address.city"},
		}},
	}

	code, err := rendererFor(t, typescript.New(), ir).PropertyValue(ir.Properties[0])
	require.NoError(t, err)
	require.Equal(t, "valueAt(item, 'address.city')", code)
}
