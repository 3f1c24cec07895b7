package sample_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/sample"
)

func csvIR(props ...*cocogen.Property) *cocogen.ConnectorIR {
	return &cocogen.ConnectorIR{
		Connection: cocogen.Connection{InputFormat: cocogen.FormatCSV},
		Properties: props,
	}
}

func csvBinding(header string) cocogen.SourceBinding {
	return cocogen.SourceBinding{CSVHeaders: []string{header}}
}

func TestSynthesizeCSV(t *testing.T) {
	t.Parallel()

	ir := csvIR(
		&cocogen.Property{Name: "id", Type: cocogen.TypeString, Source: csvBinding("employee_id")},
		&cocogen.Property{Name: "email", Type: cocogen.TypeString, Source: csvBinding("email")},
		&cocogen.Property{Name: "age", Type: cocogen.TypeInt64, Source: csvBinding("age")},
	)

	fixture, err := sample.Synthesize(ir, sample.Options{Count: 4})
	require.NoError(t, err)

	require.Equal(t, []string{"employee_id", "email", "age"}, fixture.Headers)
	require.Len(t, fixture.Rows, 4)
	require.Equal(t, 4, fixture.Len())

	// Heuristic values: id-like and email-like columns get shaped data.
	require.Equal(t, "item-1", fixture.Rows[0][0])
	require.Equal(t, "user1@example.com", fixture.Rows[0][1])
	require.Equal(t, "user2@example.com", fixture.Rows[1][1])
}

func TestSynthesizeDefaultCount(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{Name: "id", Type: cocogen.TypeString, Source: csvBinding("id")})

	fixture, err := sample.Synthesize(ir, sample.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, fixture.Len())
}

func TestSynthesizeSkipsNoSource(t *testing.T) {
	t.Parallel()

	ir := csvIR(
		&cocogen.Property{Name: "id", Type: cocogen.TypeString, Source: csvBinding("id")},
		&cocogen.Property{Name: "ghost", Type: cocogen.TypeString, Source: cocogen.SourceBinding{NoSource: true}},
	)

	fixture, err := sample.Synthesize(ir, sample.Options{Count: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"id"}, fixture.Headers)
}

func TestSynthesizeEntityColumnsAligned(t *testing.T) {
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

	fixture, err := sample.Synthesize(ir, sample.Options{Count: 5})
	require.NoError(t, err)
	require.Equal(t, []string{"skill", "skill level"}, fixture.Headers)

	// Grouped columns come back aligned: the same number of separated
	// values in every cell of one row.
	for _, row := range fixture.Rows {
		a := strings.Count(row[0], ";")
		b := strings.Count(row[1], ";")

		if row[0] == "" && row[1] == "" {
			continue
		}

		require.Equal(t, a, b, "row %v", row)
	}
}

func TestSynthesizeOverrides(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{Name: "id", Type: cocogen.TypeString, Source: csvBinding("employee_id")})

	fixture, err := sample.Synthesize(ir, sample.Options{
		Count:     2,
		Overrides: map[string]string{"id": `"emp-" + string(index + 100)`},
	})
	require.NoError(t, err)
	require.Equal(t, "emp-100", fixture.Rows[0][0])
	require.Equal(t, "emp-101", fixture.Rows[1][0])
}

func TestSynthesizeOverrideCompileError(t *testing.T) {
	t.Parallel()

	ir := csvIR(&cocogen.Property{Name: "id", Type: cocogen.TypeString, Source: csvBinding("id")})

	_, err := sample.Synthesize(ir, sample.Options{
		Overrides: map[string]string{"id": "nope("},
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "override id")
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	ir := csvIR(
		&cocogen.Property{Name: "id", Type: cocogen.TypeString, Source: csvBinding("id")},
		&cocogen.Property{Name: "email", Type: cocogen.TypeString, Source: csvBinding("email")},
	)

	fixture, err := sample.Synthesize(ir, sample.Options{Count: 2})
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, fixture.Write(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, fixture.Headers, records[0])
}

func TestWriteJSONNestsPaths(t *testing.T) {
	t.Parallel()

	ir := &cocogen.ConnectorIR{
		Connection: cocogen.Connection{InputFormat: cocogen.FormatJSON},
		Properties: []*cocogen.Property{
			{Name: "id", Type: cocogen.TypeString, Source: cocogen.SourceBinding{JSONPath: "id"}},
			{Name: "city", Type: cocogen.TypeString, Source: cocogen.SourceBinding{JSONPath: "address.city"}},
		},
	}

	fixture, err := sample.Synthesize(ir, sample.Options{Count: 1})
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, fixture.Write(&buf))

	var docs []map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 1)

	address, ok := docs[0]["address"].(map[string]any)
	require.True(t, ok, "address must nest: %v", docs[0])
	require.Equal(t, cities(t)[0], address["city"])
}

// cities mirrors the city heuristic's first value.
func cities(t *testing.T) []string {
	t.Helper()

	return []string{"Oslo"}
}
