package fieldtree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/fieldtree"
)

func csvField(path, header string) fieldtree.Field {
	return fieldtree.Field{
		Path:   path,
		Source: cocogen.SourceBinding{CSVHeaders: []string{header}},
	}
}

func TestBuildShape(t *testing.T) {
	t.Parallel()

	root := fieldtree.Build([]fieldtree.Field{
		csvField("displayName", "skill"),
		csvField("proficiency", "skill level"),
		csvField("detail.category", "skill category"),
	})

	require.Equal(t, []string{"displayName", "proficiency", "detail"}, root.Keys())
	require.True(t, root.Child("displayName").IsLeaf())
	require.True(t, root.Child("proficiency").IsLeaf())

	detail := root.Child("detail")
	require.False(t, detail.IsLeaf())
	require.Equal(t, []string{"category"}, detail.Keys())
	require.Equal(t, "skill category", detail.Child("category").Field().Source.Address())
}

func TestBuildSegmentCleanup(t *testing.T) {
	t.Parallel()

	root := fieldtree.Build([]fieldtree.Field{
		csvField(" a . b ", "h1"),
		csvField("a..c", "h2"),
	})

	a := root.Child("a")
	require.NotNil(t, a)
	require.Equal(t, []string{"b", "c"}, a.Keys())
}

func TestBuildLeafInteriorCollision(t *testing.T) {
	t.Parallel()

	root := fieldtree.Build([]fieldtree.Field{
		csvField("company", "company"),
		csvField("company.name", "company name"),
	})

	company := root.Child("company")
	require.False(t, company.IsLeaf())
	require.Equal(t, []string{"name"}, company.Keys())
}

func TestLeavesRoundTrip(t *testing.T) {
	t.Parallel()

	fields := []fieldtree.Field{
		csvField("displayName", "skill"),
		csvField("detail.category", "cat"),
		csvField("detail.subcategory", "subcat"),
		csvField("proficiency", "level"),
	}

	root := fieldtree.Build(fields)

	// Disjoint paths re-flatten to the input, parents grouped by first
	// appearance.
	expected := []fieldtree.Field{
		fields[0], fields[1], fields[2], fields[3],
	}

	if diff := cmp.Diff(expected, root.Leaves()); diff != "" {
		t.Errorf("Leaves() mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, len(fields), root.LeafCount())
}
