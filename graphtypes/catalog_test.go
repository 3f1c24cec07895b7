package graphtypes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/graphtypes"
)

func TestDefaultSnapshot(t *testing.T) {
	t.Parallel()

	snap := graphtypes.DefaultSnapshot()
	require.NotEmpty(t, snap.Version)
	require.NotNil(t, snap.Type(graphtypes.RootMarkerType))

	// Every fixed entity kind must map to a catalog type.
	for _, kind := range cocogen.KnownEntities {
		name, err := snap.TypeForLabel(string(kind))
		require.NoError(t, err, "label %s", kind)
		require.NotNil(t, snap.Type(name), "label %s -> %s", kind, name)
	}
}

func TestTypeResolvesAliases(t *testing.T) {
	t.Parallel()

	snap := graphtypes.DefaultSnapshot()

	direct := snap.Type("physicalAddress")
	aliased := snap.Type("address")

	require.NotNil(t, direct)
	require.Same(t, direct, aliased)
}

func TestTypeForLabelUnknown(t *testing.T) {
	t.Parallel()

	_, err := graphtypes.DefaultSnapshot().TypeForLabel("hobbies")
	require.ErrorIs(t, err, graphtypes.ErrUnknownLabel)
}

func TestParseTypeRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected graphtypes.TypeRef
		scalar   bool
	}{
		{"Edm.String", graphtypes.TypeRef{Name: "Edm.String"}, true},
		{"Collection(Edm.String)", graphtypes.TypeRef{Name: "Edm.String", Collection: true}, true},
		{"companyDetail", graphtypes.TypeRef{Name: "companyDetail"}, false},
		{"Collection(relatedPerson)", graphtypes.TypeRef{Name: "relatedPerson", Collection: true}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			ref := graphtypes.ParseTypeRef(tt.raw)
			require.Equal(t, tt.expected, ref)
			require.Equal(t, tt.scalar, ref.IsScalar())
		})
	}
}
