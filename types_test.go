package cocogen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cocogen "github.com/wictorwilen/cocogen-sub001"
)

func TestParsePropertyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected cocogen.PropertyType
	}{
		{"string", cocogen.TypeString},
		{"int64", cocogen.TypeInt64},
		{"double", cocogen.TypeDouble},
		{"dateTime", cocogen.TypeDateTime},
		{"boolean", cocogen.TypeBoolean},
		{"string[]", cocogen.TypeStringCollection},
		{"int64[]", cocogen.TypeInt64Collection},
		{"double[]", cocogen.TypeDoubleCollection},
		{"dateTime[]", cocogen.TypeDateTimeCollection},
		{"principal", cocogen.TypePrincipal},
		{"principal[]", cocogen.TypePrincipalCollection},
		{" string ", cocogen.TypeString},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := cocogen.ParsePropertyType(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePropertyTypeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		err  error
	}{
		{"empty", "", cocogen.ErrEmptyTypeString},
		{"unknown scalar", "decimal", cocogen.ErrUnsupportedType},
		{"boolean collection", "boolean[]", cocogen.ErrUnsupportedElem},
		{"nested collection", "string[][]", cocogen.ErrNestedNonScalar},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := cocogen.ParsePropertyType(tt.raw)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPropertyTypeHelpers(t *testing.T) {
	t.Parallel()

	require.True(t, cocogen.TypeStringCollection.IsCollection())
	require.False(t, cocogen.TypeString.IsCollection())
	require.Equal(t, cocogen.TypeInt64, cocogen.TypeInt64Collection.Element())
	require.Equal(t, cocogen.TypeString, cocogen.TypeString.Element())
	require.True(t, cocogen.TypePrincipalCollection.IsPrincipal())
	require.True(t, cocogen.TypeDoubleCollection.IsNumeric())
	require.False(t, cocogen.TypeDateTime.IsNumeric())
	require.True(t, cocogen.TypeStringCollection.IsStringFamily())
	require.False(t, cocogen.TypePrincipal.IsStringFamily())
}
