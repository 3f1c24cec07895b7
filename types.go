package cocogen

import (
	"errors"
	"fmt"
	"strings"
)

// Type mapping errors.
var (
	ErrEmptyTypeString = errors.New("empty type string")
	ErrUnsupportedType = errors.New("unsupported property type")
	ErrNestedNonScalar = errors.New("nested non-scalar property type")
	ErrUnsupportedElem = errors.New("unsupported collection element type")
)

// PropertyType is the closed set of connector property types.
type PropertyType string

// Property type constants.
const (
	TypeString              PropertyType = "string"
	TypeInt64               PropertyType = "int64"
	TypeDouble              PropertyType = "double"
	TypeDateTime            PropertyType = "dateTime"
	TypeBoolean             PropertyType = "boolean"
	TypeStringCollection    PropertyType = "stringCollection"
	TypeInt64Collection     PropertyType = "int64Collection"
	TypeDoubleCollection    PropertyType = "doubleCollection"
	TypeDateTimeCollection  PropertyType = "dateTimeCollection"
	TypePrincipal           PropertyType = "principal"
	TypePrincipalCollection PropertyType = "principalCollection"
)

// scalarTypes maps schema scalar type strings to property types.
var scalarTypes = map[string]PropertyType{
	"string":   TypeString,
	"int64":    TypeInt64,
	"double":   TypeDouble,
	"dateTime": TypeDateTime,
	"boolean":  TypeBoolean,
}

// collectionTypes maps schema element type strings to collection property
// types. Boolean collections are deliberately absent; the catalog service
// has no such type.
var collectionTypes = map[string]PropertyType{
	"string":   TypeStringCollection,
	"int64":    TypeInt64Collection,
	"double":   TypeDoubleCollection,
	"dateTime": TypeDateTimeCollection,
}

// ParsePropertyType maps a schema-declared type string to a PropertyType.
// The grammar is fixed and shallow: a scalar name, a scalar name with a []
// suffix, or principal / principal[].
func ParsePropertyType(s string) (PropertyType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTypeString
	}

	if elem, ok := strings.CutSuffix(s, "[]"); ok {
		if elem == "principal" {
			return TypePrincipalCollection, nil
		}

		if t, ok := collectionTypes[elem]; ok {
			return t, nil
		}

		if strings.HasSuffix(elem, "[]") {
			return "", fmt.Errorf("%w: %s", ErrNestedNonScalar, s)
		}

		return "", fmt.Errorf("%w: %s", ErrUnsupportedElem, s)
	}

	if s == "principal" {
		return TypePrincipal, nil
	}

	if t, ok := scalarTypes[s]; ok {
		return t, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, s)
}

// IsCollection reports whether t holds multiple values per item.
func (t PropertyType) IsCollection() bool {
	switch t {
	case TypeStringCollection, TypeInt64Collection, TypeDoubleCollection,
		TypeDateTimeCollection, TypePrincipalCollection:
		return true
	default:
		return false
	}
}

// Element returns the scalar element type for collections, or t itself.
func (t PropertyType) Element() PropertyType {
	switch t {
	case TypeStringCollection:
		return TypeString
	case TypeInt64Collection:
		return TypeInt64
	case TypeDoubleCollection:
		return TypeDouble
	case TypeDateTimeCollection:
		return TypeDateTime
	case TypePrincipalCollection:
		return TypePrincipal
	default:
		return t
	}
}

// IsPrincipal reports whether t is principal or principalCollection.
func (t PropertyType) IsPrincipal() bool {
	return t == TypePrincipal || t == TypePrincipalCollection
}

// IsNumeric reports whether t's element type is int64 or double.
func (t PropertyType) IsNumeric() bool {
	e := t.Element()

	return e == TypeInt64 || e == TypeDouble
}

// IsStringFamily reports whether t is string or stringCollection. Default
// values and people-entity mappings are only legal on these.
func (t PropertyType) IsStringFamily() bool {
	return t == TypeString || t == TypeStringCollection
}
