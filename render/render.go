package render

import (
	"fmt"
	"strconv"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/fieldtree"
	"github.com/wictorwilen/cocogen-sub001/genexpr"
	"github.com/wictorwilen/cocogen-sub001/graphtypes"
)

// Renderer produces per-property value expressions for one IR against one
// target. Safe for concurrent use after construction.
type Renderer struct {
	target Target
	ir     *cocogen.ConnectorIR
	types  *graphtypes.Resolution
}

// New creates a renderer. The resolution must come from the same IR.
func New(target Target, ir *cocogen.ConnectorIR, types *graphtypes.Resolution) *Renderer {
	return &Renderer{target: target, ir: ir, types: types}
}

// PropertyValue renders the expression computing p's value from one input
// row, printed for the renderer's target.
func (r *Renderer) PropertyValue(p *cocogen.Property) (string, error) {
	e, err := r.PropertyExpr(p)
	if err != nil {
		return "", err
	}

	return r.target.Print(e), nil
}

// PropertyValues renders every IR property, keyed by resolved name.
func (r *Renderer) PropertyValues() (map[string]string, error) {
	out := make(map[string]string, len(r.ir.Properties))

	for _, p := range r.ir.Properties {
		code, err := r.PropertyValue(p)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}

		out[p.Name] = code
	}

	return out, nil
}

// PropertyExpr builds the expression tree for one property. Entity-mapped
// properties render through the people-shape regimes, serialized properties
// through record stringification, everything else as a direct read with the
// parse, default, validate, convert chain in that order.
func (r *Renderer) PropertyExpr(p *cocogen.Property) (genexpr.Expr, error) {
	switch {
	case p.Entity != nil:
		return r.entityExpr(p)
	case p.Serialized != nil:
		return r.serializedExpr(p), nil
	case p.Source.NoSource:
		return noSourceThrow(p.Name), nil
	default:
		return r.plainExpr(p), nil
	}
}

func (r *Renderer) format() cocogen.InputFormat {
	return r.ir.Connection.InputFormat
}

// plainExpr renders a property without entity or serialized structure.
func (r *Renderer) plainExpr(p *cocogen.Property) genexpr.Expr {
	value := r.target.RowValue(p.Source, r.format())

	if p.Type.IsCollection() {
		value = genexpr.CallOf(r.target.Helper(HelperParseCollection), value)
	}

	if p.Source.Default != "" {
		value = genexpr.CallOf(r.target.Helper(HelperApplyDefault), value, genexpr.Str(p.Source.Default))
	}

	value = composeValidation(r.target, p, value)

	return r.convert(p.Type, value)
}

// convert appends the raw-text-to-value conversion for non-string types.
func (r *Renderer) convert(t cocogen.PropertyType, value genexpr.Expr) genexpr.Expr {
	var h Helper

	switch t {
	case cocogen.TypeInt64:
		h = HelperToInt64
	case cocogen.TypeDouble:
		h = HelperToDouble
	case cocogen.TypeDateTime:
		h = HelperToDateTime
	case cocogen.TypeBoolean:
		h = HelperToBoolean
	case cocogen.TypeInt64Collection:
		h = HelperToInt64Collection
	case cocogen.TypeDoubleCollection:
		h = HelperToDoubleCollection
	case cocogen.TypeDateTimeCollection:
		h = HelperToDateTimeCollection
	default:
		return value
	}

	return genexpr.CallOf(r.target.Helper(h), value)
}

// serializedExpr renders a serialized-model property: each record field reads
// from the row by its own name, and the whole record is stringified to JSON.
func (r *Renderer) serializedExpr(p *cocogen.Property) genexpr.Expr {
	fields := make([]genexpr.ObjectField, 0, len(p.Serialized.Fields))

	for _, f := range p.Serialized.Fields {
		raw := r.target.RowValue(fieldBinding(f.Name, r.format()), r.format())
		fields = append(fields, genexpr.Pair(f.Name, r.convert(f.Type, raw)))
	}

	return genexpr.CallOf(r.target.Helper(HelperStringify), genexpr.ObjectOf(fields...))
}

// fieldBinding addresses a serialized field by name in the active format.
func fieldBinding(name string, format cocogen.InputFormat) cocogen.SourceBinding {
	if format.UsesCSVAddressing() {
		return cocogen.SourceBinding{CSVHeaders: []string{name}}
	}

	return cocogen.SourceBinding{JSONPath: name}
}

// entityExpr renders a people-entity property. Scalar entity types produce
// one typed object (regime 1); collection entity types dispatch on the
// number of distinct source leaves: one leaf maps values directly (regime 2),
// several leaves align positionally (regime 3).
func (r *Renderer) entityExpr(p *cocogen.Property) (genexpr.Expr, error) {
	parent, err := r.types.TypeNameForKind(p.Entity.Kind)
	if err != nil {
		return nil, err
	}

	tree := fieldtree.Build(entityFields(p))

	if p.Type.IsCollection() {
		return r.collectionExpr(p, parent, tree), nil
	}

	return r.objectExpr(p, parent, tree), nil
}

// objectExpr builds the regime-1 single typed object.
func (r *Renderer) objectExpr(p *cocogen.Property, typeName string, node *fieldtree.Node) genexpr.Expr {
	fields := make([]genexpr.ObjectField, 0, node.Len())

	for _, key := range node.Keys() {
		child := node.Child(key)

		var value genexpr.Expr

		switch {
		case child.IsLeaf() && r.types.FieldIsCollection(typeName, key):
			// Catalog collection field fed by one source: collapse empty
			// input to absent, never an empty-but-present list.
			value = genexpr.CallOf(r.target.Helper(HelperCollect), r.leafList(p, *child.Field()))
		case child.IsLeaf():
			value = r.leafValue(p, *child.Field())
		case r.types.FieldIsCollection(typeName, key):
			value = r.collectionExpr(p, r.types.NestedTypeName(typeName, key), child)
		default:
			value = r.objectExpr(p, r.types.NestedTypeName(typeName, key), child)
		}

		fields = append(fields, genexpr.Pair(key, value))
	}

	obj := genexpr.ObjectOf(fields...)
	if typeName == "" {
		return obj
	}

	return &genexpr.Cast{Type: r.target.TypeName(typeName), X: obj}
}

// collectionExpr builds a regime-2 or regime-3 collection of elemType
// instances from the leaves under node. elemType may be empty for shapes
// with no declared element type.
func (r *Renderer) collectionExpr(p *cocogen.Property, elemType string, node *fieldtree.Node) genexpr.Expr {
	if node.IsLeaf() {
		// Bare value collection, no instance shape.
		return genexpr.CallOf(r.target.Helper(HelperCollect), r.leafList(p, *node.Field()))
	}

	leaves := node.Leaves()

	if len(leaves) == 1 {
		instance := r.instanceExpr(elemType, node, func(fieldtree.Field) genexpr.Expr {
			return genexpr.Id("value")
		})

		return genexpr.CallOf(r.target.Helper(HelperCollect),
			r.leafList(p, leaves[0]),
			&genexpr.Arrow{Params: []string{"value"}, Body: instance},
		)
	}

	// Several independently-lengthed leaf lists: the runtime align helper
	// reconciles them (max length wins, singletons broadcast, short lists
	// pad empty) and maps each row to one instance.
	position := make(map[string]int, len(leaves))
	lists := make([]genexpr.Expr, 0, len(leaves))

	for i, leaf := range leaves {
		position[leaf.Path] = i

		lists = append(lists, r.leafList(p, leaf))
	}

	instance := r.instanceExpr(elemType, node, func(f fieldtree.Field) genexpr.Expr {
		return &genexpr.Index{X: genexpr.Id("values"), I: genexpr.Num(strconv.Itoa(position[f.Path]))}
	})

	return genexpr.CallOf(r.target.Helper(HelperAlign),
		&genexpr.Array{Elems: lists},
		&genexpr.Arrow{Params: []string{"values"}, Body: instance},
	)
}

// instanceExpr builds one element instance, reading each leaf through the
// supplied accessor. Nested interior nodes cast to their resolved types.
func (r *Renderer) instanceExpr(typeName string, node *fieldtree.Node, value func(fieldtree.Field) genexpr.Expr) genexpr.Expr {
	fields := make([]genexpr.ObjectField, 0, node.Len())

	for _, key := range node.Keys() {
		child := node.Child(key)

		if child.IsLeaf() {
			fields = append(fields, genexpr.Pair(key, value(*child.Field())))
			continue
		}

		nested := r.instanceExpr(r.types.NestedTypeName(typeName, key), child, value)
		fields = append(fields, genexpr.Pair(key, nested))
	}

	obj := genexpr.ObjectOf(fields...)
	if typeName == "" {
		return obj
	}

	return &genexpr.Cast{Type: r.target.TypeName(typeName), X: obj}
}

// leafValue renders one scalar entity leaf: read, default, validate.
func (r *Renderer) leafValue(p *cocogen.Property, f fieldtree.Field) genexpr.Expr {
	if f.Source.NoSource {
		return noSourceThrow(p.Name + "." + f.Path)
	}

	value := r.target.RowValue(f.Source, r.format())

	if f.Source.Default != "" {
		value = genexpr.CallOf(r.target.Helper(HelperApplyDefault), value, genexpr.Str(f.Source.Default))
	}

	return composeValidationAs(r.target, p, value, HelperValidateString)
}

// leafList renders one entity leaf as a raw value list for the collection
// regimes.
func (r *Renderer) leafList(p *cocogen.Property, f fieldtree.Field) genexpr.Expr {
	if f.Source.NoSource {
		return noSourceThrow(p.Name + "." + f.Path)
	}

	list := genexpr.CallOf(r.target.Helper(HelperParseCollection), r.target.RowValue(f.Source, r.format()))

	if f.Source.Default != "" {
		list = genexpr.CallOf(r.target.Helper(HelperApplyDefault), list, genexpr.Str(f.Source.Default))
	}

	return composeValidationAs(r.target, p, list, HelperValidateStringCollection)
}

func noSourceThrow(name string) genexpr.Expr {
	return &genexpr.Throw{Message: fmt.Sprintf("no source mapping for %s", name)}
}

// entityFields adapts the IR entity mapping to fieldtree fields.
func entityFields(p *cocogen.Property) []fieldtree.Field {
	fields := make([]fieldtree.Field, 0, len(p.Entity.Fields))
	for _, f := range p.Entity.Fields {
		fields = append(fields, fieldtree.Field{Path: f.Path, Source: f.Source})
	}

	return fields
}
