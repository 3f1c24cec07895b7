// Package irbuild compiles a schema graph into the connector IR. The builder
// walks the item model's properties in declaration order, resolves names,
// types, constraints and source bindings, and rejects schema shapes the
// generators cannot express.
package irbuild

import (
	"fmt"

	"go.uber.org/zap"

	cocogen "github.com/wictorwilen/cocogen-sub001"
)

// Options configures one build.
type Options struct {
	// Format is the connection's input format; bindings resolve against it.
	Format cocogen.InputFormat

	// Logger traces build decisions; nop when nil.
	Logger *zap.Logger
}

// Build compiles the graph into an IR. All schema-shape problems are fatal
// and reported as *cocogen.SchemaError naming the offending model or
// property.
func Build(g *cocogen.Graph, opts Options) (*cocogen.ConnectorIR, error) {
	if !opts.Format.Valid() {
		return nil, fmt.Errorf("%w: %q", cocogen.ErrUnknownInputFormat, opts.Format)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	model, err := itemModel(g)
	if err != nil {
		return nil, err
	}

	b := &builder{
		model:  model,
		format: opts.Format,
		logger: logger,
		names:  make(map[string]bool),
	}

	ir := &cocogen.ConnectorIR{
		Connection: b.connection(),
		Item: cocogen.Item{
			TypeName: model.Name,
			Doc:      model.Doc,
		},
	}

	for _, prop := range model.Properties {
		p, err := b.property(prop)
		if err != nil {
			return nil, err
		}

		if p == nil {
			continue
		}

		ir.Properties = append(ir.Properties, p)
	}

	if b.identity == "" {
		return nil, cocogen.NewSchemaError(model.Name, "no identity property declared")
	}

	ir.Item.IDProperty = b.identity
	ir.Item.IDEncoding = b.encoding
	ir.Item.ContentProperty = b.content

	logger.Debug("built connector IR",
		zap.String("model", model.Name),
		zap.Int("properties", len(ir.Properties)),
		zap.String("graphVersion", string(ir.GraphVersion())),
	)

	return ir, nil
}

// itemModel selects the model the connector is generated for: the only model
// when there is one, otherwise the single model carrying the connection
// decorator. Other models exist only as serialized-model references.
func itemModel(g *cocogen.Graph) (*cocogen.Model, error) {
	if len(g.Models) == 0 {
		return nil, cocogen.NewSchemaError("", "schema declares no models")
	}

	if len(g.Models) == 1 {
		return g.Models[0], nil
	}

	var item *cocogen.Model

	for _, m := range g.Models {
		if !m.State.Has(cocogen.TagConnection) {
			continue
		}

		if item != nil {
			return nil, cocogen.NewSchemaError(m.Name, "multiple models declare a connection")
		}

		item = m
	}

	if item == nil {
		return nil, cocogen.NewSchemaError(g.Models[0].Name, "no model declares a connection")
	}

	return item, nil
}

type builder struct {
	model  *cocogen.Model
	format cocogen.InputFormat
	logger *zap.Logger

	names    map[string]bool
	identity string
	encoding cocogen.IDEncoding
	content  string
}

// connection extracts connection-level settings from the model's decorator
// state.
func (b *builder) connection() cocogen.Connection {
	conn := cocogen.Connection{
		Name:            b.model.Name,
		InputFormat:     b.format,
		ContentCategory: b.model.State.String(cocogen.TagContentCategory),
	}

	if v, ok := b.model.State.Lookup(cocogen.TagConnection); ok {
		if spec, ok := v.(cocogen.ConnectionSpec); ok {
			conn.ID = spec.ID
			conn.Description = spec.Description

			if spec.Name != "" {
				conn.Name = spec.Name
			}
		}
	}

	if v, ok := b.model.State.Lookup(cocogen.TagProfileSource); ok {
		if ps, ok := v.(*cocogen.ProfileSource); ok {
			conn.ProfileSource = ps
		}
	}

	return conn
}

// property normalizes one schema property. Returns (nil, nil) for deprecated
// properties, which are excluded from the IR after the identity and content
// conflict checks.
func (b *builder) property(mp *cocogen.ModelProperty) (*cocogen.Property, error) {
	name := mp.Name
	if override := mp.State.String(cocogen.TagName); override != "" {
		name = override
	}

	if mp.State.Bool(cocogen.TagDeprecated) {
		if mp.State.Has(cocogen.TagIdentity) {
			return nil, cocogen.NewPropertyError(b.model.Name, name, "identity property cannot be deprecated")
		}

		if mp.State.Bool(cocogen.TagContent) {
			return nil, cocogen.NewPropertyError(b.model.Name, name, "content property cannot be deprecated")
		}

		b.logger.Debug("skipping deprecated property", zap.String("property", name))

		return nil, nil
	}

	if b.names[name] {
		return nil, cocogen.NewPropertyError(b.model.Name, name, "duplicate property name")
	}

	b.names[name] = true

	typ, err := cocogen.ParsePropertyType(mp.Type)
	if err != nil {
		return nil, cocogen.NewPropertyError(b.model.Name, name, err.Error())
	}

	p := &cocogen.Property{
		Name:        name,
		Type:        typ,
		Labels:      mp.State.Strings(cocogen.TagLabels),
		Aliases:     mp.State.Strings(cocogen.TagAliases),
		Description: mp.State.String(cocogen.TagDesc),
		Doc:         mp.Doc,
		Example:     mp.State.String(cocogen.TagExample),
		Format:      mp.State.String(cocogen.TagFormat),
	}

	if p.Description == "" {
		p.Description = mp.Doc
	}

	if v, ok := mp.State.Lookup(cocogen.TagSearch); ok {
		if flags, ok := v.(cocogen.SearchFlags); ok {
			p.Search = flags
		}
	}

	if v, ok := mp.State.Lookup(cocogen.TagPattern); ok {
		if spec, ok := v.(cocogen.PatternSpec); ok {
			p.Pattern = spec.Pattern
			p.PatternMessage = spec.Message
		}
	}

	if v, ok := mp.State.Lookup(cocogen.TagLength); ok {
		if spec, ok := v.(cocogen.LengthSpec); ok {
			p.MinLength = spec.Min
			p.MaxLength = spec.Max
		}
	}

	if v, ok := mp.State.Lookup(cocogen.TagRange); ok {
		if spec, ok := v.(cocogen.RangeSpec); ok {
			p.MinValue = spec.Min
			p.MaxValue = spec.Max
		}
	}

	if err := b.identityFor(mp, name); err != nil {
		return nil, err
	}

	if mp.State.Bool(cocogen.TagContent) {
		b.content = name
	}

	if err := b.entityFor(mp, p); err != nil {
		return nil, err
	}

	if err := b.serializedFor(mp, p); err != nil {
		return nil, err
	}

	binding, err := b.binding(name, sourceSpec(mp), name)
	if err != nil {
		return nil, err
	}

	p.Source = binding

	if def := mp.State.String(cocogen.TagDefault); def != "" && p.Source.Default == "" {
		p.Source.Default = def
	}

	if p.Source.Default != "" && !p.Type.IsStringFamily() {
		return nil, cocogen.NewPropertyError(b.model.Name, name,
			fmt.Sprintf("default values require a string-family type, got %s", p.Type))
	}

	return p, nil
}

// identityFor records the identity declaration, enforcing the singleton.
func (b *builder) identityFor(mp *cocogen.ModelProperty, name string) error {
	v, ok := mp.State.Lookup(cocogen.TagIdentity)
	if !ok {
		return nil
	}

	if b.identity != "" {
		return cocogen.NewPropertyError(b.model.Name, name,
			fmt.Sprintf("multiple identity properties (%s already declared)", b.identity))
	}

	b.identity = name
	b.encoding = cocogen.EncodingSlug

	spec, ok := v.(cocogen.IdentitySpec)
	if !ok || spec.Encoding == "" {
		return nil
	}

	if !spec.Encoding.Valid() {
		return fmt.Errorf("%w: %q on %s.%s", cocogen.ErrUnknownIDEncoding, spec.Encoding, b.model.Name, name)
	}

	b.encoding = spec.Encoding

	return nil
}

// entityFor resolves the people-entity mapping. The kind comes from the
// decorator, else from a people label, else from the principal-type default.
func (b *builder) entityFor(mp *cocogen.ModelProperty, p *cocogen.Property) error {
	v, ok := mp.State.Lookup(cocogen.TagEntity)
	if !ok {
		return nil
	}

	spec, ok := v.(cocogen.EntitySpec)
	if !ok || len(spec.Fields) == 0 {
		return cocogen.NewPropertyError(b.model.Name, p.Name, "entity mapping declares no fields")
	}

	kind := spec.Kind

	if kind == "" {
		for _, label := range p.Labels {
			if cocogen.EntityKind(label).Valid() {
				kind = cocogen.EntityKind(label)
				break
			}
		}
	}

	if kind == "" {
		if !p.Type.IsPrincipal() {
			return cocogen.NewPropertyError(b.model.Name, p.Name,
				"entity field mappings require a people label or a principal type")
		}

		kind = cocogen.DefaultEntityKind
	}

	if !kind.Valid() {
		return fmt.Errorf("%w: %q on %s.%s", cocogen.ErrUnknownEntityKind, kind, b.model.Name, p.Name)
	}

	entity := &cocogen.PersonEntity{Kind: kind}

	sources := b.fieldSources(spec.Fields)

	for i, f := range spec.Fields {
		binding, err := b.binding(p.Name, sources[i], f.Path)
		if err != nil {
			return err
		}

		entity.Fields = append(entity.Fields, cocogen.EntityField{Path: f.Path, Source: binding})
	}

	p.Entity = entity

	return nil
}

// serializedFor attaches the serialized-model reference, which is mutually
// exclusive with entity mappings.
func (b *builder) serializedFor(mp *cocogen.ModelProperty, p *cocogen.Property) error {
	v, ok := mp.State.Lookup(cocogen.TagSerialized)
	if !ok {
		return nil
	}

	if p.Entity != nil {
		return cocogen.NewPropertyError(b.model.Name, p.Name,
			"serialized model and entity mapping are mutually exclusive")
	}

	switch sm := v.(type) {
	case *cocogen.SerializedModel:
		p.Serialized = sm
	case cocogen.SerializedModel:
		p.Serialized = &sm
	}

	return nil
}

func sourceSpec(mp *cocogen.ModelProperty) cocogen.SourceSpec {
	if v, ok := mp.State.Lookup(cocogen.TagSource); ok {
		if spec, ok := v.(cocogen.SourceSpec); ok {
			return spec
		}
	}

	return cocogen.SourceSpec{}
}
