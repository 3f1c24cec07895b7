package cocogen

// ConnectorIR is the normalized, source-language-independent description of
// a connector produced once per schema compile. It is the root artifact of
// the build pipeline: renderers and the sample synthesizer consume it as a
// read-only value.
type ConnectorIR struct {
	Connection Connection  `json:"connection" yaml:"connection"`
	Item       Item        `json:"item" yaml:"item"`
	Properties []*Property `json:"properties" yaml:"properties"`
}

// GraphVersion re-derives the API surface from the IR contents. The version
// is a pure function of the connection and property set and is never stored,
// so a stale cached IR cannot disagree with itself.
func (ir *ConnectorIR) GraphVersion() GraphVersion {
	return DeriveGraphVersion(ir.Connection.ContentCategory != "", ir.UsesPrincipals())
}

// UsesPrincipals reports whether any property is principal-typed.
func (ir *ConnectorIR) UsesPrincipals() bool {
	for _, p := range ir.Properties {
		if p.Type.IsPrincipal() {
			return true
		}
	}

	return false
}

// PropertyByName returns the property with the given resolved name, or nil.
func (ir *ConnectorIR) PropertyByName(name string) *Property {
	for _, p := range ir.Properties {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// EntityProperties returns the properties carrying people-entity mappings,
// in declaration order.
func (ir *ConnectorIR) EntityProperties() []*Property {
	var out []*Property

	for _, p := range ir.Properties {
		if p.Entity != nil {
			out = append(out, p)
		}
	}

	return out
}

// Connection holds connection-level settings extracted from the schema model.
type Connection struct {
	// ID is the connection identifier registered with the catalog service.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is the human-readable connection name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description documents the connection.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ContentCategory is the optional content classification. Non-empty
	// forces the preview API surface.
	ContentCategory string `json:"contentCategory,omitempty" yaml:"contentCategory,omitempty"`

	// ProfileSource registers a people-profile source for the connection.
	ProfileSource *ProfileSource `json:"profileSource,omitempty" yaml:"profileSource,omitempty"`

	// InputFormat is how generated connectors read source records.
	InputFormat InputFormat `json:"inputFormat" yaml:"inputFormat"`
}

// ProfileSource describes the profile-source registration for connections
// that push people data.
type ProfileSource struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	WebURL      string `json:"webUrl,omitempty" yaml:"webUrl,omitempty"`
}

// Item describes the connector's item type and identity.
type Item struct {
	// TypeName is the schema model name.
	TypeName string `json:"typeName" yaml:"typeName"`

	// IDProperty is the single identifying property's resolved name.
	IDProperty string `json:"idProperty" yaml:"idProperty"`

	// IDEncoding is how the id value is encoded (slug, base64, hash).
	IDEncoding IDEncoding `json:"idEncoding" yaml:"idEncoding"`

	// ContentProperty is the resolved name of the full-text content
	// property, if any.
	ContentProperty string `json:"contentProperty,omitempty" yaml:"contentProperty,omitempty"`

	// Doc is item-level documentation.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// SearchFlags is the bundle of per-property search behaviors. Each flag is
// independent and unset by default; nil means the schema did not declare it.
type SearchFlags struct {
	Queryable          *bool `json:"queryable,omitempty" yaml:"queryable,omitempty"`
	Searchable         *bool `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	Retrievable        *bool `json:"retrievable,omitempty" yaml:"retrievable,omitempty"`
	Refinable          *bool `json:"refinable,omitempty" yaml:"refinable,omitempty"`
	ExactMatchRequired *bool `json:"exactMatchRequired,omitempty" yaml:"exactMatchRequired,omitempty"`
}

// Property is one schema property normalized into the IR. Order in
// ConnectorIR.Properties follows schema declaration order. A Property is
// immutable once built.
type Property struct {
	// Name is the resolved property name (decorator override wins over the
	// schema-declared name).
	Name string `json:"name" yaml:"name"`

	// Type is the connector property type.
	Type PropertyType `json:"type" yaml:"type"`

	// Labels are semantic labels in insertion order, no duplicates.
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Aliases are alternate names for search.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// Search carries the five optional search flags.
	Search SearchFlags `json:"search,omitempty" yaml:"search,omitempty"`

	// Description is the decorator-declared description; falls back to the
	// schema doc comment at build time.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Doc is the raw schema doc comment.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Example is a representative value for documentation and fixtures.
	Example string `json:"example,omitempty" yaml:"example,omitempty"`

	// Format is an optional format hint (e.g. "date", "uri").
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Pattern is an optional validation regex with its failure message.
	Pattern        string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	PatternMessage string `json:"patternMessage,omitempty" yaml:"patternMessage,omitempty"`

	// Length constraints for string-family values.
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// Value range constraints for numeric values.
	MinValue *float64 `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue *float64 `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`

	// Entity is the optional people-entity mapping. Mutually exclusive with
	// Serialized; requires non-empty Fields to exist at all.
	Entity *PersonEntity `json:"entity,omitempty" yaml:"entity,omitempty"`

	// Serialized describes a flat record type whose JSON serialization
	// becomes this property's string value.
	Serialized *SerializedModel `json:"serialized,omitempty" yaml:"serialized,omitempty"`

	// Source is the resolved source binding.
	Source SourceBinding `json:"source" yaml:"source"`
}

// HasConstraints reports whether any validation constraint is declared.
func (p *Property) HasConstraints() bool {
	return p.Pattern != "" || p.Format != "" ||
		p.MinLength != nil || p.MaxLength != nil ||
		p.MinValue != nil || p.MaxValue != nil
}

// PersonEntity maps a property onto one of the fixed people-profile entity
// kinds via per-field source bindings.
type PersonEntity struct {
	Kind   EntityKind    `json:"entity" yaml:"entity"`
	Fields []EntityField `json:"fields" yaml:"fields"`
}

// EntityField binds one dotted path inside the entity shape to a source.
type EntityField struct {
	Path   string        `json:"path" yaml:"path"`
	Source SourceBinding `json:"source" yaml:"source"`
}

// SerializedModel describes a flat record type serialized to JSON as the
// property value.
type SerializedModel struct {
	Name   string            `json:"name" yaml:"name"`
	Fields []SerializedField `json:"fields" yaml:"fields"`
}

// SerializedField is one field of a serialized model.
type SerializedField struct {
	Name    string       `json:"name" yaml:"name"`
	Type    PropertyType `json:"type" yaml:"type"`
	Example string       `json:"example,omitempty" yaml:"example,omitempty"`
}

// SourceBinding is the resolved address telling a renderer how to read one
// property's raw value from an input row. Exactly one of the CSV or JSONPath
// addressing modes is populated, selected by the connection's input format
// at IR-build time.
type SourceBinding struct {
	// CSVHeaders holds the CSV header (single element; multi-header merge
	// is unsupported and rejected at build time).
	CSVHeaders []string `json:"csvHeaders,omitempty" yaml:"csvHeaders,omitempty"`

	// JSONPath is the normalized value path for JSON-addressed formats.
	JSONPath string `json:"jsonPath,omitempty" yaml:"jsonPath,omitempty"`

	// Explicit records whether the address came from the schema rather than
	// a property-name fallback.
	Explicit bool `json:"explicit,omitempty" yaml:"explicit,omitempty"`

	// NoSource marks a binding with no address at all. Renderers emit a
	// guaranteed-failing placeholder for such properties, never a silent
	// default.
	NoSource bool `json:"noSource,omitempty" yaml:"noSource,omitempty"`

	// Default is substituted for empty raw values before validation runs.
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Address returns the binding's single address: the CSV header or JSONPath.
func (b SourceBinding) Address() string {
	if len(b.CSVHeaders) > 0 {
		return b.CSVHeaders[0]
	}

	return b.JSONPath
}

// Empty reports whether the binding carries no address.
func (b SourceBinding) Empty() bool {
	return len(b.CSVHeaders) == 0 && b.JSONPath == ""
}
