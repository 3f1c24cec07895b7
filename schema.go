package cocogen

// Tag identifies one decorator's attached state on a schema model or
// property. Tags are the stable symbols the IR builder looks up; any schema
// compiler frontend that can answer these lookups is a valid collaborator.
type Tag string

// Decorator tags.
const (
	// Property-level tags.
	TagName       Tag = "name"       // string: resolved-name override
	TagLabels     Tag = "labels"     // []string
	TagAliases    Tag = "aliases"    // []string
	TagSearch     Tag = "search"     // SearchFlags
	TagDesc       Tag = "description" // string
	TagExample    Tag = "example"    // string
	TagFormat     Tag = "format"     // string
	TagPattern    Tag = "pattern"    // PatternSpec
	TagLength     Tag = "length"     // LengthSpec
	TagRange      Tag = "range"      // RangeSpec
	TagDefault    Tag = "default"    // string
	TagEntity     Tag = "entity"     // EntitySpec
	TagSerialized Tag = "serialized" // SerializedModel
	TagSource     Tag = "source"     // SourceSpec
	TagDeprecated Tag = "deprecated" // bool
	TagIdentity   Tag = "identity"   // IdentitySpec
	TagContent    Tag = "content"    // bool

	// Model-level tags.
	TagConnection      Tag = "connection"      // ConnectionSpec
	TagContentCategory Tag = "contentCategory" // string
	TagProfileSource   Tag = "profileSource"   // ProfileSource
)

// State is the decorator-attached side table for one model or property,
// keyed by stable tags. Values are the decorator payload types documented on
// the Tag constants.
type State map[Tag]any

// Lookup returns the raw decorator value for tag.
func (s State) Lookup(tag Tag) (any, bool) {
	v, ok := s[tag]

	return v, ok
}

// Has reports whether tag has attached state.
func (s State) Has(tag Tag) bool {
	_, ok := s[tag]

	return ok
}

// String returns the tag's value as a string, or "" when unset or not a
// string.
func (s State) String(tag Tag) string {
	v, _ := s[tag].(string)

	return v
}

// Strings returns the tag's value as a string slice, or nil.
func (s State) Strings(tag Tag) []string {
	v, _ := s[tag].([]string)

	return v
}

// Bool returns the tag's value as a bool, or false.
func (s State) Bool(tag Tag) bool {
	v, _ := s[tag].(bool)

	return v
}

// Graph is the compiled schema graph the IR builder consumes: a model list
// with per-model properties and decorator state. The builder never inspects
// anything else, so any frontend producing this shape works.
type Graph struct {
	Models []*Model
}

// Model is one schema model (entity type).
type Model struct {
	// Name is the schema-declared model name.
	Name string

	// Doc is the model's doc comment.
	Doc string

	// Properties in declaration order.
	Properties []*ModelProperty

	// State is the decorator side table for the model.
	State State
}

// ModelProperty is one schema property before IR normalization.
type ModelProperty struct {
	// Name is the schema-declared property name.
	Name string

	// Type is the schema-declared type string (see ParsePropertyType).
	Type string

	// Doc is the property's doc comment.
	Doc string

	// Optional marks schema-optional properties.
	Optional bool

	// State is the decorator side table for the property.
	State State
}

// Decorator payload types. These are what decorators attach under the tags
// above; frontends construct them, the IR builder consumes them.

// PatternSpec is a validation regex with its runtime failure message.
type PatternSpec struct {
	Pattern string `yaml:"pattern"`
	Message string `yaml:"message,omitempty"`
}

// LengthSpec holds string length constraints.
type LengthSpec struct {
	Min *int `yaml:"min,omitempty"`
	Max *int `yaml:"max,omitempty"`
}

// RangeSpec holds numeric value constraints.
type RangeSpec struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// IdentitySpec marks the single identifying property and its id encoding.
type IdentitySpec struct {
	Encoding IDEncoding `yaml:"encoding,omitempty"`
}

// ConnectionSpec is the model-level connection registration.
type ConnectionSpec struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// SourceSpec is the schema-declared source binding before mode resolution.
// CSVHeaders and Path are mode-specific: declaring CSV settings under a
// JSONPath-addressed format (or vice versa) is a cross-mode binding error.
type SourceSpec struct {
	// CSVHeaders addresses a CSV column. More than one header is a
	// multi-header merge request, which is unsupported.
	CSVHeaders []string `yaml:"csvHeaders,omitempty"`

	// Path addresses a value by JSONPath in json/yaml/rest/custom formats.
	Path string `yaml:"path,omitempty"`

	// Default is substituted for empty raw values.
	Default string `yaml:"default,omitempty"`

	// None declares that the property has no source address at all.
	None bool `yaml:"none,omitempty"`
}

// EntitySpec is the schema-declared people-entity mapping.
type EntitySpec struct {
	// Kind is the entity kind; empty means "infer from people label".
	Kind EntityKind `yaml:"kind,omitempty"`

	// Fields map dotted entity paths to sources.
	Fields []EntityFieldSpec `yaml:"fields"`
}

// EntityFieldSpec binds one entity field path to a source.
type EntityFieldSpec struct {
	Path   string     `yaml:"path"`
	Source SourceSpec `yaml:"source"`
}
