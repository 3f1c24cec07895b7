package cocogen

// InputFormat selects how generated connectors read source records.
type InputFormat string

// Input format constants.
const (
	FormatCSV    InputFormat = "csv"
	FormatJSON   InputFormat = "json"
	FormatYAML   InputFormat = "yaml"
	FormatREST   InputFormat = "rest"
	FormatCustom InputFormat = "custom"
)

// KnownFormats lists every supported input format.
var KnownFormats = []InputFormat{FormatCSV, FormatJSON, FormatYAML, FormatREST, FormatCustom}

// UsesCSVAddressing reports whether source bindings for this format address
// rows by CSV header. Every other format addresses values by JSONPath.
func (f InputFormat) UsesCSVAddressing() bool {
	return f == FormatCSV
}

// Valid reports whether f is one of the known formats.
func (f InputFormat) Valid() bool {
	for _, k := range KnownFormats {
		if f == k {
			return true
		}
	}

	return false
}

// IDEncoding is how generated connectors encode item ids.
type IDEncoding string

// Item id encoding constants.
const (
	EncodingSlug   IDEncoding = "slug"
	EncodingBase64 IDEncoding = "base64"
	EncodingHash   IDEncoding = "hash"
)

// Valid reports whether e is one of the known encodings.
func (e IDEncoding) Valid() bool {
	return e == EncodingSlug || e == EncodingBase64 || e == EncodingHash
}

// Target names (for code generation).
const (
	TargetTypeScript = "typescript"
	TargetCSharp     = "csharp"
)

// EntityKind identifies one of the fixed people-profile entity kinds a
// string or string-collection property can be mapped onto.
type EntityKind string

// People entity kinds.
const (
	EntityNames                 EntityKind = "names"
	EntityEmails                EntityKind = "emails"
	EntityPhones                EntityKind = "phones"
	EntityAddresses             EntityKind = "addresses"
	EntityPositions             EntityKind = "positions"
	EntitySkills                EntityKind = "skills"
	EntityLanguages             EntityKind = "languages"
	EntityProjects              EntityKind = "projects"
	EntityInterests             EntityKind = "interests"
	EntityCertifications        EntityKind = "certifications"
	EntityEducationalActivities EntityKind = "educationalActivities"
	EntityWebAccounts           EntityKind = "webAccounts"
	EntityAnniversaries         EntityKind = "anniversaries"
	EntityWebsites              EntityKind = "websites"
)

// KnownEntities lists all fixed entity kinds in declaration order.
var KnownEntities = []EntityKind{
	EntityNames,
	EntityEmails,
	EntityPhones,
	EntityAddresses,
	EntityPositions,
	EntitySkills,
	EntityLanguages,
	EntityProjects,
	EntityInterests,
	EntityCertifications,
	EntityEducationalActivities,
	EntityWebAccounts,
	EntityAnniversaries,
	EntityWebsites,
}

// DefaultEntityKind is substituted for principal-typed properties that carry
// entity field mappings without an explicit people label.
const DefaultEntityKind = EntityNames

// Valid reports whether k is one of the fixed entity kinds.
func (k EntityKind) Valid() bool {
	for _, known := range KnownEntities {
		if k == known {
			return true
		}
	}

	return false
}
