package cocogen

// GraphVersion selects the Graph API surface generated connectors talk to.
type GraphVersion string

// Graph API versions.
const (
	// GraphV1 is the stable API surface.
	GraphV1 GraphVersion = "v1.0"

	// GraphBeta is the preview API surface.
	GraphBeta GraphVersion = "beta"
)

// DeriveGraphVersion returns the API surface for a connector. Content
// categories and principal-typed properties are both preview-only features;
// either one forces the beta surface. This is a total function of exactly
// these two inputs, so callers should re-derive rather than persist it.
func DeriveGraphVersion(hasContentCategory, usesPrincipal bool) GraphVersion {
	if hasContentCategory || usesPrincipal {
		return GraphBeta
	}

	return GraphV1
}
