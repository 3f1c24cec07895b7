package irbuild

import (
	"strings"

	cocogen "github.com/wictorwilen/cocogen-sub001"
	"github.com/wictorwilen/cocogen-sub001/pathspec"
)

// binding resolves one source spec into a mode-correct binding. prop names
// the owning property for errors; fallback is the address used when the
// schema declares none (the resolved property name, or an entity field's
// path).
func (b *builder) binding(prop string, spec cocogen.SourceSpec, fallback string) (cocogen.SourceBinding, error) {
	if spec.None {
		if len(spec.CSVHeaders) > 0 || spec.Path != "" {
			return cocogen.SourceBinding{}, cocogen.NewPropertyError(b.model.Name, prop,
				"source none excludes csv and path settings")
		}

		return cocogen.SourceBinding{NoSource: true}, nil
	}

	if b.format.UsesCSVAddressing() {
		return b.csvBinding(prop, spec, fallback)
	}

	return b.pathBinding(prop, spec, fallback)
}

func (b *builder) csvBinding(prop string, spec cocogen.SourceSpec, fallback string) (cocogen.SourceBinding, error) {
	if spec.Path != "" {
		return cocogen.SourceBinding{}, cocogen.NewPropertyError(b.model.Name, prop,
			"path addressing is not available for csv input")
	}

	if len(spec.CSVHeaders) > 1 {
		return cocogen.SourceBinding{}, cocogen.NewPropertyError(b.model.Name, prop,
			"merging multiple csv headers is not supported")
	}

	binding := cocogen.SourceBinding{Default: spec.Default}

	if len(spec.CSVHeaders) == 1 {
		binding.CSVHeaders = []string{spec.CSVHeaders[0]}
		binding.Explicit = true
	} else {
		binding.CSVHeaders = []string{fallback}
	}

	return binding, nil
}

func (b *builder) pathBinding(prop string, spec cocogen.SourceSpec, fallback string) (cocogen.SourceBinding, error) {
	if len(spec.CSVHeaders) > 0 {
		return cocogen.SourceBinding{}, cocogen.NewPropertyError(b.model.Name, prop,
			"csv headers are not available for "+string(b.format)+" input")
	}

	raw := spec.Path
	explicit := raw != ""

	if raw == "" {
		raw = fallback
	}

	normalized, err := pathspec.Normalize(raw)
	if err != nil {
		return cocogen.SourceBinding{}, cocogen.NewPropertyError(b.model.Name, prop, err.Error())
	}

	return cocogen.SourceBinding{
		JSONPath: normalized,
		Explicit: explicit,
		Default:  spec.Default,
	}, nil
}

// fieldSources resolves per-field source specs for an entity mapping. In
// path-addressed formats, bare dotted paths are auto-qualified under an
// array root declared by a sibling field; CSV headers pass through verbatim.
func (b *builder) fieldSources(fields []cocogen.EntityFieldSpec) []cocogen.SourceSpec {
	specs := make([]cocogen.SourceSpec, len(fields))
	for i, f := range fields {
		specs[i] = f.Source
	}

	if b.format.UsesCSVAddressing() {
		return specs
	}

	raws := make([]string, len(fields))

	for i, f := range fields {
		if specs[i].None {
			continue
		}

		raws[i] = specs[i].Path
		if raws[i] == "" {
			raws[i] = f.Path
		}
	}

	qualified := qualifySharedArrayRoot(raws)

	for i := range specs {
		if qualified[i] != raws[i] {
			specs[i].Path = qualified[i]
		}
	}

	return specs
}

// qualifySharedArrayRoot rewrites bare dotted paths that implicitly share an
// array root declared by a sibling. The rewrite fires when one path is
// anchored at a leading array index or wildcard and the bare siblings share
// a common token prefix consistent with the anchor's keys. Best-effort
// inference over sibling paths, not a semantic guarantee: unrelated paths
// that happen to share leading tokens will match.
func qualifySharedArrayRoot(raws []string) []string {
	anchor := arrayAnchor(raws)
	if anchor == nil {
		return raws
	}

	prefix := pathspec.CommonPrefix(raws)
	if prefix == "" {
		return raws
	}

	if !tokensAgree(anchor.Keys(), strings.Split(prefix, ".")) {
		return raws
	}

	root := arrayRootOf(anchor)
	if root == "" {
		// Wildcard sits mid-path, no leading array marker to hoist.
		return raws
	}

	out := make([]string, len(raws))

	for i, raw := range raws {
		out[i] = raw

		t := strings.TrimSpace(raw)
		if t == "" || strings.HasPrefix(t, "$") || strings.HasPrefix(t, "[") {
			continue
		}

		if tokenPrefixed(t, prefix) {
			out[i] = root + "." + t
		}
	}

	return out
}

// arrayAnchor returns the first sibling path anchored at an array root.
// Unparseable paths are skipped here; binding resolution reports them.
func arrayAnchor(raws []string) *pathspec.Path {
	for _, raw := range raws {
		p, err := pathspec.Parse(raw)
		if err != nil {
			continue
		}

		if p.IsArrayRoot() || p.HasWildcard() {
			return p
		}
	}

	return nil
}

// arrayRootOf renders the anchor's leading index steps in canonical form.
func arrayRootOf(anchor *pathspec.Path) string {
	root := &pathspec.Path{Rooted: anchor.Rooted}

	for _, s := range anchor.Steps {
		if s.Kind != pathspec.StepIndex {
			break
		}

		root.Steps = append(root.Steps, s)
	}

	return root.String()
}

// tokensAgree reports whether the anchor's property keys and the inferred
// prefix match over their shared leading tokens.
func tokensAgree(anchorKeys, prefix []string) bool {
	n := min(len(anchorKeys), len(prefix))

	for i := 0; i < n; i++ {
		if anchorKeys[i] != prefix[i] {
			return false
		}
	}

	return true
}

// tokenPrefixed reports whether path starts with prefix on a token boundary.
func tokenPrefixed(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}

	return len(path) == len(prefix) || path[len(prefix)] == '.'
}
