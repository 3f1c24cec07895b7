// Package schemafile loads YAML schema documents into the compiled graph
// shape the IR builder consumes. It is the reference frontend; any compiler
// producing the same graph works in its place.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	cocogen "github.com/wictorwilen/cocogen-sub001"
)

// ErrNoModels is returned for documents declaring no models.
var ErrNoModels = errors.New("schemafile: document declares no models")

// document is the YAML file shape.
type document struct {
	Models []modelDoc `yaml:"models"`
}

type modelDoc struct {
	Name            string                  `yaml:"name"`
	Doc             string                  `yaml:"doc"`
	Connection      *cocogen.ConnectionSpec `yaml:"connection"`
	ContentCategory string                  `yaml:"contentCategory"`
	ProfileSource   *cocogen.ProfileSource  `yaml:"profileSource"`
	Properties      []propertyDoc           `yaml:"properties"`
}

type propertyDoc struct {
	Name        string                   `yaml:"name"`
	Type        string                   `yaml:"type"`
	Doc         string                   `yaml:"doc"`
	Optional    bool                     `yaml:"optional"`
	Rename      string                   `yaml:"rename"`
	Labels      []string                 `yaml:"labels"`
	Aliases     []string                 `yaml:"aliases"`
	Search      *cocogen.SearchFlags     `yaml:"search"`
	Description string                   `yaml:"description"`
	Example     string                   `yaml:"example"`
	Format      string                   `yaml:"format"`
	Pattern     *cocogen.PatternSpec     `yaml:"pattern"`
	Length      *cocogen.LengthSpec      `yaml:"length"`
	Range       *cocogen.RangeSpec       `yaml:"range"`
	Default     *string                  `yaml:"default"`
	Entity      *cocogen.EntitySpec      `yaml:"entity"`
	Serialized  *cocogen.SerializedModel `yaml:"serialized"`
	Source      *cocogen.SourceSpec      `yaml:"source"`
	Deprecated  bool                     `yaml:"deprecated"`
	Identity    *cocogen.IdentitySpec    `yaml:"identity"`
	Content     bool                     `yaml:"content"`
}

// Load reads and parses one schema file.
func Load(path string) (*cocogen.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse decodes a schema document. Unknown YAML keys are rejected so typos
// fail loudly instead of silently dropping decorators.
func Parse(data []byte) (*cocogen.Graph, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}

	if len(doc.Models) == 0 {
		return nil, ErrNoModels
	}

	g := &cocogen.Graph{}

	for _, md := range doc.Models {
		if md.Name == "" {
			return nil, errors.New("schemafile: model without a name")
		}

		g.Models = append(g.Models, buildModel(md))
	}

	return g, nil
}

func buildModel(md modelDoc) *cocogen.Model {
	state := cocogen.State{}

	if md.Connection != nil {
		state[cocogen.TagConnection] = *md.Connection
	}

	if md.ContentCategory != "" {
		state[cocogen.TagContentCategory] = md.ContentCategory
	}

	if md.ProfileSource != nil {
		state[cocogen.TagProfileSource] = md.ProfileSource
	}

	m := &cocogen.Model{Name: md.Name, Doc: md.Doc, State: state}

	for _, pd := range md.Properties {
		m.Properties = append(m.Properties, buildProperty(pd))
	}

	return m
}

func buildProperty(pd propertyDoc) *cocogen.ModelProperty {
	state := cocogen.State{}

	if pd.Rename != "" {
		state[cocogen.TagName] = pd.Rename
	}

	if len(pd.Labels) > 0 {
		state[cocogen.TagLabels] = pd.Labels
	}

	if len(pd.Aliases) > 0 {
		state[cocogen.TagAliases] = pd.Aliases
	}

	if pd.Search != nil {
		state[cocogen.TagSearch] = *pd.Search
	}

	if pd.Description != "" {
		state[cocogen.TagDesc] = pd.Description
	}

	if pd.Example != "" {
		state[cocogen.TagExample] = pd.Example
	}

	if pd.Format != "" {
		state[cocogen.TagFormat] = pd.Format
	}

	if pd.Pattern != nil {
		state[cocogen.TagPattern] = *pd.Pattern
	}

	if pd.Length != nil {
		state[cocogen.TagLength] = *pd.Length
	}

	if pd.Range != nil {
		state[cocogen.TagRange] = *pd.Range
	}

	if pd.Default != nil {
		state[cocogen.TagDefault] = *pd.Default
	}

	if pd.Entity != nil {
		state[cocogen.TagEntity] = *pd.Entity
	}

	if pd.Serialized != nil {
		state[cocogen.TagSerialized] = pd.Serialized
	}

	if pd.Source != nil {
		state[cocogen.TagSource] = *pd.Source
	}

	if pd.Deprecated {
		state[cocogen.TagDeprecated] = true
	}

	if pd.Identity != nil {
		state[cocogen.TagIdentity] = *pd.Identity
	}

	if pd.Content {
		state[cocogen.TagContent] = true
	}

	return &cocogen.ModelProperty{
		Name:     pd.Name,
		Type:     pd.Type,
		Doc:      pd.Doc,
		Optional: pd.Optional,
		State:    state,
	}
}
