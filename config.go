package cocogen

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .cocogen.yaml project configuration file.
type Config struct {
	// Input format for generated connectors (csv, json, yaml, rest, custom).
	Format InputFormat `yaml:"format,omitempty"`

	// Generate holds code-generation settings.
	Generate GenerateConfig `yaml:"generate,omitempty"`

	// Sample holds fixture-synthesis settings.
	Sample SampleConfig `yaml:"sample,omitempty"`
}

// GenerateConfig holds settings for the generate command.
type GenerateConfig struct {
	// Targets are the output languages (typescript, csharp).
	Targets []string `yaml:"targets,omitempty"`

	// Out is the output directory for generated projects.
	Out string `yaml:"out,omitempty"`
}

// SampleConfig holds settings for the sample command.
type SampleConfig struct {
	// Count is the number of fixture records to synthesize.
	Count int `yaml:"count,omitempty"`

	// Overrides maps property names to expr-lang programs that compute
	// fixture values. The program env exposes name, header, type and index.
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".cocogen.yaml", ".cocogen.yml", "cocogen.yaml", "cocogen.yml"}

// LoadConfig finds and loads the nearest .cocogen.yaml walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
