package config

import (
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPackage = "constants"
	defaultOutput  = "constants_gen.go"
)

// Priority selects which source a constant consults first.
type Priority string

const (
	// PriorityFile tries the file, then the environment variable.
	PriorityFile Priority = "file"
	// PriorityEnv tries the environment variable, then the file.
	PriorityEnv Priority = "env"
)

// Constant defines one generated constant and its fallback chain.
// File and Env are both mandatory; Default is the optional last-resort
// literal. A nil Default means resolution may fail the whole run.
type Constant struct {
	Name     string
	File     string
	Env      string
	Default  *string
	Priority Priority
}

// Config is the validated generation request.
type Config struct {
	Package   string
	Output    string
	Constants []Constant
}

// yamlManifest represents the manifest file structure.
type yamlManifest struct {
	Package   string         `yaml:"package"`
	Output    string         `yaml:"output"`
	Constants []yamlConstant `yaml:"constants"`
}

type yamlConstant struct {
	Name     string  `yaml:"name"`
	File     string  `yaml:"file"`
	Env      string  `yaml:"env"`
	Default  *string `yaml:"default"`
	Priority string  `yaml:"priority"`
}

// CLIOverrides holds command-line flag overrides. The single-constant
// fields let the tool run without a manifest at all.
type CLIOverrides struct {
	ManifestFile string
	Package      *string
	Output       *string
	Name         *string
	File         *string
	Env          *string
	Default      *string
	Priority     *string
}

// Load assembles the generation request with precedence:
// CLI flags > manifest > defaults.
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := Config{
		Package: defaultPackage,
		Output:  defaultOutput,
	}

	if overrides != nil && overrides.ManifestFile != "" {
		manifest, err := loadManifest(overrides.ManifestFile)
		if err != nil {
			return Config{}, fmt.Errorf("load manifest: %w", err)
		}
		applyManifest(&cfg, manifest)
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadManifest reads and parses the YAML manifest file.
func loadManifest(path string) (*yamlManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var manifest yamlManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &manifest, nil
}

// applyManifest applies the manifest contents to the Config struct.
func applyManifest(cfg *Config, manifest *yamlManifest) {
	if manifest.Package != "" {
		cfg.Package = manifest.Package
	}

	if manifest.Output != "" {
		cfg.Output = manifest.Output
	}

	for _, c := range manifest.Constants {
		priority := PriorityFile
		if c.Priority != "" {
			priority = Priority(c.Priority)
		}
		cfg.Constants = append(cfg.Constants, Constant{
			Name:     c.Name,
			File:     c.File,
			Env:      c.Env,
			Default:  c.Default,
			Priority: priority,
		})
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Package != nil && *overrides.Package != "" {
		cfg.Package = *overrides.Package
	}

	if overrides.Output != nil && *overrides.Output != "" {
		cfg.Output = *overrides.Output
	}

	if overrides.Name == nil || *overrides.Name == "" {
		if hasSourceFlags(overrides) {
			return fmt.Errorf("--file, --env, --default and --priority require --name")
		}
		return nil
	}

	if overrides.ManifestFile != "" {
		return fmt.Errorf("--name cannot be combined with --manifest")
	}

	constant := Constant{
		Name:     *overrides.Name,
		Priority: PriorityFile,
	}
	if overrides.File != nil {
		constant.File = *overrides.File
	}
	if overrides.Env != nil {
		constant.Env = *overrides.Env
	}
	if overrides.Default != nil && *overrides.Default != "" {
		value := *overrides.Default
		constant.Default = &value
	}
	if overrides.Priority != nil && *overrides.Priority != "" {
		constant.Priority = Priority(*overrides.Priority)
	}

	cfg.Constants = []Constant{constant}
	return nil
}

func hasSourceFlags(overrides *CLIOverrides) bool {
	set := func(s *string) bool { return s != nil && *s != "" }
	return set(overrides.File) || set(overrides.Env) || set(overrides.Default) || set(overrides.Priority)
}

// validateConfig validates the final generation request.
func validateConfig(cfg Config) error {
	if !token.IsIdentifier(cfg.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", cfg.Package)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if len(cfg.Constants) == 0 {
		return fmt.Errorf("no constants defined: supply a manifest or --name/--file/--env flags")
	}

	seen := make(map[string]struct{}, len(cfg.Constants))
	for _, c := range cfg.Constants {
		if !token.IsIdentifier(c.Name) {
			return fmt.Errorf("constant name %q is not a valid Go identifier", c.Name)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("duplicate constant name %q", c.Name)
		}
		seen[c.Name] = struct{}{}

		if c.File == "" {
			return fmt.Errorf("constant %q: file path cannot be empty", c.Name)
		}
		if c.Env == "" {
			return fmt.Errorf("constant %q: environment variable name cannot be empty", c.Name)
		}
		if c.Priority != PriorityFile && c.Priority != PriorityEnv {
			return fmt.Errorf("constant %q: priority must be %q or %q, got %q", c.Name, PriorityFile, PriorityEnv, c.Priority)
		}
	}

	return nil
}
