package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
)

// AllPaths is the selector matching every schema element.
const AllPaths = "."

// Config is the complete compilation configuration. It is passed by value into
// each compilation; nothing is read from process-wide state.
type Config struct {
	// SchemaPaths lists the schema files to compile. Each path must lie inside
	// one of IncludePaths; it is compiled under its name relative to that
	// include path, as protoc does.
	SchemaPaths []string `yaml:"schemas"`

	// IncludePaths are the directories in which imports are resolved, in
	// search order. Defaults to the current directory.
	IncludePaths []string `yaml:"includes"`

	// OutputDir receives the generated files. Required by the driver, unused by
	// the pure compilation step.
	OutputDir string `yaml:"output"`

	// GoImportPrefix is the Go import path that corresponds to the root of the
	// include tree. Schemas without a go_package option are placed in
	// GoImportPrefix/<schema dir>.
	GoImportPrefix string `yaml:"go_import_prefix"`

	// OrderedMaps selects the map fields compiled to key-ordered maps
	// (map_field_ordering = ordered-by-key). Selectors are fully-qualified
	// schema paths; "." selects everything. Empty means builtin Go maps.
	OrderedMaps []string `yaml:"ordered_maps"`

	// StructuredFormat selects the messages and enums that get the secondary,
	// self-describing JSON serialization. Empty disables it.
	StructuredFormat []string `yaml:"structured_format"`

	// Verify compares the generated files with OutputDir instead of writing.
	Verify bool `yaml:"verify"`
}

// Default returns the configuration with both customizations applied to all
// paths.
func Default() Config {
	return Config{
		IncludePaths:     []string{"."},
		OrderedMaps:      []string{AllPaths},
		StructuredFormat: []string{AllPaths},
	}
}

// Load reads a YAML configuration file on top of Default. Relative paths in
// the file are resolved against the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i, p := range cfg.SchemaPaths {
		cfg.SchemaPaths[i] = resolve(base, p)
	}
	for i, p := range cfg.IncludePaths {
		cfg.IncludePaths[i] = resolve(base, p)
	}
	if cfg.OutputDir != "" {
		cfg.OutputDir = resolve(base, cfg.OutputDir)
	}
	return cfg, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func (c Config) String() string {
	type configAlias Config
	return fmt.Sprintf("%+v", configAlias(c))
}

// Validate checks that the configuration can drive a compilation. Every
// problem found is reported, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, c.validateSchemas()...)
	errs = append(errs, c.validateIncludes()...)
	errs = append(errs, c.validateSelectors("ordered_maps", c.OrderedMaps)...)
	errs = append(errs, c.validateSelectors("structured_format", c.StructuredFormat)...)
	errs = append(errs, c.validateImportPrefix()...)

	return errors.Join(errs...)
}

func (c *Config) validateSchemas() []error {
	if len(c.SchemaPaths) == 0 {
		return []error{errspkg.ErrSchemaRequired}
	}
	var errs []error
	for _, p := range c.SchemaPaths {
		switch {
		case strings.TrimSpace(p) == "":
			errs = append(errs, errors.New("schemas: empty path"))
		case !strings.HasSuffix(p, ".proto"):
			errs = append(errs, fmt.Errorf("schemas: %q is not a .proto file", p))
		}
	}
	return errs
}

func (c *Config) validateIncludes() []error {
	var errs []error
	for _, p := range c.IncludePaths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, errors.New("includes: empty path"))
		}
	}
	return errs
}

// validateSelectors accepts "." or a dotted name with a leading dot, such as
// ".decoderbufs.RowMessage".
func (c *Config) validateSelectors(option string, selectors []string) []error {
	var errs []error
	for _, s := range selectors {
		if s == AllPaths {
			continue
		}
		if !strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") || strings.Contains(s, "..") || strings.ContainsAny(s, " \t/") {
			errs = append(errs, fmt.Errorf("%s: invalid selector %q", option, s))
		}
	}
	return errs
}

func (c *Config) validateImportPrefix() []error {
	p := c.GoImportPrefix
	if p == "" {
		return nil
	}
	if strings.HasSuffix(p, "/") || strings.HasPrefix(p, "/") || strings.ContainsAny(p, " \t\\;") {
		return []error{fmt.Errorf("go_import_prefix: invalid import path %q", p)}
	}
	return nil
}

// ValidateConfig is a convenience function to validate a config pointer.
// Returns nil if the config is valid.
func ValidateConfig(c *Config) error {
	if c == nil {
		return errspkg.ErrConfigRequired
	}
	return c.Validate()
}
