package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"sigs.k8s.io/yaml"
)

// Parse decodes a YAML (or JSON) list of resources and builds a Catalog.
// Unknown fields and unknown resource types are rejected.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	var resources []models.Resource
	if err := yaml.UnmarshalStrict(data, &resources); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(resources, opts...)
}

// tomlCatalog is the TOML file layout: one [[resource]] table per entry.
type tomlCatalog struct {
	Resources []models.Resource `toml:"resource"`
}

// ParseTOML decodes a TOML catalog of [[resource]] tables and builds a
// Catalog. Unknown keys and unknown resource types are rejected.
func ParseTOML(data []byte, opts ...Option) (*Catalog, error) {
	var doc tomlCatalog
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode catalog: unknown key %q", undecoded[0].String())
	}
	return New(doc.Resources, opts...)
}

// LoadFile reads and parses a catalog file from disk. Files ending in .toml
// are read as TOML; anything else as YAML (or JSON). It is used for the
// deploy-time catalog_path override and by catalogctl.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	c, err := parse(b, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load returns a catalog from path when it is set, or a copy of the embedded
// default catalog configured with opts.
func Load(path string, opts ...Option) (*Catalog, error) {
	if path != "" {
		return LoadFile(path, opts...)
	}
	def, err := Default()
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return def, nil
	}
	return New(def.resources, opts...)
}
