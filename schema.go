// FILE: lixenwraith/bind/schema.go
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// MaxSchemaSize limits the size of a schema file read from disk.
const MaxSchemaSize = 4 << 20

// Declaration is one row of a binding table: which property of which
// configuration class binds to which control, with its default and flags.
// The control is found by the getter name.
type Declaration struct {
	Class   string    `mapstructure:"class"`
	Type    ValueType `mapstructure:"type"`
	Get     string    `mapstructure:"get"`
	Set     string    `mapstructure:"set"`
	Key     string    `mapstructure:"key"`
	Parent  string    `mapstructure:"parent"`
	Default any       `mapstructure:"default"`
	Flags   Flags     `mapstructure:"flags"`
}

// Path returns the full key of the property.
func (d Declaration) Path() string {
	return joinKey(d.Parent, d.Key)
}

// Validate checks the row for structural errors.
func (d Declaration) Validate() error {
	if err := validateKey(d.Path()); err != nil {
		return err
	}
	if _, ok := valueTypeNames[d.Type]; !ok {
		return fmt.Errorf("property %q: invalid value type %s", d.Path(), d.Type)
	}
	if d.Get == "" {
		return fmt.Errorf("property %q: getter name cannot be empty", d.Path())
	}
	return nil
}

// Schema is an ordered binding table.
type Schema struct {
	Properties []Declaration `mapstructure:"property"`
}

// Validate checks every row and rejects duplicate keys within a class.
func (s *Schema) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.Properties))
	for _, d := range s.Properties {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		id := d.Class + "::" + d.Path()
		if seen[id] {
			errs = append(errs, fmt.Errorf("%w: duplicate property %q in class %q", ErrInvalidKey, d.Path(), d.Class))
			continue
		}
		seen[id] = true
	}
	return errors.Join(errs...)
}

// ForClass returns the rows declared for class, preserving order.
func (s *Schema) ForClass(class string) *Schema {
	out := &Schema{}
	for _, d := range s.Properties {
		if d.Class == class {
			out.Properties = append(out.Properties, d)
		}
	}
	return out
}

// Lookup finds a row by its full key.
func (s *Schema) Lookup(path string) (Declaration, bool) {
	for _, d := range s.Properties {
		if d.Path() == path {
			return d, true
		}
	}
	return Declaration{}, false
}

// LoadSchemaFile reads and parses a binding table. The format is taken from
// the file extension and, failing that, detected from the content.
func LoadSchemaFile(path string) (*Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file '%s': %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxSchemaSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file '%s': %w", path, err)
	}
	if len(data) > MaxSchemaSize {
		return nil, fmt.Errorf("%w: schema file '%s' exceeds %d bytes", ErrSchemaFormat, path, MaxSchemaSize)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	s, err := ParseSchema(data, format)
	if err != nil {
		return nil, fmt.Errorf("schema file '%s': %w", path, err)
	}
	return s, nil
}

// ParseSchema parses a binding table in the given format ("toml", "yaml" or "json").
// An empty format is detected from the content.
func ParseSchema(data []byte, format string) (*Schema, error) {
	if format == "" {
		format = detectFormatFromContent(data)
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse TOML: %v", ErrSchemaFormat, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON: %v", ErrSchemaFormat, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrSchemaFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unable to determine schema format", ErrSchemaFormat)
	}

	s := &Schema{}
	if err := decodeInto(raw, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaFormat, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try TOML before YAML: most TOML tables are not valid YAML, but
	// YAML accepts a lot of text that is not meant as YAML.
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
