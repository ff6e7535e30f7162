package declfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"lima/internal/common"
)

// CurrentVersion is the declaration format version written and accepted.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Schemas {
		for j := range f.Schemas[i].Fields {
			fd := &f.Schemas[i].Fields[j]
			if fd.Kind == "" {
				fd.Kind = KindField
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}

// Qualified returns the registry name of the schema declared as name.
func (f *File) Qualified(name string) string {
	if strings.Contains(name, ".") {
		return name
	}

	return common.Qualify(f.Package, name)
}

// declared returns the qualified names of the schemas declared in f.
func (f *File) declared() map[string]int {
	names := make(map[string]int, len(f.Schemas))
	for i := range f.Schemas {
		if _, dup := names[f.Qualified(f.Schemas[i].Name)]; !dup {
			names[f.Qualified(f.Schemas[i].Name)] = i
		}
	}

	return names
}

// Ref returns the name a schema reference is looked up by: references to
// schemas declared in f are qualified, anything else is left to the registry.
func (f *File) Ref(name string) string {
	if _, ok := f.declared()[f.Qualified(name)]; ok {
		return f.Qualified(name)
	}

	return name
}
