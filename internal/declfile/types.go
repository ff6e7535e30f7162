package declfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"lima/internal/common"
)

// File represents the root of a YAML schema declaration file.
type File struct {
	// Version of the declaration format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package qualifies schema names that carry no qualifier of their own.
	Package string `yaml:"package,omitempty"`

	// Schemas are declared in order.
	Schemas []SchemaDecl `yaml:"schemas"`
}

// SchemaDecl declares one schema class.
type SchemaDecl struct {
	// Name of the class, qualified or not.
	Name string `yaml:"name"`

	// Bases lists classes whose fields are inherited, earlier ones first.
	Bases StringOrArray `yaml:"bases,omitempty"`

	// Fields are declared in order.
	Fields []FieldDecl `yaml:"fields,omitempty"`

	// Exclude removes inherited or declared fields.
	Exclude StringOrArray `yaml:"exclude,omitempty"`

	// Only keeps just the named fields.
	Only StringOrArray `yaml:"only,omitempty"`
}

// FieldDecl declares one field of a schema.
type FieldDecl struct {
	// Name is the key the field is dumped under.
	Name string `yaml:"name"`

	// Kind selects the field type. Defaults to KindField.
	Kind Kind `yaml:"kind,omitempty"`

	// Attr reads a differently named attribute of the source object.
	Attr string `yaml:"attr,omitempty"`

	// Val is a constant value. Dates and date times are given as ISO 8601
	// strings.
	Val any `yaml:"val,omitempty"`

	// Schema names the linked schema of embed and reference fields.
	Schema string `yaml:"schema,omitempty"`

	// Many, Exclude and Only are passed to the linked schema.
	Many    bool          `yaml:"many,omitempty"`
	Exclude StringOrArray `yaml:"exclude,omitempty"`
	Only    StringOrArray `yaml:"only,omitempty"`
}

// Kind names a field type.
type Kind string

const (
	KindField     Kind = "field"
	KindBoolean   Kind = "boolean"
	KindFloat     Kind = "float"
	KindInteger   Kind = "integer"
	KindString    Kind = "string"
	KindDate      Kind = "date"
	KindDateTime  Kind = "datetime"
	KindEmbed     Kind = "embed"
	KindReference Kind = "reference"
)

// Kinds lists all known kinds.
var Kinds = []Kind{
	KindField, KindBoolean, KindFloat, KindInteger, KindString,
	KindDate, KindDateTime, KindEmbed, KindReference,
}

// IsValid returns true for known kinds.
func (k Kind) IsValid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}

	return false
}

// IsLinked returns true for kinds delegating to another schema.
func (k Kind) IsLinked() bool {
	return k == KindEmbed || k == KindReference
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
