// Package dmmf models the resolved data-model document handed to the
// generator by the schema engine. The document arrives as JSON with models,
// composite types and enums already resolved; this package only decodes it.
package dmmf

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// FieldKind discriminates scalar, enum and object (relation or composite
// type) fields.
type FieldKind string

const (
	KindScalar FieldKind = "scalar"
	KindObject FieldKind = "object"
	KindEnum   FieldKind = "enum"
)

// Document is the root of the data-model description.
type Document struct {
	Models []*Model `json:"models"`
	// Types holds embedded composite types. They have no identity of their
	// own and are only composed into model fields.
	Types []*Model `json:"types"`
	Enums []*Enum  `json:"enums"`
}

// Model is a named structural type with an ordered field list.
type Model struct {
	Name          string   `json:"name"`
	DBName        string   `json:"dbName"`
	Fields        []*Field `json:"fields"`
	Documentation string   `json:"documentation"`
}

// Field is a single model field as resolved by the schema engine.
type Field struct {
	Name            string    `json:"name"`
	Kind            FieldKind `json:"kind"`
	Type            string    `json:"type"`
	IsList          bool      `json:"isList"`
	IsRequired      bool      `json:"isRequired"`
	IsId            bool      `json:"isId"`
	IsUnique        bool      `json:"isUnique"`
	IsReadOnly      bool      `json:"isReadOnly"`
	IsUpdatedAt     bool      `json:"isUpdatedAt"`
	HasDefaultValue bool      `json:"hasDefaultValue"`
	Default         *Default  `json:"default"`
	// RelationFromFields lists the foreign-key scalar field names backing
	// this relation field, when the field is the owning side of a relation.
	RelationFromFields []string `json:"relationFromFields"`
	RelationToFields   []string `json:"relationToFields"`
	RelationName       string   `json:"relationName"`
	Documentation      string   `json:"documentation"`
}

// Enum is a named list of member values.
type Enum struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values"`
}

// EnumValue is one enum member.
type EnumValue struct {
	Name   string `json:"name"`
	DBName string `json:"dbName"`
}

// Default describes a field's default value. In the source document it is
// either a literal (scalar or list) or a named generator call such as
// {"name": "autoincrement", "args": []}.
type Default struct {
	// Name is the generator name for generator-style defaults, empty for
	// literal defaults.
	Name string
	Args []any
	// Value holds the literal default when Name is empty.
	Value any
}

// generator mirrors the object form of a default value.
type generator struct {
	Name string `json:"name"`
	Args []any  `json:"args"`
}

// UnmarshalJSON accepts both the generator object form and plain literals.
func (d *Default) UnmarshalJSON(raw []byte) error {
	var g generator
	if err := json.Unmarshal(raw, &g); err == nil && g.Name != "" {
		*d = Default{Name: g.Name, Args: g.Args}
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.Wrap(err, "failed to unmarshal default value")
	}
	*d = Default{Value: v}
	return nil
}

// GeneratorName returns the named-generator descriptor of the default, or
// the empty string for literal defaults.
func (d *Default) GeneratorName() string {
	if d == nil {
		return ""
	}
	return d.Name
}
