package gen

import (
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
)

// GenModel wraps dmmf.Model with pre-computed generation metadata.
// Fields shadows the embedded dmmf.Model field to return wrapped types.
type GenModel struct {
	*dmmf.Model
	Fields []*GenField
	Tags   annotations.Set

	// IsEmbedded marks composite types: they have no identity of their own
	// and only produce the input-side representations.
	IsEmbedded bool
}

// GenField wraps dmmf.Field with the owning model's name and the annotation
// set parsed once from the field documentation.
type GenField struct {
	*dmmf.Field
	ModelName string
	Tags      annotations.Set
}

// Registry is the resolved set of models, composite types and enums of one
// generation run. It is read-only once built.
type Registry struct {
	// Nodes holds composite types first, then models, mirroring the
	// dependency direction between them.
	Nodes []*GenModel
	Enums []*dmmf.Enum

	byName map[string]*GenModel
	enums  map[string]*dmmf.Enum
}

// Lookup resolves a model or composite type by name.
func (r *Registry) Lookup(name string) (*GenModel, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Enum resolves an enum by name.
func (r *Registry) Enum(name string) (*dmmf.Enum, bool) {
	e, ok := r.enums[name]
	return e, ok
}

// HasEmbedded reports whether the registry contains composite types.
func (r *Registry) HasEmbedded() bool {
	for _, n := range r.Nodes {
		if n.IsEmbedded {
			return true
		}
	}
	return false
}
