package gen

import (
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
)

// DerivedModel is the outcome of projecting one model into one
// representation: the fields it keeps, the cross-model imports it needs and
// the relation targets that must be referenced lazily at render time.
type DerivedModel struct {
	Model          *GenModel
	Representation Representation
	Fields         []ParsedField
	Imports        []ImportRequirement
	LazyRelations  []string
}

// deriveContext carries the per-model state shared by the policy hooks.
type deriveContext struct {
	model *GenModel
	reg   *Registry
	cfg   Config

	// relScalars maps a foreign-key scalar field name to the relation
	// fields it backs. Computed once per model.
	relScalars map[string][]*GenField

	// connectCandidates is the number of id-or-unique fields of the model.
	connectCandidates int
}

// Derive projects a model into the given representation using the policy
// table. The registry is read-only; the result is a pure function of
// (model, registry, config, representation).
func Derive(m *GenModel, reg *Registry, cfg Config, rep Representation) DerivedModel {
	c := &deriveContext{
		model:      m,
		reg:        reg,
		cfg:        cfg,
		relScalars: relationScalars(m),
	}
	for _, f := range m.Fields {
		if f.IsId || f.IsUnique {
			c.connectCandidates++
		}
	}

	pol := policies[rep]
	d := DerivedModel{Model: m, Representation: rep}
	lazySeen := make(map[string]bool)
	var imports []ImportRequirement

	for _, f := range m.Fields {
		if !pol.include(c, f) {
			continue
		}
		d.Fields = append(d.Fields, materialize(f, pol.overrides(c, f)))

		switch {
		case f.Tags.Has(annotations.CustomType):
			// The emitted type is an opaque literal; no import, no lazy
			// reference.
		case f.Kind == dmmf.KindEnum:
			if _, ok := reg.Enum(f.Type); ok {
				imports = append(imports, ImportRequirement{
					Path:  enumImportPath(cfg, rep, f.Type),
					Named: []string{f.Type},
				})
			}
		case f.Kind == dmmf.KindObject && f.Type != m.Name:
			target, ok := reg.Lookup(f.Type)
			if !ok {
				// Missing cross-reference: the field keeps its relation
				// shape but no import can be produced.
				continue
			}
			targetRep := Plain
			if !target.IsEmbedded {
				targetRep = Entity
			}
			imports = append(imports, ImportRequirement{
				Path:  relativeImportPath(cfg, rep, target, targetRep),
				Named: []string{className(cfg, target, targetRep)},
			})
			if !lazySeen[f.Type] {
				lazySeen[f.Type] = true
				d.LazyRelations = append(d.LazyRelations, f.Type)
			}
		}
	}
	d.Imports = mergeImports(imports)
	return d
}

// relationScalars builds the foreign-key map of a model: for every relation
// field owning foreign keys, each backing scalar field name points at the
// relation fields referencing it.
func relationScalars(m *GenModel) map[string][]*GenField {
	scalars := make(map[string][]*GenField)
	for _, f := range m.Fields {
		if f.Kind != dmmf.KindObject {
			continue
		}
		for _, name := range f.RelationFromFields {
			scalars[name] = append(scalars[name], f)
		}
	}
	return scalars
}

// backsRelation reports whether the field is a foreign-key scalar mirrored
// by some relation field of the model.
func (c *deriveContext) backsRelation(f *GenField) bool {
	if f.Kind != dmmf.KindScalar {
		return false
	}
	return len(c.relScalars[f.Name]) > 0
}

// relationRequired resolves the requiredness of a foreign-key scalar as the
// disjunction over the relation fields backing it: required if any of them
// is schema-required or tagged required. With the exhaustive check disabled
// only the first backing relation is consulted.
func (c *deriveContext) relationRequired(f *GenField) bool {
	rels := c.relScalars[f.Name]
	if !c.cfg.ExhaustiveRelationCheck && len(rels) > 1 {
		rels = rels[:1]
	}
	for _, rel := range rels {
		if rel.Field.IsRequired || rel.Tags.Has(annotations.RequiredRelation) {
			return true
		}
	}
	return false
}
