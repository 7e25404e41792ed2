package gen

import (
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"
)

// Representation is one derived shape of a model.
type Representation int

const (
	Plain Representation = iota
	Create
	Update
	Connect
	Entity
)

func (r Representation) String() string {
	switch r {
	case Plain:
		return "plain"
	case Create:
		return "create"
	case Update:
		return "update"
	case Connect:
		return "connect"
	case Entity:
		return "entity"
	}
	return "unknown"
}

// policy parameterizes the shared derivation algorithm per representation:
// which fields are included and which representation-local flags they get.
type policy struct {
	include   func(c *deriveContext, f *GenField) bool
	overrides func(c *deriveContext, f *GenField) Overrides
}

// policies is the strategy table keyed by representation kind. The five
// derivers share the field iteration, override materialization and import
// collection; only these two hooks differ.
var policies = map[Representation]policy{
	Plain:   {include: includePlain, overrides: overridePlain},
	Create:  {include: includeCreate, overrides: overrideCreate},
	Update:  {include: includeUpdate, overrides: overrideUpdate},
	Connect: {include: includeConnect, overrides: overrideConnect},
	Entity:  {include: includeEntity, overrides: overrideEntity},
}

// --- entity ---

func includeEntity(c *deriveContext, f *GenField) bool {
	return !f.Tags.Has(annotations.HideEntity)
}

func overrideEntity(c *deriveContext, f *GenField) Overrides {
	required := f.Field.IsRequired
	switch {
	case isRelation(c.reg, f):
		// List relations are never required; single relations only when
		// tagged as required.
		required = !f.IsList && f.Tags.Has(annotations.RequiredRelation)
	case c.backsRelation(f):
		// Foreign-key scalars mirror the requiredness of the relation
		// fields they back.
		required = c.relationRequired(f)
	}
	return Overrides{
		IsRequired: boolPtr(required),
		IsNullable: boolPtr(!required && !f.IsList),
	}
}

// --- plain ---

func includePlain(c *deriveContext, f *GenField) bool {
	if isRelation(c.reg, f) {
		return false
	}
	if c.backsRelation(f) {
		return f.Tags.Has(annotations.IncludeRelationId)
	}
	return true
}

func overridePlain(c *deriveContext, f *GenField) Overrides {
	if c.backsRelation(f) {
		required := c.relationRequired(f)
		return Overrides{IsRequired: boolPtr(required), IsNullable: boolPtr(!required)}
	}
	return Overrides{}
}

// --- create ---

func includeCreate(c *deriveContext, f *GenField) bool {
	if isRelation(c.reg, f) {
		return false
	}
	if c.backsRelation(f) {
		// Explicit inclusion also lifts the read-only exclusion below.
		return f.Tags.Has(annotations.IncludeRelationId)
	}
	switch {
	case f.IsReadOnly,
		f.Tags.Has(annotations.HideCreate),
		f.IsUpdatedAt:
		return false
	case isIdWithDefault(f):
		// The store assigns these; only an explicit tag brings them back.
		return f.Tags.Has(annotations.OptionalCreate) || f.Tags.Has(annotations.RequiredCreate)
	case isRequiredWithDefault(f) && !c.cfg.ShowDefaultValues:
		return f.Tags.Has(annotations.OptionalCreate) || f.Tags.Has(annotations.RequiredCreate)
	}
	return true
}

func overrideCreate(c *deriveContext, f *GenField) Overrides {
	var required bool
	switch {
	case c.backsRelation(f):
		required = c.relationRequired(f)
	case f.Tags.Has(annotations.RequiredCreate):
		required = true
	case f.Tags.Has(annotations.OptionalCreate):
		required = false
	case isRequiredWithDefault(f):
		// Shown because ShowDefaultValues is on, but the store fills the
		// value in, so the caller may leave it out.
		required = false
	default:
		required = f.Field.IsRequired
	}
	return Overrides{IsRequired: boolPtr(required), IsNullable: boolPtr(!required)}
}

// --- update ---

func includeUpdate(c *deriveContext, f *GenField) bool {
	if f.IsId {
		// Identifiers are immutable.
		return false
	}
	if isRelation(c.reg, f) {
		return false
	}
	if c.backsRelation(f) {
		return f.Tags.Has(annotations.IncludeRelationId)
	}
	switch {
	case f.IsReadOnly,
		f.Tags.Has(annotations.HideUpdate),
		f.IsUpdatedAt:
		return false
	}
	return true
}

func overrideUpdate(c *deriveContext, f *GenField) Overrides {
	// Blanket optional: every update field may be omitted unless tagged.
	required := f.Tags.Has(annotations.RequiredUpdate)
	return Overrides{IsRequired: boolPtr(required), IsNullable: boolPtr(!required)}
}

// --- connect ---

func includeConnect(c *deriveContext, f *GenField) bool {
	return f.IsId || f.IsUnique
}

func overrideConnect(c *deriveContext, f *GenField) Overrides {
	// With a single identity candidate it is required. With several, all
	// become optional and the caller supplies exactly one; none of them is
	// ever nullable.
	single := c.connectCandidates == 1
	return Overrides{IsRequired: boolPtr(single), IsNullable: boolPtr(false)}
}
