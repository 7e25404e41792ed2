package gen

import (
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
)

// Pure field predicates. Every predicate is total: unresolved or malformed
// metadata classifies to the most permissive answer instead of failing.

// isRelation reports whether the field points at another model. Object
// fields whose target is absent from the registry are treated as relations
// so that partial-schema inputs still generate.
func isRelation(r *Registry, f *GenField) bool {
	if f.Kind != dmmf.KindObject {
		return false
	}
	if m, ok := r.Lookup(f.Type); ok {
		return !m.IsEmbedded
	}
	return true
}

// isEmbeddedType reports whether the field composes a composite type.
func isEmbeddedType(r *Registry, f *GenField) bool {
	if f.Kind != dmmf.KindObject {
		return false
	}
	m, ok := r.Lookup(f.Type)
	return ok && m.IsEmbedded
}

// isIdWithDefault reports whether the field is an id the store assigns
// itself (autoincrement, uuid and friends). Such fields are omitted from
// create representations unless explicitly tagged back in.
func isIdWithDefault(f *GenField) bool {
	return f.IsId && f.HasDefaultValue
}

// isRequiredWithDefault reports whether a non-id field is schema-required
// but carries a default value. Whether such fields surface in create is
// governed by the ShowDefaultValues toggle.
func isRequiredWithDefault(f *GenField) bool {
	return f.Field.IsRequired && f.HasDefaultValue && !f.IsId
}

// isUUIDDefault reports whether the field's default is a UUID-style
// generator.
func isUUIDDefault(f *GenField) bool {
	return uuidGenerators[f.Default.GeneratorName()]
}

// isNowDefault reports whether the field's default is a current-timestamp
// generator.
func isNowDefault(f *GenField) bool {
	return nowGenerators[f.Default.GeneratorName()]
}

// Known default-generator names. Constructed once; unknown generator names
// simply classify as "no recognized generator".
var (
	uuidGenerators = map[string]bool{
		"uuid": true,
	}
	nowGenerators = map[string]bool{
		"now": true,
	}
)
