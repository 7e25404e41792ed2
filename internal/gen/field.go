package gen

// ParsedField is a field resolved for one target representation.
// IsRequired and IsNullable shadow the schema-level flags of the embedded
// field on purpose: they are representation-local answers, not schema truth.
// The schema-level flag stays reachable as f.Field.IsRequired.
type ParsedField struct {
	*GenField
	IsRequired bool
	IsNullable bool
}

// Overrides carries the representation-local flags a deriver wants to force
// on a field. Unset entries leave the schema-level behavior untouched.
type Overrides struct {
	IsRequired *bool
	IsNullable *bool
}

// materialize produces the normalized field record for one representation.
// Overrides win over the schema-level flags; everything else is copied from
// the source field unchanged. Contradictory combinations are representable
// by design and must be resolved by the caller's override logic.
func materialize(f *GenField, o Overrides) ParsedField {
	pf := ParsedField{
		GenField:   f,
		IsRequired: f.Field.IsRequired,
		IsNullable: !f.Field.IsRequired,
	}
	if o.IsRequired != nil {
		pf.IsRequired = *o.IsRequired
	}
	if o.IsNullable != nil {
		pf.IsNullable = *o.IsNullable
	}
	return pf
}

func boolPtr(v bool) *bool { return &v }
