// Package annotations parses the documentation text attached to schema models
// and fields into a typed set of recognized tags. Classification never scans
// raw documentation itself; it consults the parsed set built once per field.
package annotations

import (
	"strings"
)

// Tag is a recognized documentation marker controlling how a field is
// projected into the generated representations.
type Tag string

const (
	// HideCreate omits the field from the create representation.
	HideCreate Tag = "@HideCreate"
	// HideUpdate omits the field from the update representation.
	HideUpdate Tag = "@HideUpdate"
	// HideEntity omits the field from the entity representation.
	HideEntity Tag = "@HideEntity"
	// OptionalCreate keeps the field in the create representation but optional.
	OptionalCreate Tag = "@OptionalCreate"
	// RequiredCreate forces a defaulted field into the create representation as required.
	RequiredCreate Tag = "@RequiredCreate"
	// RequiredUpdate forces the field to be required in the update representation.
	RequiredUpdate Tag = "@RequiredUpdate"
	// RequiredRelation marks a relation field as required in the entity representation.
	RequiredRelation Tag = "@RequiredRelation"
	// IncludeRelationId surfaces a foreign-key scalar that would otherwise be
	// hidden behind its relation field.
	IncludeRelationId Tag = "@IncludeRelationId"
	// CustomType overrides the emitted type with its literal argument and
	// suppresses relation imports and lazy references for the field.
	CustomType Tag = "@CustomType"
)

// recognized maps tag text to whether the tag takes an argument.
var recognized = map[Tag]bool{
	HideCreate:        false,
	HideUpdate:        false,
	HideEntity:        false,
	OptionalCreate:    false,
	RequiredCreate:    false,
	RequiredUpdate:    false,
	RequiredRelation:  false,
	IncludeRelationId: false,
	CustomType:        true,
}

// Set holds the tags parsed from one documentation block, mapped to their
// argument text (empty for argument-less tags).
type Set map[Tag]string

// Parse scans documentation text and returns the set of recognized tags.
// Unrecognized markers are ignored so that schema evolution never breaks
// generation. Later occurrences of the same tag win.
func Parse(doc string) Set {
	if doc == "" {
		return nil
	}
	var set Set
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		at := strings.IndexByte(line, '@')
		if at < 0 {
			continue
		}
		name, arg := splitMarker(line[at:])
		takesArg, ok := recognized[Tag(name)]
		if !ok {
			continue
		}
		if set == nil {
			set = make(Set)
		}
		if !takesArg {
			arg = ""
		}
		set[Tag(name)] = arg
	}
	return set
}

// splitMarker splits "@CustomType Decimal.js" into the marker name and the
// remainder of the line as its argument.
func splitMarker(s string) (name, arg string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// Has reports whether the tag is present in the set. A nil set has no tags.
func (s Set) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Arg returns the argument attached to the tag, if present.
func (s Set) Arg(t Tag) (string, bool) {
	v, ok := s[t]
	return v, ok
}
