package gen

import (
	"fmt"

	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
)

// zodScalars maps scalar type tags to their base validator expressions.
// Float and Decimal both collapse to the general numeric validator. The
// table is constructed once and never mutated; types absent from it fall
// back to the opaque validator so that schema evolution cannot break
// generation.
var zodScalars = map[string]string{
	"String":   "z.string()",
	"Boolean":  "z.boolean()",
	"Int":      "z.number().int()",
	"BigInt":   "z.bigint()",
	"Float":    "z.number()",
	"Decimal":  "z.number()",
	"DateTime": "z.date()",
	"Json":     "z.record(z.unknown())",
	"Bytes":    "z.instanceof(Buffer)",
}

const zodOpaque = "z.unknown()"

// zodOptions parameterize expression compilation for one schema file.
type zodOptions struct {
	// schemaName resolves a model or composite type name to the schema
	// identifier its deferred reference should call.
	schemaName func(typeName string) string
	// isUpdate applies the blanket-optional semantics of the update
	// representation.
	isUpdate bool
}

// zodExpression compiles a normalized field into its validator expression.
// Resolution order is fixed: custom type, deferred reference, enum, uuid id,
// timestamp, scalar table, opaque fallback; then the list wrapper, then the
// optionality modifiers.
func zodExpression(f ParsedField, opt zodOptions) string {
	expr := zodBase(f, opt)
	if f.IsList {
		expr = fmt.Sprintf("z.array(%s)", expr)
	}
	return expr + zodModifier(f, opt)
}

func zodBase(f ParsedField, opt zodOptions) string {
	if arg, ok := f.Tags.Arg(annotations.CustomType); ok {
		if arg == "" {
			return zodOpaque
		}
		return fmt.Sprintf("z.custom<%s>()", arg)
	}
	switch f.Kind {
	case dmmf.KindObject:
		// Deferred so that forward, mutual and self references resolve.
		return fmt.Sprintf("z.lazy(() => %s)", opt.schemaName(f.Type))
	case dmmf.KindEnum:
		return fmt.Sprintf("z.nativeEnum(%s)", f.Type)
	}
	if f.IsId && f.Type == "String" && isUUIDDefault(f.GenField) {
		return "z.string().uuid()"
	}
	if f.Type == "DateTime" && (f.IsUpdatedAt || isNowDefault(f.GenField)) {
		return "z.string().datetime().transform((v) => new Date(v))"
	}
	if expr, ok := zodScalars[f.Type]; ok {
		return expr
	}
	return zodOpaque
}

// zodModifier composes optionality. There is no "optional but never null"
// modifier in this system: optional always also tolerates null, so a field
// that is not required yields the combined modifier even when it is not
// nullable.
func zodModifier(f ParsedField, opt zodOptions) string {
	switch {
	case opt.isUpdate && !f.IsId && !f.IsRequired:
		// Blanket update semantics; a field forced required in update
		// carries no modifier at all.
		return ".nullish()"
	case f.IsNullable && !f.IsRequired:
		return ".nullish()"
	case f.IsNullable:
		return ".nullable()"
	case !f.IsRequired:
		return ".nullish()"
	}
	return ""
}
