package gen

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/types"
)

// tsScalars maps scalar type tags to TypeScript types for class fields.
var tsScalars = map[string]string{
	"String":   "string",
	"Boolean":  "boolean",
	"Int":      "number",
	"BigInt":   "bigint",
	"Float":    "number",
	"Decimal":  "number",
	"DateTime": "Date",
	"Json":     "Record<string, unknown>",
	"Bytes":    "Buffer",
}

// caseName renders a PascalCase identifier in the configured file-name case.
func caseName(c types.FileNameCase, name string) string {
	under := inflect.Underscore(name)
	switch c {
	case types.CaseCamel:
		return inflect.CamelizeDownFirst(under)
	case types.CaseSnake:
		return under
	default:
		return inflect.Dasherize(under)
	}
}

// className returns the emitted class name of a model in one representation.
func className(cfg Config, m *GenModel, rep Representation) string {
	switch rep {
	case Create:
		return cfg.CreatePrefix + m.Name + cfg.DtoSuffix
	case Update:
		return cfg.UpdatePrefix + m.Name + cfg.DtoSuffix
	case Connect:
		return cfg.ConnectPrefix + m.Name + cfg.DtoSuffix
	case Entity:
		return m.Name + cfg.EntitySuffix
	default:
		return m.Name + cfg.DtoSuffix
	}
}

// schemaName returns the validation-schema identifier of a model in one
// representation. Mirroring the class name keeps the two namespaces aligned
// and collision-free.
func schemaName(cfg Config, m *GenModel, rep Representation) string {
	return className(cfg, m, rep) + cfg.SchemaSuffix
}

// fileBase returns the file name of a representation without the .ts
// extension, e.g. "create-user.dto".
func fileBase(cfg Config, m *GenModel, rep Representation) string {
	switch rep {
	case Create:
		return caseName(cfg.Case, cfg.CreatePrefix+m.Name) + ".dto"
	case Update:
		return caseName(cfg.Case, cfg.UpdatePrefix+m.Name) + ".dto"
	case Connect:
		return caseName(cfg.Case, cfg.ConnectPrefix+m.Name) + ".dto"
	case Entity:
		return caseName(cfg.Case, m.Name+cfg.EntitySuffix) + ".entity"
	default:
		return caseName(cfg.Case, m.Name) + ".dto"
	}
}

// schemaFileBase is the schema-file counterpart of fileBase.
func schemaFileBase(cfg Config, m *GenModel, rep Representation) string {
	base := fileBase(cfg, m, rep)
	if strings.HasSuffix(base, ".dto") {
		return strings.TrimSuffix(base, ".dto") + ".schema"
	}
	return base + ".schema"
}

// modelDir is the per-model output directory name.
func modelDir(cfg Config, m *GenModel) string {
	return caseName(cfg.Case, m.Name)
}

// repDir is the representation sub-directory within the model directory,
// empty for a flat layout.
func repDir(cfg Config, rep Representation) string {
	if rep == Entity {
		return cfg.EntityDir
	}
	return cfg.DtoDir
}

// repRelPath is a file's path relative to the model directory: the
// representation sub-directory (if any) plus the base name.
func repRelPath(cfg Config, rep Representation, base string) string {
	if dir := repDir(cfg, rep); dir != "" {
		return dir + "/" + base
	}
	return base
}

// climb is the prefix that leaves the importing file's directory and ends
// up beside the model directories.
func climb(cfg Config, from Representation) string {
	if repDir(cfg, from) != "" {
		return "../../"
	}
	return "../"
}

// relativeImportPath is the import path of a target model's class file as
// seen from the file of the `from` representation of another model.
func relativeImportPath(cfg Config, from Representation, target *GenModel, rep Representation) string {
	return climb(cfg, from) + modelDir(cfg, target) + "/" + repRelPath(cfg, rep, fileBase(cfg, target, rep))
}

// relativeSchemaImportPath is the schema-file counterpart.
func relativeSchemaImportPath(cfg Config, from Representation, target *GenModel, rep Representation) string {
	return climb(cfg, from) + modelDir(cfg, target) + "/" + repRelPath(cfg, rep, schemaFileBase(cfg, target, rep))
}

// enumFileBase returns the enum file name without extension.
func enumFileBase(cfg Config, name string) string {
	return caseName(cfg.Case, name) + ".enum"
}

// enumImportPath applies the configured import-path template for an enum.
// Relative templates gain an extra level when the importing file sits in a
// representation sub-directory; absolute templates are used as-is.
func enumImportPath(cfg Config, from Representation, name string) string {
	p := strings.ReplaceAll(cfg.EnumImportPath, "{name}", enumFileBase(cfg, name))
	if repDir(cfg, from) != "" && strings.HasPrefix(p, "../") {
		p = "../" + p
	}
	return p
}

// tsType resolves the TypeScript type of a field declaration, before the
// list and null markers.
func tsType(cfg Config, reg *Registry, f ParsedField) string {
	if arg, ok := f.Tags.Arg(annotations.CustomType); ok && arg != "" {
		return arg
	}
	switch f.Kind {
	case dmmf.KindObject:
		if target, ok := reg.Lookup(f.Type); ok {
			if target.IsEmbedded {
				return className(cfg, target, Plain)
			}
			return className(cfg, target, Entity)
		}
		return f.Type
	case dmmf.KindEnum:
		return f.Type
	}
	if t, ok := tsScalars[f.Type]; ok {
		return t
	}
	return "unknown"
}

// fieldDecl renders one class field declaration line. The readonly marker
// only applies to entities: fields explicitly surfaced in the input-side
// representations are forced non-read-only there.
func fieldDecl(cfg Config, reg *Registry, rep Representation, f ParsedField) string {
	var b strings.Builder
	if rep == Entity && f.IsReadOnly {
		b.WriteString("readonly ")
	}
	b.WriteString(f.Name)
	if !f.IsRequired {
		b.WriteByte('?')
	}
	b.WriteString(": ")
	t := tsType(cfg, reg, f)
	if f.IsList {
		t += "[]"
	}
	if f.IsNullable {
		t += " | null"
	}
	b.WriteString(t)
	b.WriteByte(';')
	return b.String()
}

// namedImport renders a TypeScript named-import statement.
func namedImport(req ImportRequirement) string {
	return fmt.Sprintf("import { %s } from '%s';", strings.Join(req.Named, ", "), req.Path)
}
