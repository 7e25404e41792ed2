package gen

import (
	"bytes"
	"embed"
	"io"
	"path"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/types"
)

//go:embed templates/*
var templates embed.FS

// FileSpec is one output file the rendering produced: where it goes and
// what it contains. The caller owns writing it to disk.
type FileSpec struct {
	Path    string
	Content []byte
}

// Generate runs the full derivation pass over a document and returns the
// output files in deterministic order. Structural configuration errors
// abort before any file is produced.
func Generate(doc *dmmf.Document, cfg Config, log logrus.FieldLogger) ([]FileSpec, error) {
	cfg.ResolveDefaults()
	if !cfg.Mode.Valid() {
		return nil, errors.Errorf("unknown output mode %q", cfg.Mode)
	}
	if !cfg.Case.Valid() {
		return nil, errors.Errorf("unknown file-name case %q", cfg.Case)
	}
	reg, err := AdaptDocument(doc)
	if err != nil {
		return nil, err
	}
	if cfg.Mode == types.ModeEntity && reg.HasEmbedded() {
		return nil, errors.New(`entity-only output cannot represent embedded types; use mode "all" or "dto"`)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	g := &Generator{cfg: cfg, reg: reg, log: log}
	g.warnUnresolved()
	return g.generate()
}

// Generator renders the derived representations of one registry.
type Generator struct {
	cfg Config
	reg *Registry
	log logrus.FieldLogger
}

func (g *Generator) generate() ([]FileSpec, error) {
	var files []FileSpec
	for _, e := range g.reg.Enums {
		f, err := g.renderEnum(e)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	for _, n := range g.reg.Nodes {
		var exports []string
		for _, rep := range g.representations(n) {
			d := Derive(n, g.reg, g.cfg, rep)
			f, err := g.renderClass(d)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
			exports = append(exports, repRelPath(g.cfg, rep, fileBase(g.cfg, n, rep)))
			if g.cfg.GenerateSchemas {
				sf, err := g.renderSchema(d)
				if err != nil {
					return nil, err
				}
				files = append(files, sf)
				exports = append(exports, repRelPath(g.cfg, rep, schemaFileBase(g.cfg, n, rep)))
			}
		}
		f, err := g.renderIndex(n, exports)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// renderIndex emits the per-model barrel file re-exporting every generated
// file of the model's directory.
func (g *Generator) renderIndex(n *GenModel, exports []string) (FileSpec, error) {
	content, err := g.render("templates/index.tmpl", map[string]any{
		"Exports": exports,
	})
	if err != nil {
		return FileSpec{}, err
	}
	return FileSpec{
		Path:    filepath.Join(g.cfg.Output, modelDir(g.cfg, n), "index.ts"),
		Content: content,
	}, nil
}

// representations selects the output kinds of a node. Composite types have
// no identity of their own, so they produce neither connect nor entity.
func (g *Generator) representations(n *GenModel) []Representation {
	if n.IsEmbedded {
		return []Representation{Plain, Create, Update}
	}
	switch g.cfg.Mode {
	case types.ModeDto:
		return []Representation{Plain, Create, Update, Connect}
	case types.ModeEntity:
		return []Representation{Entity}
	default:
		return []Representation{Plain, Create, Update, Connect, Entity}
	}
}

func (g *Generator) renderClass(d DerivedModel) (FileSpec, error) {
	decls := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		decls = append(decls, fieldDecl(g.cfg, g.reg, d.Representation, f))
	}
	tmpl := "templates/dto.tmpl"
	if d.Representation == Entity {
		tmpl = "templates/entity.tmpl"
	}
	content, err := g.render(tmpl, map[string]any{
		"Imports":   d.Imports,
		"ClassName": className(g.cfg, d.Model, d.Representation),
		"Fields":    decls,
	})
	if err != nil {
		return FileSpec{}, err
	}
	return FileSpec{
		Path: filepath.Join(g.cfg.Output, modelDir(g.cfg, d.Model),
			repRelPath(g.cfg, d.Representation, fileBase(g.cfg, d.Model, d.Representation))+".ts"),
		Content: content,
	}, nil
}

// renderSchema is the second classification pass: it reuses the derived
// field set to build validator expressions and schema-level imports.
func (g *Generator) renderSchema(d DerivedModel) (FileSpec, error) {
	opt := zodOptions{
		isUpdate:   d.Representation == Update,
		schemaName: g.targetSchemaName,
	}
	type schemaField struct {
		Name string
		Expr string
	}
	var (
		fields  []schemaField
		imports []ImportRequirement
	)
	for _, f := range d.Fields {
		fields = append(fields, schemaField{Name: f.Name, Expr: zodExpression(f, opt)})
		if f.Tags.Has(annotations.CustomType) {
			continue
		}
		switch f.Kind {
		case dmmf.KindEnum:
			if _, ok := g.reg.Enum(f.Type); !ok {
				continue
			}
			imports = append(imports, ImportRequirement{
				Path:  enumImportPath(g.cfg, d.Representation, f.Type),
				Named: []string{f.Type},
			})
		case dmmf.KindObject:
			if f.Type == d.Model.Name {
				continue
			}
			target, ok := g.reg.Lookup(f.Type)
			if !ok {
				continue
			}
			rep := Entity
			if target.IsEmbedded {
				rep = Plain
			}
			imports = append(imports, ImportRequirement{
				Path:  relativeSchemaImportPath(g.cfg, d.Representation, target, rep),
				Named: []string{schemaName(g.cfg, target, rep)},
			})
		}
	}
	content, err := g.render("templates/schema.tmpl", map[string]any{
		"Imports":    mergeImports(imports),
		"SchemaName": schemaName(g.cfg, d.Model, d.Representation),
		"Fields":     fields,
	})
	if err != nil {
		return FileSpec{}, err
	}
	return FileSpec{
		Path: filepath.Join(g.cfg.Output, modelDir(g.cfg, d.Model),
			repRelPath(g.cfg, d.Representation, schemaFileBase(g.cfg, d.Model, d.Representation))+".ts"),
		Content: content,
	}, nil
}

// targetSchemaName resolves the deferred-reference identifier for an object
// field: the entity schema of a model, the plain schema of a composite type.
// Unresolvable targets still produce a plausible identifier so that partial
// schemas generate inspectable output.
func (g *Generator) targetSchemaName(typeName string) string {
	if target, ok := g.reg.Lookup(typeName); ok {
		rep := Entity
		if target.IsEmbedded {
			rep = Plain
		}
		return schemaName(g.cfg, target, rep)
	}
	return typeName + g.cfg.SchemaSuffix
}

func (g *Generator) renderEnum(e *dmmf.Enum) (FileSpec, error) {
	values := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		values = append(values, v.Name)
	}
	content, err := g.render("templates/enum.tmpl", map[string]any{
		"Name":   e.Name,
		"Values": values,
	})
	if err != nil {
		return FileSpec{}, err
	}
	return FileSpec{
		Path:    filepath.Join(g.cfg.Output, "enums", enumFileBase(g.cfg, e.Name)+".ts"),
		Content: content,
	}, nil
}

func (g *Generator) render(name string, data any) ([]byte, error) {
	t, err := template.New(path.Base(name)).Funcs(funcMap).ParseFS(templates, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template %s", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "failed to execute template %s", name)
	}
	return buf.Bytes(), nil
}

// warnUnresolved logs object fields whose target is absent from the
// registry. Those fields still render with their relation shape; only the
// import is skipped.
func (g *Generator) warnUnresolved() {
	for _, n := range g.reg.Nodes {
		for _, f := range n.Fields {
			if f.Tags.Has(annotations.CustomType) {
				continue
			}
			switch f.Kind {
			case dmmf.KindObject:
				if _, ok := g.reg.Lookup(f.Type); !ok {
					g.log.Warnf("model %s: field %s references unknown type %s, no import generated", n.Name, f.Name, f.Type)
				}
			case dmmf.KindEnum:
				if _, ok := g.reg.Enum(f.Type); !ok {
					g.log.Warnf("model %s: field %s references unknown enum %s, no import generated", n.Name, f.Name, f.Type)
				}
			}
		}
	}
}
