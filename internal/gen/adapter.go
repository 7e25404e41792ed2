package gen

import (
	"github.com/pkg/errors"

	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
)

// AdaptDocument converts a dmmf.Document into a Registry, parsing field
// annotations once so that classification never re-scans documentation text.
// Composite types come before models so that anything a model field may
// reference is adapted first.
func AdaptDocument(doc *dmmf.Document) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*GenModel),
		enums:  make(map[string]*dmmf.Enum),
	}
	for _, t := range doc.Types {
		if err := r.add(adaptModel(t, true)); err != nil {
			return nil, err
		}
	}
	for _, m := range doc.Models {
		if err := r.add(adaptModel(m, false)); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Enums {
		r.Enums = append(r.Enums, e)
		r.enums[e.Name] = e
	}
	return r, nil
}

func (r *Registry) add(m *GenModel) error {
	if _, dup := r.byName[m.Name]; dup {
		return errors.Errorf("duplicate model name %q in registry", m.Name)
	}
	r.Nodes = append(r.Nodes, m)
	r.byName[m.Name] = m
	return nil
}

func adaptModel(m *dmmf.Model, embedded bool) *GenModel {
	gm := &GenModel{
		Model:      m,
		Tags:       annotations.Parse(m.Documentation),
		IsEmbedded: embedded,
	}
	for _, f := range m.Fields {
		gm.Fields = append(gm.Fields, &GenField{
			Field:     f,
			ModelName: m.Name,
			Tags:      annotations.Parse(f.Documentation),
		})
	}
	return gm
}
