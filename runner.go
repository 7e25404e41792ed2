// Package nestjsdto generates NestJS-style DTO classes, entity classes and
// Zod validation schemas from a resolved Prisma data-model document.
package nestjsdto

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/gen"
)

// Runner ties together document loading, derivation and file emission.
type Runner struct {
	cfg        gen.Config
	schemaPath string
	dryRun     bool
	log        *logrus.Logger
}

// New builds a Runner for the given configuration.
func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:        cfg,
		schemaPath: "-",
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads the data-model document, derives every enabled representation
// and writes the generated files. The derivation pass is a pure function of
// the document and configuration; two runs over the same input produce
// byte-identical files.
func (r *Runner) Run(ctx context.Context) error {
	doc, err := dmmf.ReadFile(r.schemaPath)
	if err != nil {
		return err
	}
	files, err := gen.Generate(doc, r.cfg, r.log)
	if err != nil {
		return err
	}
	if r.dryRun {
		for _, f := range files {
			r.log.Infof("would write %s", f.Path)
		}
		return nil
	}
	return r.writeFiles(ctx, files)
}

// writeFiles fans the write-out over a bounded group. Only the disk writes
// run concurrently; derivation stays single-threaded.
func (r *Runner) writeFiles(ctx context.Context, files []gen.FileSpec) error {
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for _, f := range files {
		f := f
		eg.Go(func() error {
			if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
				return errors.Wrapf(err, "failed to create directory for %s", f.Path)
			}
			return errors.Wrapf(os.WriteFile(f.Path, f.Content, 0o644), "failed to write %s", f.Path)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	r.log.Infof("generated %d files under %s", len(files), r.cfg.Output)
	return nil
}
