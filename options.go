package nestjsdto

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Option customizes a Runner.
type Option func(*Runner)

// WithSchemaPath sets the path of the data-model document. The default "-"
// reads from stdin.
func WithSchemaPath(path string) Option {
	return func(r *Runner) {
		r.schemaPath = path
	}
}

// WithLogger replaces the standard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithDryRun lists the files a run would produce without writing them.
func WithDryRun(enable bool) Option {
	return func(r *Runner) {
		r.dryRun = enable
	}
}

// ConfigFromMap decodes the string map a schema engine passes in its
// generator block into a Config. Values are weakly typed, so "true" decodes
// into the boolean toggles.
func ConfigFromMap(m map[string]string) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, errors.Wrap(err, "failed to build config decoder")
	}
	if err := dec.Decode(m); err != nil {
		return cfg, errors.Wrap(err, "failed to decode generator config")
	}
	return cfg, nil
}
