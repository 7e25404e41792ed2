package dmmf

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Read decodes a data-model document from r.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode data-model document")
	}
	return &doc, nil
}

// ReadFile decodes a data-model document from the file at path. The path "-"
// reads from stdin, matching the CLI contract.
func ReadFile(path string) (*Document, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open data-model document %s", path)
	}
	defer f.Close()
	return Read(f)
}
