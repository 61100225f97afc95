package validator

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/polylint/polylint/internal/domain"
)

// YAML validates that content parses as YAML. Multi-document streams are
// accepted; the first parse failure fails the file.
type YAML struct{}

func NewYAML() *YAML { return &YAML{} }

func (*YAML) Validate(content []byte, _ domain.Options) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &domain.ContentInvalidError{Detail: err.Error()}
		}
	}
}
