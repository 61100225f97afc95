// Package validator holds the per-kind content validators plugged into the
// file-batch linter.
package validator

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/polylint/polylint/internal/domain"
)

// JSON validates that content is a single well-formed JSON document.
type JSON struct{}

func NewJSON() *JSON { return &JSON{} }

func (*JSON) Validate(content []byte, _ domain.Options) error {
	var v any
	if err := json.Unmarshal(content, &v); err != nil {
		return &domain.ContentInvalidError{
			Detail: err.Error(),
			Line:   jsonErrorLine(content, err),
		}
	}
	return nil
}

// jsonErrorLine maps a syntax error offset back to a 1-based line number.
func jsonErrorLine(content []byte, err error) int {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return 0
	}
	offset := int(syntaxErr.Offset)
	if offset > len(content) {
		offset = len(content)
	}
	return bytes.Count(content[:offset], []byte("\n")) + 1
}
