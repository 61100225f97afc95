package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polylint/polylint/internal/adapters/outbound/validator"
)

func TestYAML_Valid(t *testing.T) {
	tests := []string{
		"name: polylint\n",
		"list:\n  - a\n  - b\n",
		"",
		"---\ndoc: 1\n---\ndoc: 2\n",
	}
	v := validator.NewYAML()
	for _, content := range tests {
		assert.NoError(t, v.Validate([]byte(content), nil), content)
	}
}

func TestYAML_Invalid(t *testing.T) {
	tests := []string{
		"key: [unclosed\n",
		"a: 1\n  b: bad indent\n",
		"\t tabs: as indentation\n",
	}
	v := validator.NewYAML()
	for _, content := range tests {
		assert.Error(t, v.Validate([]byte(content), nil), content)
	}
}
