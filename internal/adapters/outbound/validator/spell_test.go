package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polylint/polylint/internal/adapters/outbound/validator"
	"github.com/polylint/polylint/internal/domain"
)

func TestSpell_CleanContentPasses(t *testing.T) {
	content := "The receiver acknowledges the message.\n"
	assert.NoError(t, validator.NewSpell().Validate([]byte(content), nil))
}

func TestSpell_MisspellingFails(t *testing.T) {
	content := "first line\nwe recieve the payload here\n"

	err := validator.NewSpell().Validate([]byte(content), nil)

	var invalid *domain.ContentInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Detail, "misspelling")
	assert.Equal(t, 2, invalid.Line)
}

func TestSpell_FindsMisspellingInsideCamelCase(t *testing.T) {
	content := "func onRecieveMessage() {}\n"

	err := validator.NewSpell().Validate([]byte(content), nil)
	assert.Error(t, err, "camelCase identifiers are split before checking")
}

func TestSpell_IgnoreListSuppressesCorrections(t *testing.T) {
	content := "we recieve the payload\n"
	opts := domain.Options{"ignore": []any{"recieve"}}

	assert.NoError(t, validator.NewSpell().Validate([]byte(content), opts))
}
