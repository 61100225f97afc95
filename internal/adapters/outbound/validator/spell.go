package validator

import (
	"fmt"
	"strings"

	"github.com/client9/misspell"
	"github.com/fatih/camelcase"

	"github.com/polylint/polylint/internal/domain"
)

// Spell checks content against the misspell dictionary. CamelCase
// identifiers are split into words first so misspellings buried inside
// source code names are still found.
//
// Options:
//   - "ignore" ([]string): corrections to drop from the dictionary
type Spell struct{}

func NewSpell() *Spell { return &Spell{} }

func (*Spell) Validate(content []byte, opts domain.Options) error {
	replacer := misspell.Replacer{Replacements: misspell.DictMain}
	if ignore := stringListOption(opts, "ignore"); len(ignore) > 0 {
		replacer.RemoveRule(ignore)
	}
	replacer.Compile()

	_, diffs := replacer.Replace(splitIdentifiers(string(content)))
	if len(diffs) == 0 {
		return nil
	}

	first := diffs[0]
	detail := fmt.Sprintf("%q is a misspelling of %q", first.Original, first.Corrected)
	if len(diffs) > 1 {
		detail = fmt.Sprintf("%s (+%d more)", detail, len(diffs)-1)
	}
	return &domain.ContentInvalidError{Detail: detail, Line: first.Line}
}

// splitIdentifiers rewrites camelCase runs as space-separated words while
// keeping line structure intact, so reported line numbers stay meaningful.
func splitIdentifiers(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		for j, f := range fields {
			parts := camelcase.Split(f)
			if len(parts) > 1 {
				fields[j] = strings.Join(parts, " ")
			}
		}
		lines[i] = strings.Join(fields, " ")
	}
	return strings.Join(lines, "\n")
}

func stringListOption(opts domain.Options, key string) []string {
	raw, ok := opts[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
