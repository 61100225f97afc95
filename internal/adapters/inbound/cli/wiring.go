package cli

import (
	"github.com/polylint/polylint/internal/adapters/outbound/globber"
	"github.com/polylint/polylint/internal/adapters/outbound/linter"
	"github.com/polylint/polylint/internal/adapters/outbound/resolver"
	"github.com/polylint/polylint/internal/adapters/outbound/validator"
	"github.com/polylint/polylint/internal/application"
	"github.com/polylint/polylint/internal/domain"
)

// newLintService wires one linter into every kind slot. Slots are assigned
// here once and never mutated mid-run.
func newLintService(baseDir string, log domain.Logger) *application.LintService {
	globs := globber.New(baseDir)

	return application.NewLintService(application.Slots{
		ES:   linter.NewScript(domain.KindES, globs, resolver.NewFile("es.json"), log),
		TS:   linter.NewScript(domain.KindTS, globs, resolver.NewFile("ts.json"), log),
		Sass: linter.NewStyle(domain.KindSass, globs, resolver.NewFile("style.json"), log),
		HTML: application.NewFileBatchLinter(
			domain.KindHTML, globs, resolver.NewFile("html.json"), validator.NewHTML(), log),
		JSON: application.NewFileBatchLinter(
			domain.KindJSON, globs, resolver.NewNull(), validator.NewJSON(), log),
		YAML: application.NewFileBatchLinter(
			domain.KindYAML, globs, resolver.NewNull(), validator.NewYAML(), log),
		Markdown: application.NewFileBatchLinter(
			domain.KindMarkdown, globs, resolver.NewFile("markdown.json"), validator.NewMarkdown(), log),
		Spelling: application.NewFileBatchLinter(
			domain.KindSpelling, globs, resolver.NewFile("spelling.json"), validator.NewSpell(), log),
	}, log)
}
