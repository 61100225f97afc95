package application

import (
	"fmt"

	"github.com/polylint/polylint/internal/domain"
)

// Slots holds one linter per kind. Assigned once at wiring time and
// invoked read-only afterwards.
type Slots struct {
	ES       domain.Linter
	TS       domain.Linter
	Sass     domain.Linter
	HTML     domain.Linter
	JSON     domain.Linter
	YAML     domain.Linter
	Markdown domain.Linter
	Spelling domain.Linter
}

func (s Slots) get(kind domain.Kind) domain.Linter {
	switch kind {
	case domain.KindES:
		return s.ES
	case domain.KindTS:
		return s.TS
	case domain.KindSass:
		return s.Sass
	case domain.KindHTML:
		return s.HTML
	case domain.KindJSON:
		return s.JSON
	case domain.KindYAML:
		return s.YAML
	case domain.KindMarkdown:
		return s.Markdown
	case domain.KindSpelling:
		return s.Spelling
	}
	return nil
}

// LintService orchestrates the run: load config -> invoke each configured
// kind in fixed order -> fold results into one pass/fail.
type LintService struct {
	slots Slots
	log   domain.Logger
}

func NewLintService(slots Slots, log domain.Logger) *LintService {
	return &LintService{slots: slots, log: log}
}

// Lint invokes every kind present in opts, strictly sequentially, and
// returns the aggregated report. Kinds with no glob patterns are skipped
// entirely; they neither pass nor fail.
func (s *LintService) Lint(opts domain.RunOptions) *domain.RunReport {
	report := &domain.RunReport{Passed: true}

	for _, kind := range domain.KindOrder {
		patterns := opts.Globs(kind)
		if len(patterns) == 0 {
			continue
		}

		linter := s.slots.get(kind)
		if linter == nil {
			continue // no implementation wired for this kind
		}

		s.log.Infof("linting %s (%d pattern(s))", kind, len(patterns))
		result := linter.Lint(patterns, opts.ConfigPath(kind))
		report.Results = append(report.Results, result)
		report.Passed = report.Passed && result.Passed
	}

	return report
}

// Run loads the top-level configuration and lints everything it names.
// Any escaping failure, config loading included, is reported and converted
// to exit status 1; nothing propagates past this boundary.
func (s *LintService) Run(loader domain.ConfigLoader, projectPath, configPath string) (report *domain.RunReport, status int) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("lint run failed: %v", r)
			report = &domain.RunReport{}
			status = 1
		}
	}()

	opts, err := loader.Load(projectPath, configPath)
	if err != nil {
		s.log.Errorf("loading configuration: %v", err)
		return &domain.RunReport{}, 1
	}

	report = s.Lint(opts)
	if !report.Passed {
		return report, 1
	}
	return report, 0
}

// LintFile runs the kind matching a single file's extension against just
// that file. Used by the MCP surface.
func (s *LintService) LintFile(path string) (*domain.LintResult, error) {
	kind, ok := KindForFile(path)
	if !ok {
		return nil, fmt.Errorf("no linter registered for %q", path)
	}
	linter := s.slots.get(kind)
	if linter == nil {
		return nil, fmt.Errorf("kind %s has no linter wired", kind)
	}
	return linter.Lint([]string{path}, ""), nil
}
