package domain

// Options is a resolved, linter-kind-specific option set. The orchestration
// core never inspects its shape; only the matching validator does.
type Options map[string]any

// Linter is the uniform linting capability. One implementation exists per
// kind; the orchestrator holds them in fixed slots assigned at wiring time.
// Implementations never let an error escape: every failure is folded into
// the returned result.
type Linter interface {
	Lint(patterns []string, configPath string) *LintResult
}

// ContentValidator checks one file's textual content against resolved
// options. A nil return means the content passed.
type ContentValidator interface {
	Validate(content []byte, opts Options) error
}

// ConfigResolver locates and parses a linter kind's option set.
// An empty explicitPath means "use the default location", whatever that
// means for the variant.
type ConfigResolver interface {
	Read(explicitPath string) (Options, error)
}

// ConfigLoader resolves the top-level run configuration for a project.
type ConfigLoader interface {
	Load(projectPath, explicitPath string) (RunOptions, error)
}

// GlobExpander expands glob patterns into concrete file paths. Matches are
// concatenated in pattern order and never deduplicated; an invalid pattern
// contributes nothing, same as a pattern matching no files.
type GlobExpander interface {
	Expand(patterns []string) []string
}

// Logger is the minimal logging capability injected into every component.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}
