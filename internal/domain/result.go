package domain

// Diagnostic is one user-facing failure with enough context to locate the
// cause: the file (or config path) and the failure detail.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// LintResult is the outcome of one kind's lint invocation.
type LintResult struct {
	Kind         Kind         `json:"kind"`
	Passed       bool         `json:"passed"`
	FilesChecked int          `json:"files_checked"`
	Diagnostics  []Diagnostic `json:"diagnostics,omitempty"`
}

// Pass returns a passing result for a kind.
func Pass(kind Kind, filesChecked int) *LintResult {
	return &LintResult{Kind: kind, Passed: true, FilesChecked: filesChecked}
}

// Fail returns a failing result carrying the given diagnostics.
func Fail(kind Kind, filesChecked int, diags ...Diagnostic) *LintResult {
	return &LintResult{Kind: kind, FilesChecked: filesChecked, Diagnostics: diags}
}

// RunReport aggregates every invoked kind's result for one run.
// Kinds absent from the run options do not appear at all.
type RunReport struct {
	Results []*LintResult `json:"results"`
	Passed  bool          `json:"passed"`
}

// FailedKinds lists the kinds that did not pass, in invocation order.
func (r *RunReport) FailedKinds() []Kind {
	var failed []Kind
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res.Kind)
		}
	}
	return failed
}

// TotalFiles counts every file attempt across all kinds. A file matched by
// overlapping globs is counted once per match.
func (r *RunReport) TotalFiles() int {
	n := 0
	for _, res := range r.Results {
		n += res.FilesChecked
	}
	return n
}
