package application

import (
	"errors"
	"os"

	"github.com/polylint/polylint/internal/domain"
)

// FileBatchLinter composes a content validator with a config resolver:
// expand globs, resolve config once, read and validate each file in match
// order. One bad file never aborts the batch.
type FileBatchLinter struct {
	kind      domain.Kind
	globs     domain.GlobExpander
	resolver  domain.ConfigResolver
	validator domain.ContentValidator
	log       domain.Logger
}

func NewFileBatchLinter(
	kind domain.Kind,
	globs domain.GlobExpander,
	resolver domain.ConfigResolver,
	validator domain.ContentValidator,
	log domain.Logger,
) *FileBatchLinter {
	return &FileBatchLinter{
		kind:      kind,
		globs:     globs,
		resolver:  resolver,
		validator: validator,
		log:       log,
	}
}

// Lint validates every file matched by patterns against the kind's resolved
// options. An empty match set succeeds without touching the resolver; a
// config resolution failure fails the whole batch before any file is read.
func (b *FileBatchLinter) Lint(patterns []string, configPath string) *domain.LintResult {
	files := b.globs.Expand(patterns)
	if len(files) == 0 {
		return domain.Pass(b.kind, 0)
	}

	b.log.Infof("%s: checking %d file(s)", b.kind, len(files))

	opts, err := b.resolver.Read(configPath)
	if err != nil {
		b.log.Errorf("%s: %v", b.kind, err)
		return domain.Fail(b.kind, 0, domain.Diagnostic{
			File:    configPath,
			Message: err.Error(),
		})
	}

	var diags []domain.Diagnostic
	for _, file := range files {
		if d, ok := b.checkFile(file, opts); !ok {
			b.log.Errorf("%s: %s: %s", b.kind, d.File, d.Message)
			diags = append(diags, d)
		}
	}

	if len(diags) > 0 {
		return domain.Fail(b.kind, len(files), diags...)
	}
	return domain.Pass(b.kind, len(files))
}

// checkFile reads and validates a single file. Read failures and content
// failures are reported identically.
func (b *FileBatchLinter) checkFile(file string, opts domain.Options) (domain.Diagnostic, bool) {
	content, err := os.ReadFile(file)
	if err != nil {
		readErr := &domain.FileReadError{Path: file, Err: err}
		return domain.Diagnostic{File: file, Message: readErr.Error()}, false
	}

	if err := b.validator.Validate(content, opts); err != nil {
		d := domain.Diagnostic{File: file, Message: err.Error()}
		var invalid *domain.ContentInvalidError
		if errors.As(err, &invalid) {
			d.Line = invalid.Line
			d.Message = invalid.Detail
		}
		return d, false
	}

	return domain.Diagnostic{}, true
}
