package linter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/polylint/polylint/internal/domain"
)

// Style lints stylesheet sources (css/scss) at the token level with the
// tdewolff css lexer: balanced braces, brackets, and parentheses, no bad
// strings or urls, plus configurable banned declarations. It reads files
// itself rather than going through the file-batch engine.
//
// Options:
//   - "bannedDeclarations" ([]string): property names that fail the file
//   - "allowImportant" (bool): permit !important markers
type Style struct {
	kind     domain.Kind
	globs    domain.GlobExpander
	resolver domain.ConfigResolver
	log      domain.Logger
}

func NewStyle(kind domain.Kind, globs domain.GlobExpander, resolver domain.ConfigResolver, log domain.Logger) *Style {
	return &Style{kind: kind, globs: globs, resolver: resolver, log: log}
}

func (l *Style) Lint(patterns []string, configPath string) *domain.LintResult {
	files := l.globs.Expand(patterns)
	if len(files) == 0 {
		return domain.Pass(l.kind, 0)
	}

	l.log.Infof("%s: checking %d file(s)", l.kind, len(files))

	opts, err := l.resolver.Read(configPath)
	if err != nil {
		l.log.Errorf("%s: %v", l.kind, err)
		return domain.Fail(l.kind, 0, domain.Diagnostic{File: configPath, Message: err.Error()})
	}

	banned := bannedSet(opts)
	allowImportant, _ := opts["allowImportant"].(bool)

	var diags []domain.Diagnostic
	for _, file := range files {
		if err := l.checkFile(file, banned, allowImportant); err != nil {
			d := domain.Diagnostic{File: file, Message: err.Error()}
			var invalid *domain.ContentInvalidError
			if errors.As(err, &invalid) {
				d.Line = invalid.Line
				d.Message = invalid.Detail
			}
			l.log.Errorf("%s: %s: %s", l.kind, d.File, d.Message)
			diags = append(diags, d)
		}
	}

	if len(diags) > 0 {
		return domain.Fail(l.kind, len(files), diags...)
	}
	return domain.Pass(l.kind, len(files))
}

func (l *Style) checkFile(file string, banned map[string]bool, allowImportant bool) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return &domain.FileReadError{Path: file, Err: err}
	}

	lexer := css.NewLexer(parse.NewInput(bytes.NewReader(content)))
	depth := map[rune]int{'{': 0, '[': 0, '(': 0}
	line := 1

	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if !errors.Is(lexer.Err(), io.EOF) {
				return &domain.ContentInvalidError{Detail: lexer.Err().Error(), Line: line}
			}
			for open, d := range depth {
				if d != 0 {
					return &domain.ContentInvalidError{
						Detail: fmt.Sprintf("unbalanced %q", string(open)),
					}
				}
			}
			return nil

		case css.LeftBraceToken:
			depth['{']++
		case css.RightBraceToken:
			depth['{']--
			if depth['{'] < 0 {
				return &domain.ContentInvalidError{Detail: "unexpected '}'", Line: line}
			}
		case css.LeftBracketToken:
			depth['[']++
		case css.RightBracketToken:
			depth['[']--
			if depth['['] < 0 {
				return &domain.ContentInvalidError{Detail: "unexpected ']'", Line: line}
			}
		case css.LeftParenthesisToken:
			depth['(']++
		case css.RightParenthesisToken:
			depth['(']--
			if depth['('] < 0 {
				return &domain.ContentInvalidError{Detail: "unexpected ')'", Line: line}
			}
		case css.FunctionToken:
			// function tokens include the opening parenthesis
			depth['(']++

		case css.BadStringToken:
			return &domain.ContentInvalidError{Detail: "unterminated string", Line: line}
		case css.BadURLToken:
			return &domain.ContentInvalidError{Detail: "malformed url()", Line: line}

		case css.IdentToken:
			name := strings.ToLower(string(data))
			if banned[name] {
				return &domain.ContentInvalidError{
					Detail: fmt.Sprintf("banned declaration %q", name),
					Line:   line,
				}
			}
			if !allowImportant && name == "important" {
				return &domain.ContentInvalidError{Detail: "!important is not allowed", Line: line}
			}
		}

		line += bytes.Count(data, []byte("\n"))
	}
}

func bannedSet(opts domain.Options) map[string]bool {
	raw, _ := opts["bannedDeclarations"].([]any)
	set := make(map[string]bool, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			set[strings.ToLower(s)] = true
		}
	}
	return set
}
