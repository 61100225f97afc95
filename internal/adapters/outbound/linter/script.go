// Package linter holds the linters that bypass the file-batch engine
// because their underlying libraries do their own file I/O and aggregation.
package linter

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/polylint/polylint/internal/domain"
)

// Script lints JavaScript and TypeScript sources by handing each matched
// file to esbuild, which reads and parses it itself and reports syntax
// errors with positions.
//
// Options:
//   - "target" (string): language target, e.g. "es2020" or "esnext"
//   - "jsx" (bool): parse .js files with the JSX loader
type Script struct {
	kind     domain.Kind
	globs    domain.GlobExpander
	resolver domain.ConfigResolver
	log      domain.Logger
}

func NewScript(kind domain.Kind, globs domain.GlobExpander, resolver domain.ConfigResolver, log domain.Logger) *Script {
	return &Script{kind: kind, globs: globs, resolver: resolver, log: log}
}

func (l *Script) Lint(patterns []string, configPath string) *domain.LintResult {
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

	// One build per file: esbuild refuses multiple entry points without
	// an output directory, and a parse failure in one file must not hide
	// results for its siblings.
	var diags []domain.Diagnostic
	for _, file := range files {
		result := api.Build(api.BuildOptions{
			EntryPoints: []string{file},
			Bundle:      false,
			Write:       false,
			LogLevel:    api.LogLevelSilent,
			Target:      scriptTarget(opts),
			Loader:      scriptLoaders(opts),
		})
		for _, msg := range result.Errors {
			d := domain.Diagnostic{File: file, Message: msg.Text}
			if msg.Location != nil {
				d.File = msg.Location.File
				d.Line = msg.Location.Line
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

var targets = map[string]api.Target{
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

func scriptLoaders(opts domain.Options) map[string]api.Loader {
	if jsx, _ := opts["jsx"].(bool); jsx {
		return map[string]api.Loader{".js": api.LoaderJSX}
	}
	return nil
}

func scriptTarget(opts domain.Options) api.Target {
	s, _ := opts["target"].(string)
	if t, ok := targets[strings.ToLower(s)]; ok {
		return t
	}
	return api.ESNext
}
