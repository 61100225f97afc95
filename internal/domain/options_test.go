package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polylint/polylint/internal/domain"
)

func TestRunOptions_GlobsPerKind(t *testing.T) {
	opts := domain.RunOptions{
		ESFiles:   []string{"src/*.js"},
		JSONFiles: []string{"*.json", "conf/*.json"},
	}

	assert.Equal(t, []string{"src/*.js"}, opts.Globs(domain.KindES))
	assert.Equal(t, []string{"*.json", "conf/*.json"}, opts.Globs(domain.KindJSON))
	assert.Nil(t, opts.Globs(domain.KindYAML))
}

func TestRunOptions_ConfigPathFallsBackToEmpty(t *testing.T) {
	opts := domain.RunOptions{HTMLConfig: "conf/html.json"}

	assert.Equal(t, "conf/html.json", opts.ConfigPath(domain.KindHTML))
	assert.Equal(t, "", opts.ConfigPath(domain.KindES))
	// json and yaml have no config concept at all
	assert.Equal(t, "", opts.ConfigPath(domain.KindJSON))
}

func TestRunOptions_IsEmpty(t *testing.T) {
	assert.True(t, domain.RunOptions{}.IsEmpty())
	assert.True(t, domain.RunOptions{ESConfig: "x.json"}.IsEmpty(), "config overrides alone configure nothing")
	assert.False(t, domain.RunOptions{SassFiles: []string{"*.scss"}}.IsEmpty())
}

func TestKindOrderCoversEveryKind(t *testing.T) {
	seen := map[domain.Kind]bool{}
	for _, k := range domain.KindOrder {
		assert.False(t, seen[k], "kind %s appears twice", k)
		seen[k] = true
	}
	assert.Len(t, seen, 8)
}

func TestRunReport_FailedKindsInInvocationOrder(t *testing.T) {
	report := &domain.RunReport{
		Results: []*domain.LintResult{
			domain.Fail(domain.KindES, 1, domain.Diagnostic{File: "a.js", Message: "x"}),
			domain.Pass(domain.KindJSON, 2),
			domain.Fail(domain.KindYAML, 1, domain.Diagnostic{File: "b.yaml", Message: "y"}),
		},
	}

	assert.Equal(t, []domain.Kind{domain.KindES, domain.KindYAML}, report.FailedKinds())
	assert.Equal(t, 4, report.TotalFiles())
}
