package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polylint/polylint/internal/adapters/outbound/tui"
	"github.com/polylint/polylint/internal/domain"
)

func TestRenderReport_Pass(t *testing.T) {
	report := &domain.RunReport{
		Passed: true,
		Results: []*domain.LintResult{
			domain.Pass(domain.KindJSON, 4),
			domain.Pass(domain.KindYAML, 2),
		},
	}

	out := tui.RenderReport(report)

	assert.Contains(t, out, "polylint")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "json")
	assert.Contains(t, out, "4 file(s)")
}

func TestRenderReport_FailListsDiagnostics(t *testing.T) {
	report := &domain.RunReport{
		Passed: false,
		Results: []*domain.LintResult{
			domain.Fail(domain.KindJSON, 2, domain.Diagnostic{
				File:    "bad.json",
				Line:    3,
				Message: "invalid character",
			}),
		},
	}

	out := tui.RenderReport(report)

	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "bad.json:3")
	assert.Contains(t, out, "invalid character")
}

func TestRenderReport_EmptyRun(t *testing.T) {
	out := tui.RenderReport(&domain.RunReport{Passed: true})

	assert.Contains(t, out, "0 kind(s)")
	assert.Contains(t, out, "PASS")
}
