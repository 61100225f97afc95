package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	appconfig "github.com/polylint/polylint/internal/adapters/outbound/config"
	"github.com/polylint/polylint/internal/adapters/outbound/console"
	"github.com/polylint/polylint/internal/adapters/outbound/globber"
	"github.com/polylint/polylint/internal/adapters/outbound/linter"
	"github.com/polylint/polylint/internal/adapters/outbound/resolver"
	"github.com/polylint/polylint/internal/adapters/outbound/validator"
	"github.com/polylint/polylint/internal/application"
	"github.com/polylint/polylint/internal/domain"
)

// registerTools registers all polylint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. polylint_run
	s.AddTool(
		mcplib.NewTool("polylint_run",
			mcplib.WithDescription("Run every configured linter for the project and return the aggregated report as JSON"),
			mcplib.WithString("config",
				mcplib.Description("Optional explicit config file path; conventional locations are searched when omitted"),
			),
		),
		handleRun(projectPath),
	)

	// 2. polylint_check_file
	s.AddTool(
		mcplib.NewTool("polylint_check_file",
			mcplib.WithDescription("Lint a single file with the linter kind matching its extension"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file to lint, relative to the project"),
			),
		),
		handleCheckFile(projectPath),
	)
}

func newService(projectPath string) *application.LintService {
	log := console.NewQuiet(io.Discard)
	globs := globber.New(projectPath)

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

func handleRun(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		configPath := request.GetString("config", "")

		svc := newService(projectPath)
		report, _ := svc.Run(appconfig.New(), projectPath, configPath)
		return jsonResult(report)
	}
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newService(projectPath)
		result, err := svc.LintFile(file)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a text result flagged as an error.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
