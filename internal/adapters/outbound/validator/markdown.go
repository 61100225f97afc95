package validator

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/polylint/polylint/internal/domain"
)

// Markdown lints a document's goldmark AST: links must have destinations
// unless allowed, and a top-level heading may be required via options.
//
// Options:
//   - "requireTopLevelHeading" (bool): first block must be an h1
//   - "allowEmptyLinks" (bool): permit links with empty destinations
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New()}
}

func (m *Markdown) Validate(content []byte, opts domain.Options) error {
	doc := m.md.Parser().Parse(text.NewReader(content))

	if boolOption(opts, "requireTopLevelHeading") {
		first := doc.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return &domain.ContentInvalidError{Detail: "document must start with a top-level heading"}
		}
	}

	if boolOption(opts, "allowEmptyLinks") {
		return nil
	}

	var invalid *domain.ContentInvalidError
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if invalid != nil {
			return ast.WalkStop, nil
		}
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Link:
			if len(node.Destination) == 0 {
				invalid = &domain.ContentInvalidError{Detail: "link with empty destination"}
			}
		case *ast.Image:
			if len(node.Destination) == 0 {
				invalid = &domain.ContentInvalidError{Detail: "image with empty source"}
			}
		case *ast.Heading:
			// heading level jumps (h1 -> h3) read as structure mistakes
			if prev := previousHeadingLevel(node); prev > 0 && node.Level > prev+1 {
				invalid = &domain.ContentInvalidError{
					Detail: fmt.Sprintf("heading level jumps from h%d to h%d", prev, node.Level),
				}
			}
		}
		return ast.WalkContinue, nil
	})

	if invalid != nil {
		return invalid
	}
	return nil
}

// previousHeadingLevel finds the level of the closest preceding sibling
// heading, or 0 when the node is the document's first heading.
func previousHeadingLevel(h *ast.Heading) int {
	for n := h.PreviousSibling(); n != nil; n = n.PreviousSibling() {
		if prev, ok := n.(*ast.Heading); ok {
			return prev.Level
		}
	}
	return 0
}
