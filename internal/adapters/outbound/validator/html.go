package validator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/polylint/polylint/internal/domain"
)

// HTML validates tag structure with the x/net/html tokenizer: every opened
// non-void element must be closed, closing tags must match, and a doctype
// may be required via options.
//
// Options:
//   - "requireDoctype" (bool): fail when the document has no doctype
//   - "voidElements" ([]string): elements allowed to stay unclosed
type HTML struct{}

func NewHTML() *HTML { return &HTML{} }

func (*HTML) Validate(content []byte, opts domain.Options) error {
	voids := voidElements(opts)

	z := html.NewTokenizer(bytes.NewReader(content))
	var stack []string
	sawDoctype := false

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return &domain.ContentInvalidError{Detail: z.Err().Error()}
			}
			if len(stack) > 0 {
				return &domain.ContentInvalidError{
					Detail: fmt.Sprintf("unclosed element <%s>", stack[len(stack)-1]),
				}
			}
			if boolOption(opts, "requireDoctype") && !sawDoctype {
				return &domain.ContentInvalidError{Detail: "missing doctype declaration"}
			}
			return nil

		case html.DoctypeToken:
			sawDoctype = true

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			if !voids[tag] {
				stack = append(stack, tag)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			if voids[tag] {
				continue
			}
			if len(stack) == 0 {
				return &domain.ContentInvalidError{
					Detail: fmt.Sprintf("unexpected closing tag </%s>", tag),
				}
			}
			top := stack[len(stack)-1]
			if top != tag {
				return &domain.ContentInvalidError{
					Detail: fmt.Sprintf("mismatched closing tag: expected </%s>, found </%s>", top, tag),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// defaultVoids mirrors the HTML5 void element list.
var defaultVoids = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
}

func voidElements(opts domain.Options) map[string]bool {
	names := defaultVoids
	if raw, ok := opts["voidElements"].([]any); ok {
		names = nil
		for _, v := range raw {
			if s, ok := v.(string); ok {
				names = append(names, strings.ToLower(s))
			}
		}
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func boolOption(opts domain.Options, key string) bool {
	v, _ := opts[key].(bool)
	return v
}
