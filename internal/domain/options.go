package domain

// Kind identifies one linter slot.
type Kind string

const (
	KindES       Kind = "es"
	KindTS       Kind = "ts"
	KindSass     Kind = "sass"
	KindHTML     Kind = "html"
	KindJSON     Kind = "json"
	KindYAML     Kind = "yaml"
	KindMarkdown Kind = "markdown"
	KindSpelling Kind = "spelling"
)

// KindOrder is the fixed sequence in which the orchestrator visits kinds.
// Order only affects output readability, not the aggregated result.
var KindOrder = []Kind{
	KindES, KindTS, KindSass, KindHTML,
	KindJSON, KindYAML, KindMarkdown, KindSpelling,
}

// RunOptions maps each linter kind to its glob patterns and an optional
// explicit config path override. Absent kinds are skipped entirely.
type RunOptions struct {
	ESFiles   []string `json:"esFiles,omitempty"   yaml:"esFiles"   toml:"esFiles"`
	ESConfig  string   `json:"esConfig,omitempty"  yaml:"esConfig"  toml:"esConfig"`
	TSFiles   []string `json:"tsFiles,omitempty"   yaml:"tsFiles"   toml:"tsFiles"`
	TSConfig  string   `json:"tsConfig,omitempty"  yaml:"tsConfig"  toml:"tsConfig"`
	SassFiles []string `json:"sassFiles,omitempty" yaml:"sassFiles" toml:"sassFiles"`
	// SassConfig points at a style rule file shared by all sass/css globs.
	SassConfig     string   `json:"sassConfig,omitempty"     yaml:"sassConfig"     toml:"sassConfig"`
	HTMLFiles      []string `json:"htmlFiles,omitempty"      yaml:"htmlFiles"      toml:"htmlFiles"`
	HTMLConfig     string   `json:"htmlConfig,omitempty"     yaml:"htmlConfig"     toml:"htmlConfig"`
	JSONFiles      []string `json:"jsonFiles,omitempty"      yaml:"jsonFiles"      toml:"jsonFiles"`
	YAMLFiles      []string `json:"yamlFiles,omitempty"      yaml:"yamlFiles"      toml:"yamlFiles"`
	MarkdownFiles  []string `json:"markdownFiles,omitempty"  yaml:"markdownFiles"  toml:"markdownFiles"`
	MarkdownConfig string   `json:"markdownConfig,omitempty" yaml:"markdownConfig" toml:"markdownConfig"`
	SpellingFiles  []string `json:"spellingFiles,omitempty"  yaml:"spellingFiles"  toml:"spellingFiles"`
	SpellingConfig string   `json:"spellingConfig,omitempty" yaml:"spellingConfig" toml:"spellingConfig"`
}

// Globs returns the glob patterns configured for a kind. A nil or empty
// result means the kind is skipped.
func (o RunOptions) Globs(kind Kind) []string {
	switch kind {
	case KindES:
		return o.ESFiles
	case KindTS:
		return o.TSFiles
	case KindSass:
		return o.SassFiles
	case KindHTML:
		return o.HTMLFiles
	case KindJSON:
		return o.JSONFiles
	case KindYAML:
		return o.YAMLFiles
	case KindMarkdown:
		return o.MarkdownFiles
	case KindSpelling:
		return o.SpellingFiles
	}
	return nil
}

// ConfigPath returns the explicit per-kind config override, or "" when the
// kind should fall back to its default config location.
func (o RunOptions) ConfigPath(kind Kind) string {
	switch kind {
	case KindES:
		return o.ESConfig
	case KindTS:
		return o.TSConfig
	case KindSass:
		return o.SassConfig
	case KindHTML:
		return o.HTMLConfig
	case KindMarkdown:
		return o.MarkdownConfig
	case KindSpelling:
		return o.SpellingConfig
	}
	return ""
}

// IsEmpty reports whether no kind has any glob patterns configured.
func (o RunOptions) IsEmpty() bool {
	for _, k := range KindOrder {
		if len(o.Globs(k)) > 0 {
			return false
		}
	}
	return true
}
