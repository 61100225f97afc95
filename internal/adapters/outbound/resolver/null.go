package resolver

import "github.com/polylint/polylint/internal/domain"

// Null is the resolver for kinds with no shared config concept (plain
// syntax checks). It never touches the filesystem and never fails.
type Null struct{}

func NewNull() *Null { return &Null{} }

func (*Null) Read(string) (domain.Options, error) {
	return domain.Options{}, nil
}
