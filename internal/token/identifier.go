package token

import "github.com/arnodel/jslint/internal/sourcecode"

// Identifier is a source range whose bytes form a valid JS identifier once
// unicode escapes (`\uXXXX`, `\u{...}`) are decoded. Name holds the decoded
// form; equality between identifiers must compare Name, not the raw source
// bytes, since `a` and `a` name the same binding.
type Identifier struct {
	Span sourcecode.Span
	Name string
}

func (id Identifier) Equal(other Identifier) bool {
	return id.Name == other.Name
}
