// Package jslint is the public entry point: a Document holds one source
// buffer and re-runs the lex/parse/resolve pipeline from scratch on every
// edit, exposing the resulting diagnostics. See internal/parser and
// internal/resolve for the pipeline itself.
package jslint

import (
	"runtime/debug"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/parser"
	"github.com/arnodel/jslint/internal/resolve"
	"github.com/arnodel/jslint/internal/sourcecode"
)

// Diagnostic is the public diagnostic shape returned by Lint.
type Diagnostic = diagnostic.Diagnostic

// Position is an editor-style (line, UTF-16 character) coordinate, 0-based
// on both axes.
type Position = sourcecode.Position

// Document holds one document's current source, its line index, and the
// AST/diagnostics produced by the most recent Lint call. A Document is not
// safe for concurrent use; spec.md §5 forbids re-entrancy on the same
// document, and callers must serialize access themselves.
type Document struct {
	id  uuid.UUID
	src []byte
	loc *sourcecode.Locator

	program []ast.Stmt
	diags   []diagnostic.Diagnostic
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{id: uuid.New(), loc: sourcecode.NewLocator(nil)}
}

// NewDocumentFromSource creates a document whose initial content is src.
// It returns a sourcecode.Error if src is not valid UTF-8. This is an
// internal error, not a Diagnostic, since invalid encoding isn't a JS
// syntax problem the parser can recover from and keep going past.
func NewDocumentFromSource(src []byte) (*Document, error) {
	if !utf8.Valid(src) {
		return nil, sourcecode.Error{Kind: "invalid_utf8", Message: "document source is not valid UTF-8"}
	}
	d := NewDocument()
	d.src = src
	d.loc.Reset(d.src)
	return d, nil
}

// ID returns the document's session identity, stable for its lifetime,
// useful for correlating this document's diagnostics in a caller's own
// logs when several documents are linted side by side.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// ReplaceText splices text into the document between (startLine,
// startChar) and (endLine, endChar), both in (line, UTF-16 character)
// editor coordinates, against the document's contents as of the previous
// call. Every splice invalidates the previous parse; the next Lint call
// re-runs the full pipeline rather than attempting a partial reparse
// (spec.md §4.6). Passing an end position past the end of an empty
// document's single line, the documented (endLine=1, endChar=0)
// convention, replaces the whole (empty) document, which falls out of
// Locator.Offset's own clamping without any special case here.
func (d *Document) ReplaceText(startLine, startChar, endLine, endChar int32, text string) {
	start := d.loc.Offset(sourcecode.Position{Line: startLine, Character: startChar})
	end := d.loc.Offset(sourcecode.Position{Line: endLine, Character: endChar})
	if end < start {
		start, end = end, start
	}

	next := make([]byte, 0, len(d.src)-int(end-start)+len(text))
	next = append(next, d.src[:start]...)
	next = append(next, text...)
	next = append(next, d.src[end:]...)
	d.src = next
	d.loc.Reset(d.src)
}

// Lint re-parses and semantically resolves the document's current source,
// returning the resulting diagnostics in discovery order (spec.md §4.4/
// §4.7's ordering rules). A panic inside the parser or resolver (a
// programmer error per spec.md §7, never an expected outcome of bad
// input, since both are built to recover from malformed source on their
// own) is caught here, logged at Warn with the panic value and a stack
// trace, and reported to the caller as one best-effort diagnostic rather
// than propagated; Lint never panics and never returns an error value.
func (d *Document) Lint() (result []diagnostic.Diagnostic) {
	diags := diagnostic.NewCollector()
	defer func() {
		if e := recover(); e != nil {
			log.Warn().
				Str("document", d.id.String()).
				Interface("panic", e).
				Str("stack", string(debug.Stack())).
				Msg("recovered panic during lint")
			diags.Error(diagnostic.CodeUnexpectedToken, "internal error while parsing", sourcecode.Range{})
			d.diags = diags.All()
			result = d.diags
		}
	}()

	program := parser.Parse(d.src, diags, d.loc)
	resolve.Resolve(program, diags, d.loc)

	d.program = program
	d.diags = diags.All()
	return d.diags
}
