// Package diagnostic holds the structured-error model shared by the lexer,
// parser, and variable-resolution visitor, and the append-only collector
// they all push into.
package diagnostic

import "github.com/arnodel/jslint/internal/sourcecode"

type Severity int

const (
	Error Severity = iota + 1
	Warning
)

// Stable diagnostic codes (spec.md §6). New codes may be added; existing
// ones never change meaning.
const (
	CodeInvalidAssignmentTarget = "E001"
	CodeMissingOperand          = "E019"
	CodeUnmatchedParenthesis    = "E022"
	CodeUndeclaredVariable      = "E030" // warning
	CodeConstAssignment         = "E033"
	CodeRedeclaration           = "E034"
	CodeAwaitOutsideAsync       = "E038"
	CodeWithStatement           = "E040" // warning, see SPEC_FULL.md §11

	CodeUnclosedBlockComment   = "E050"
	CodeUnclosedStringLiteral  = "E051"
	CodeUnclosedTemplate       = "E052"
	CodeUnclosedRegexpLiteral  = "E053"
	CodeInvalidHexEscape       = "E054"
	CodeInvalidUnicodeEscape   = "E055"
	CodeMissingSemicolon       = "E056"
	CodeUnexpectedToken        = "E057"
)

// Diagnostic is one structured finding: a stable code, a severity, a
// human-readable message, and the source range it applies to.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
	Range    sourcecode.Range
}

// Collector is an append-only diagnostic sink. Ordering is the order
// diagnostics are discovered: left-to-right, outer-to-inner, with the
// single exception documented in spec.md §4.5/§4.7 (innermost unmatched
// paren first).
type Collector struct {
	diagnostics []Diagnostic
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

func (c *Collector) Error(code, message string, r sourcecode.Range) {
	c.Add(Diagnostic{Code: code, Severity: Error, Message: message, Range: r})
}

func (c *Collector) Warning(code, message string, r sourcecode.Range) {
	c.Add(Diagnostic{Code: code, Severity: Warning, Message: message, Range: r})
}

// All returns the diagnostics collected so far, in discovery order. The
// returned slice must not be retained across the next parse.
func (c *Collector) All() []Diagnostic {
	return c.diagnostics
}

func (c *Collector) Len() int {
	return len(c.diagnostics)
}
