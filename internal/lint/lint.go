// Package lint defines the naming convention type system, the core
// diagnostic data structures, and stable ID generation for Declint
// results.
package lint

import (
	"crypto/sha256"
	"fmt"
)

// Convention enumerates the naming styles Declint can expect for a
// declared identifier.
type Convention string

// Supported conventions. Additional styles (e.g. SCREAMING_SNAKE_CASE
// for constants) are a natural extension point.
const (
	LowerSnakeCase Convention = "lower_snake_case"
	UpperCamelCase Convention = "UpperCamelCase"
)

// Describe returns a human-oriented name for the convention, suitable
// for diagnostic messages.
func (c Convention) Describe() string {
	switch c {
	case LowerSnakeCase:
		return "snake_case"
	case UpperCamelCase:
		return "CamelCase"
	default:
		return string(c)
	}
}

// IdentKind labels the role of the identifier a diagnostic refers to.
type IdentKind string

// Identifier kind labels.
const (
	KindFunction  IdentKind = "Function"
	KindArgument  IdentKind = "Argument"
	KindStructure IdentKind = "Structure"
	KindField     IdentKind = "Field"
)

// Replacement is the computed suggestion for one non-conformant
// identifier. It is produced by a declaration validator and consumed
// exactly once by the diagnostic emitter; it is never mutated after
// creation.
type Replacement struct {
	// CurrentName is the identifier text as declared.
	CurrentName string

	// SuggestedText is the conformant rewrite of CurrentName.
	SuggestedText string

	// ExpectedCase is the convention the identifier should follow.
	ExpectedCase Convention
}

// Diagnostic is one fully-formed naming finding, ready for rendering.
type Diagnostic struct {
	// ID is a stable identifier for diffing across runs.
	// Generated from sha256(file+kind+ident+location).
	ID string `json:"id"`

	// File is the source file containing the declaration.
	File string `json:"file"`

	// Location is the source position of the flagged identifier
	// (file:line:col).
	Location string `json:"location"`

	// Kind labels the identifier role (Function, Argument,
	// Structure, Field).
	Kind IdentKind `json:"kind"`

	// ExpectedCase is the convention the identifier should follow.
	ExpectedCase Convention `json:"expected_case"`

	// IdentText is the identifier as written in the source.
	IdentText string `json:"ident_text"`

	// SuggestedText is the proposed conformant spelling.
	SuggestedText string `json:"suggested_text"`
}

// Message renders the finding as a one-line human-readable sentence,
// e.g.:
//
//	Function `NonSnakeCaseName` should have a snake_case name, e.g. `non_snake_case_name`
func (d Diagnostic) Message() string {
	return fmt.Sprintf("%s `%s` should have a %s name, e.g. `%s`",
		d.Kind, d.IdentText, d.ExpectedCase.Describe(), d.SuggestedText)
}

// Sink is an append-only channel for diagnostics. Implementations own
// every Diagnostic pushed into them; Declint does not retain pushed
// values.
type Sink interface {
	Push(d Diagnostic)
}

// List is a slice-backed Sink for drivers that collect diagnostics
// in memory.
type List struct {
	Diagnostics []Diagnostic
}

// Push appends d to the list.
func (l *List) Push(d Diagnostic) {
	l.Diagnostics = append(l.Diagnostics, d)
}

// GenerateID produces a stable, deterministic ID for a diagnostic
// based on its context. The ID is a sha256 hash truncated to 8 hex
// characters, prefixed with "nc-".
func GenerateID(file string, kind IdentKind, ident, location string) string {
	input := fmt.Sprintf("%s:%s:%s:%s", file, kind, ident, location)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("nc-%x", hash[:4])
}
