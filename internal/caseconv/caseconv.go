// Package caseconv implements the pure case classification and
// conversion engine: given an identifier and a target naming
// convention, it either confirms the identifier conforms or derives
// the conformant rewrite.
package caseconv

import (
	"strings"
	"unicode"

	"github.com/unbound-force/declint/internal/lint"
)

// Suggest checks name against the target convention. It returns
// ("", false) when the name already conforms, and (rewritten, true)
// otherwise.
//
// Word boundaries are derived left to right:
//   - an underscore is always a boundary and is dropped, except that
//     runs of leading/trailing underscores are preserved verbatim
//     around the converted core (codebases use them intentionally,
//     e.g. `_unused`);
//   - a transition from lowercase or digit to uppercase starts a new
//     word (`fooBar` -> `foo`, `Bar`);
//   - an uppercase run followed by a lowercase letter splits before
//     the run's last letter (`HTTPServer` -> `HTTP`, `Server`);
//   - digits attach to the preceding word.
//
// Suggest is pure and total: it never fails, and the same input
// always yields the same output. A name whose underscore-stripped
// core is empty is treated as conformant.
func Suggest(name string, conv lint.Convention) (string, bool) {
	core, lead, trail := stripUnderscores(name)
	if core == "" {
		return "", false
	}

	rebuilt := reassemble(core, conv)
	// Camel reassembly can merge single-letter words into an
	// uppercase run that re-splits differently (a_b -> AB -> Ab).
	// Iterate until the reassembly is a fixed point, so a suggested
	// name is never flagged again.
	for {
		next := reassemble(rebuilt, conv)
		if next == rebuilt {
			break
		}
		rebuilt = next
	}

	suggestion := lead + rebuilt + trail
	if suggestion == name {
		return "", false
	}
	return suggestion, true
}

// reassemble splits a core into words and rejoins them under the
// target convention.
func reassemble(core string, conv lint.Convention) string {
	words := splitWords(core)
	if conv == lint.UpperCamelCase {
		return joinCamel(words)
	}
	return joinSnake(words)
}

// stripUnderscores splits name into its leading underscore run, the
// core, and its trailing underscore run.
func stripUnderscores(name string) (core, lead, trail string) {
	core = strings.TrimLeft(name, "_")
	lead = name[:len(name)-len(core)]
	if core == "" {
		return "", lead, ""
	}
	trimmed := strings.TrimRight(core, "_")
	trail = core[len(trimmed):]
	return trimmed, lead, trail
}

// splitWords decomposes an underscore-free-at-the-edges identifier
// core into its constituent words. Interior underscores are
// boundaries and are dropped.
func splitWords(core string) []string {
	var words []string
	for _, chunk := range strings.Split(core, "_") {
		if chunk == "" {
			continue
		}
		words = append(words, splitCaseWords(chunk)...)
	}
	return words
}

// splitCaseWords splits one underscore-free chunk on case
// transitions.
func splitCaseWords(chunk string) []string {
	rs := []rune(chunk)
	var words []string
	start := 0
	for i := 1; i < len(rs); i++ {
		if caseBoundary(rs, i) {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	return append(words, string(rs[start:]))
}

// caseBoundary reports whether a new word starts at index i.
func caseBoundary(rs []rune, i int) bool {
	if !unicode.IsUpper(rs[i]) {
		return false
	}
	prev := rs[i-1]
	// Lowercase or digit followed by uppercase: fooBar, foo2Bar.
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	// Uppercase run followed by lowercase: the run's last letter
	// starts the next word (HTTPServer -> HTTP, Server).
	if unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
		return true
	}
	return false
}

// joinSnake reassembles words as lower_snake_case.
func joinSnake(words []string) string {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return strings.Join(lowered, "_")
}

// joinCamel reassembles words as UpperCamelCase.
func joinCamel(words []string) string {
	var sb strings.Builder
	for _, w := range words {
		rs := []rune(strings.ToLower(w))
		rs[0] = unicode.ToUpper(rs[0])
		sb.WriteString(string(rs))
	}
	return sb.String()
}
