// Package validate checks declared identifiers against naming
// conventions. It walks resolved declaration data supplied by a
// Semantics provider, computes suggested rewrites for non-conformant
// names, realigns each finding with its originating concrete syntax
// node, and emits one diagnostic per located node.
//
// The package validates function names and parameters, struct names
// and record fields. Enum variants and union fields are recognized
// but deliberately left unchecked.
package validate

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/unbound-force/declint/internal/caseconv"
	"github.com/unbound-force/declint/internal/lint"
)

// Policy maps identifier roles to the conventions they must follow.
type Policy struct {
	FunctionName lint.Convention
	ParamName    lint.Convention
	TypeName     lint.Convention
	FieldName    lint.Convention
}

// DefaultPolicy returns the house style: callable bindings and their
// sub-identifiers in snake_case, nominal type names in CamelCase.
func DefaultPolicy() Policy {
	return Policy{
		FunctionName: lint.LowerSnakeCase,
		ParamName:    lint.LowerSnakeCase,
		TypeName:     lint.UpperCamelCase,
		FieldName:    lint.LowerSnakeCase,
	}
}

// Options configures a Validator.
type Options struct {
	// Policy overrides the naming policy. Nil means DefaultPolicy().
	Policy *Policy

	// Logger receives modeling-inconsistency reports. Nil means the
	// charmbracelet default logger.
	Logger *charmlog.Logger
}

// Validator re-checks declared identifiers and pushes diagnostics
// into a sink. A Validator holds no mutable state across calls;
// distinct items may be validated concurrently as long as the
// providers and the sink tolerate it.
type Validator struct {
	sem    Semantics
	syn    Syntax
	policy Policy
	logger *charmlog.Logger
}

// New builds a Validator over the given providers.
func New(sem Semantics, syn Syntax, opts Options) *Validator {
	policy := DefaultPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	logger := opts.Logger
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Validator{sem: sem, syn: syn, policy: policy, logger: logger}
}

// ValidateItem validates one item and pushes any findings into sink.
// Unsupported item kinds are a silent no-op. ValidateItem never
// fails: inconsistencies between the semantic and syntactic views
// are logged and skipped.
func (v *Validator) ValidateItem(id ItemID, sink lint.Sink) {
	switch v.sem.ItemKind(id) {
	case ItemFunction:
		v.validateFunc(id, sink)
	case ItemStruct:
		v.validateStruct(id, sink)
	case ItemEnum:
		v.validateEnum(id)
	default:
		// Unions and unknown items aren't supported by this
		// validator.
	}
}

// validateFunc checks a function's own name and its parameter names.
func (v *Validator) validateFunc(id ItemID, sink lint.Sink) {
	data, err := v.sem.FunctionData(id)
	if err != nil {
		v.logger.Error("loading function data", "err", err)
		return
	}

	// 1. Check the function name.
	var nameRepl *lint.Replacement
	if suggested, ok := caseconv.Suggest(data.Name, v.policy.FunctionName); ok {
		nameRepl = &lint.Replacement{
			CurrentName:   data.Name,
			SuggestedText: suggested,
			ExpectedCase:  v.policy.FunctionName,
		}
	}

	// 2. Check the param names. Anonymous parameters have nothing
	// to rename.
	var paramRepls []lint.Replacement
	for _, param := range data.ParamNames {
		if param == "" {
			continue
		}
		if suggested, ok := caseconv.Suggest(param, v.policy.ParamName); ok {
			paramRepls = append(paramRepls, lint.Replacement{
				CurrentName:   param,
				SuggestedText: suggested,
				ExpectedCase:  v.policy.ParamName,
			})
		}
	}

	// 3. Only now touch the syntax, and only if there is something
	// to report.
	v.emitFunc(id, nameRepl, paramRepls, sink)
}

// emitFunc locates the concrete syntax nodes for the collected
// function replacements and pushes one diagnostic per located node.
func (v *Validator) emitFunc(id ItemID, nameRepl *lint.Replacement, paramRepls []lint.Replacement, sink lint.Sink) {
	if nameRepl == nil && len(paramRepls) == 0 {
		return
	}

	decl, err := v.syn.Decl(id)
	if err != nil {
		v.logger.Error("resolving function declaration syntax", "err", err)
		return
	}

	if nameRepl != nil {
		node := decl.Name()
		if node == nil {
			// A named semantic item whose syntax has no name is a
			// bug upstream, not a user error.
			v.logger.Error("replacement generated for a function without a name node",
				"ident", nameRepl.CurrentName,
				"suggested", nameRepl.SuggestedText,
				"file", decl.File())
			return
		}
		v.push(sink, decl.File(), node, lint.KindFunction, *nameRepl)
	}

	entries, ok := decl.ParamList()
	if !ok {
		if len(paramRepls) > 0 {
			v.logger.Error("replacements generated for a function without a parameter list",
				"count", len(paramRepls),
				"file", decl.File())
		}
		return
	}

	v.emitAligned(sink, decl.File(), entries, paramRepls, lint.KindArgument)
}

// validateStruct checks a struct's own name and, for record-style
// structs, its field names.
func (v *Validator) validateStruct(id ItemID, sink lint.Sink) {
	data, err := v.sem.StructData(id)
	if err != nil {
		v.logger.Error("loading struct data", "err", err)
		return
	}

	// 1. Check the structure name.
	var nameRepl *lint.Replacement
	if suggested, ok := caseconv.Suggest(data.Name, v.policy.TypeName); ok {
		nameRepl = &lint.Replacement{
			CurrentName:   data.Name,
			SuggestedText: suggested,
			ExpectedCase:  v.policy.TypeName,
		}
	}

	// 2. Check the field names. Tuple- and unit-style structs have
	// no named fields to check.
	var fieldRepls []lint.Replacement
	if data.Shape == ShapeRecord {
		for _, field := range data.FieldNames {
			if field == "" {
				continue
			}
			if suggested, ok := caseconv.Suggest(field, v.policy.FieldName); ok {
				fieldRepls = append(fieldRepls, lint.Replacement{
					CurrentName:   field,
					SuggestedText: suggested,
					ExpectedCase:  v.policy.FieldName,
				})
			}
		}
	}

	v.emitStruct(id, nameRepl, fieldRepls, sink)
}

// emitStruct locates the concrete syntax nodes for the collected
// struct replacements and pushes one diagnostic per located node.
func (v *Validator) emitStruct(id ItemID, nameRepl *lint.Replacement, fieldRepls []lint.Replacement, sink lint.Sink) {
	if nameRepl == nil && len(fieldRepls) == 0 {
		return
	}

	decl, err := v.syn.Decl(id)
	if err != nil {
		v.logger.Error("resolving struct declaration syntax", "err", err)
		return
	}

	if nameRepl != nil {
		node := decl.Name()
		if node == nil {
			v.logger.Error("replacement generated for a structure without a name node",
				"ident", nameRepl.CurrentName,
				"suggested", nameRepl.SuggestedText,
				"file", decl.File())
			return
		}
		v.push(sink, decl.File(), node, lint.KindStructure, *nameRepl)
	}

	entries, shape, ok := decl.FieldList()
	if !ok || shape != ShapeRecord {
		if len(fieldRepls) > 0 {
			v.logger.Error("replacements generated for a structure without a record field list",
				"count", len(fieldRepls),
				"file", decl.File())
		}
		return
	}

	v.emitAligned(sink, decl.File(), entries, fieldRepls, lint.KindField)
}

// validateEnum reads the enum's resolved data but performs no
// validation yet. Variant naming policy is an open question upstream;
// keeping the hook inert is preferable to inventing one.
func (v *Validator) validateEnum(id ItemID) {
	if _, err := v.sem.EnumData(id); err != nil {
		v.logger.Error("loading enum data", "err", err)
	}
}

// emitAligned walks the concrete entries forward, once, against the
// ordered replacements. Replacements appear in the same relative
// order as the concrete list, with already-conformant entries
// interleaved; those are skipped. If the cursor is exhausted before a
// replacement matches, the semantic and syntactic views disagree:
// the walk logs and abandons the remaining replacements, since
// alignment past that point would be unreliable.
func (v *Validator) emitAligned(sink lint.Sink, file string, entries []Entry, repls []lint.Replacement, kind lint.IdentKind) {
	cursor := 0
	for _, repl := range repls {
		var node Node
		for cursor < len(entries) {
			entry := entries[cursor]
			cursor++
			if entry.Name != nil && entry.Name.Text() == repl.CurrentName {
				node = entry.Name
				break
			}
		}
		if node == nil {
			v.logger.Error("replacement generated for an identifier not found in the concrete list",
				"kind", kind,
				"ident", repl.CurrentName,
				"suggested", repl.SuggestedText,
				"file", file)
			return
		}
		v.push(sink, file, node, kind, repl)
	}
}

// push builds the diagnostic for one located node and hands it to
// the sink.
func (v *Validator) push(sink lint.Sink, file string, node Node, kind lint.IdentKind, repl lint.Replacement) {
	loc := node.Location()
	sink.Push(lint.Diagnostic{
		ID:            lint.GenerateID(file, kind, repl.CurrentName, loc),
		File:          file,
		Location:      loc,
		Kind:          kind,
		ExpectedCase:  repl.ExpectedCase,
		IdentText:     repl.CurrentName,
		SuggestedText: repl.SuggestedText,
	})
}
