// Package gosrc adapts a type-checked Go package to the declaration
// validator's provider interfaces. Top-level functions, struct types,
// enum-like types (named types with a const block), and interfaces
// become validatable items; the concrete *ast nodes stay owned by the
// loaded package and are only borrowed for text and positions.
package gosrc

import (
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/packages"

	"github.com/unbound-force/declint/internal/validate"
)

// itemID is the provider's opaque item handle: a kind tag plus an
// index into the provider's declaration tables.
type itemID struct {
	kind  validate.ItemKind
	index int
}

// typeItem is one collected type declaration.
type typeItem struct {
	spec     *ast.TypeSpec
	kind     validate.ItemKind
	variants []string // const names for enum-like types
}

// Provider implements validate.Semantics and validate.Syntax over
// one loaded package.
type Provider struct {
	pkg   *packages.Package
	fset  *token.FileSet
	funcs []*ast.FuncDecl
	types []typeItem
}

// NewProvider collects validatable declarations from the package
// syntax. Function literals, methods' bodies, and local declarations
// are out of scope: only top-level items are items.
func NewProvider(pkg *packages.Package) *Provider {
	p := &Provider{pkg: pkg, fset: pkg.Fset}

	constBlocks := collectConstBlocks(pkg)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Name == nil {
					continue
				}
				p.funcs = append(p.funcs, d)
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok || ts.Name == nil {
						continue
					}
					p.types = append(p.types, classifyType(ts, constBlocks))
				}
			}
		}
	}

	return p
}

// classifyType tags a type spec with the item kind the validator
// dispatches on.
func classifyType(ts *ast.TypeSpec, constBlocks map[string][]string) typeItem {
	switch ts.Type.(type) {
	case *ast.StructType:
		return typeItem{spec: ts, kind: validate.ItemStruct}
	case *ast.InterfaceType:
		// Interfaces are the closest Go relative of untagged
		// unions; the validator treats them as a passthrough.
		return typeItem{spec: ts, kind: validate.ItemUnion}
	default:
		if variants, ok := constBlocks[ts.Name.Name]; ok {
			return typeItem{spec: ts, kind: validate.ItemEnum, variants: variants}
		}
		return typeItem{spec: ts, kind: validate.ItemUnknown}
	}
}

// collectConstBlocks maps type names to the const names declared
// with that type, the Go idiom for enums.
func collectConstBlocks(pkg *packages.Package) map[string][]string {
	blocks := make(map[string][]string)
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			// Within a const block the type carries over from the
			// last explicitly typed spec (iota groups).
			current := ""
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				if ident, ok := vs.Type.(*ast.Ident); ok {
					current = ident.Name
				}
				if current == "" {
					continue
				}
				for _, name := range vs.Names {
					if name.Name == "_" {
						continue
					}
					blocks[current] = append(blocks[current], name.Name)
				}
			}
		}
	}
	return blocks
}

// Items enumerates all collected item handles in source order:
// functions first, then types, each in file order.
func (p *Provider) Items() []validate.ItemID {
	ids := make([]validate.ItemID, 0, len(p.funcs)+len(p.types))
	for i := range p.funcs {
		ids = append(ids, itemID{kind: validate.ItemFunction, index: i})
	}
	for i, t := range p.types {
		ids = append(ids, itemID{kind: t.kind, index: i})
	}
	return ids
}

// ItemName returns the declared name of an item, for driver-side
// filtering. Foreign handles yield an empty name.
func (p *Provider) ItemName(id validate.ItemID) string {
	iid, ok := id.(itemID)
	if !ok {
		return ""
	}
	if iid.kind == validate.ItemFunction {
		return p.funcs[iid.index].Name.Name
	}
	return p.types[iid.index].spec.Name.Name
}

// ItemFile returns the source file an item was declared in. Foreign
// handles yield an empty path.
func (p *Provider) ItemFile(id validate.ItemID) string {
	iid, ok := id.(itemID)
	if !ok {
		return ""
	}
	if iid.kind == validate.ItemFunction {
		return p.fset.Position(p.funcs[iid.index].Pos()).Filename
	}
	return p.fset.Position(p.types[iid.index].spec.Pos()).Filename
}

// ItemKind implements validate.Semantics.
func (p *Provider) ItemKind(id validate.ItemID) validate.ItemKind {
	iid, ok := id.(itemID)
	if !ok {
		return validate.ItemUnknown
	}
	return iid.kind
}

// FunctionData implements validate.Semantics.
func (p *Provider) FunctionData(id validate.ItemID) (validate.FunctionData, error) {
	iid, ok := id.(itemID)
	if !ok || iid.kind != validate.ItemFunction || iid.index >= len(p.funcs) {
		return validate.FunctionData{}, fmt.Errorf("item %v is not a function", id)
	}
	fd := p.funcs[iid.index]

	data := validate.FunctionData{Name: fd.Name.Name}
	if fd.Type.Params != nil {
		for _, field := range fd.Type.Params.List {
			if len(field.Names) == 0 {
				// Unnamed parameter: keeps its position, has no
				// name to validate.
				data.ParamNames = append(data.ParamNames, "")
				continue
			}
			for _, name := range field.Names {
				if name.Name == "_" {
					data.ParamNames = append(data.ParamNames, "")
					continue
				}
				data.ParamNames = append(data.ParamNames, name.Name)
			}
		}
	}
	return data, nil
}

// StructData implements validate.Semantics.
func (p *Provider) StructData(id validate.ItemID) (validate.StructData, error) {
	iid, ok := id.(itemID)
	if !ok || iid.kind != validate.ItemStruct || iid.index >= len(p.types) {
		return validate.StructData{}, fmt.Errorf("item %v is not a struct", id)
	}
	ts := p.types[iid.index].spec
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return validate.StructData{}, fmt.Errorf("type %s is not a struct", ts.Name.Name)
	}

	data := validate.StructData{
		Name:  ts.Name.Name,
		Shape: structShape(st),
	}
	if data.Shape != validate.ShapeRecord {
		return data, nil
	}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			// Embedded field: position without a declared name.
			data.FieldNames = append(data.FieldNames, "")
			continue
		}
		for _, name := range field.Names {
			if name.Name == "_" {
				data.FieldNames = append(data.FieldNames, "")
				continue
			}
			data.FieldNames = append(data.FieldNames, name.Name)
		}
	}
	return data, nil
}

// EnumData implements validate.Semantics.
func (p *Provider) EnumData(id validate.ItemID) (validate.EnumData, error) {
	iid, ok := id.(itemID)
	if !ok || iid.kind != validate.ItemEnum || iid.index >= len(p.types) {
		return validate.EnumData{}, fmt.Errorf("item %v is not an enum", id)
	}
	t := p.types[iid.index]
	return validate.EnumData{
		Name:         t.spec.Name.Name,
		VariantNames: t.variants,
	}, nil
}

// structShape classifies a struct literal: named fields make it a
// record, embedded-only fields a tuple analog, no fields a unit.
func structShape(st *ast.StructType) validate.StructShape {
	if st.Fields == nil || len(st.Fields.List) == 0 {
		return validate.ShapeUnit
	}
	for _, field := range st.Fields.List {
		if len(field.Names) > 0 {
			return validate.ShapeRecord
		}
	}
	return validate.ShapeTuple
}

// Decl implements validate.Syntax.
func (p *Provider) Decl(id validate.ItemID) (validate.DeclSyntax, error) {
	iid, ok := id.(itemID)
	if !ok {
		return nil, fmt.Errorf("foreign item handle %v", id)
	}
	if iid.kind == validate.ItemFunction {
		if iid.index >= len(p.funcs) {
			return nil, fmt.Errorf("function item %d out of range", iid.index)
		}
		return &funcSyntax{fset: p.fset, decl: p.funcs[iid.index]}, nil
	}
	if iid.index >= len(p.types) {
		return nil, fmt.Errorf("type item %d out of range", iid.index)
	}
	return &typeSyntax{fset: p.fset, spec: p.types[iid.index].spec}, nil
}
