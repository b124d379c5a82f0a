package gosrc

import (
	"go/ast"
	"go/token"

	"github.com/unbound-force/declint/internal/validate"
)

// identNode wraps an *ast.Ident as a validate.Node. The underlying
// ident stays owned by the loaded syntax tree.
type identNode struct {
	fset  *token.FileSet
	ident *ast.Ident
}

func (n *identNode) Text() string { return n.ident.Name }

func (n *identNode) Location() string {
	return n.fset.Position(n.ident.Pos()).String()
}

// funcSyntax exposes a *ast.FuncDecl as a concrete declaration.
type funcSyntax struct {
	fset *token.FileSet
	decl *ast.FuncDecl
}

func (s *funcSyntax) File() string {
	return s.fset.Position(s.decl.Pos()).Filename
}

func (s *funcSyntax) Name() validate.Node {
	if s.decl.Name == nil {
		return nil
	}
	return &identNode{fset: s.fset, ident: s.decl.Name}
}

func (s *funcSyntax) ParamList() ([]validate.Entry, bool) {
	if s.decl.Type == nil || s.decl.Type.Params == nil {
		return nil, false
	}
	return fieldEntries(s.fset, s.decl.Type.Params), true
}

func (s *funcSyntax) FieldList() ([]validate.Entry, validate.StructShape, bool) {
	return nil, validate.ShapeUnit, false
}

// typeSyntax exposes a *ast.TypeSpec as a concrete declaration.
type typeSyntax struct {
	fset *token.FileSet
	spec *ast.TypeSpec
}

func (s *typeSyntax) File() string {
	return s.fset.Position(s.spec.Pos()).Filename
}

func (s *typeSyntax) Name() validate.Node {
	if s.spec.Name == nil {
		return nil
	}
	return &identNode{fset: s.fset, ident: s.spec.Name}
}

func (s *typeSyntax) ParamList() ([]validate.Entry, bool) {
	return nil, false
}

func (s *typeSyntax) FieldList() ([]validate.Entry, validate.StructShape, bool) {
	st, ok := s.spec.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return nil, validate.ShapeUnit, false
	}
	return fieldEntries(s.fset, st.Fields), structShape(st), true
}

// fieldEntries flattens an *ast.FieldList into ordered entries, one
// per declared name. Grouped declarations (`a, b int`) contribute one
// entry per name; unnamed fields contribute one nameless entry that
// keeps its position in the walk.
func fieldEntries(fset *token.FileSet, list *ast.FieldList) []validate.Entry {
	var entries []validate.Entry
	for _, field := range list.List {
		if len(field.Names) == 0 {
			entries = append(entries, validate.Entry{})
			continue
		}
		for _, name := range field.Names {
			entries = append(entries, validate.Entry{
				Name: &identNode{fset: fset, ident: name},
			})
		}
	}
	return entries
}
