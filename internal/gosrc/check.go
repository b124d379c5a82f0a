package gosrc

import (
	"go/ast"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/unbound-force/declint/internal/config"
	"github.com/unbound-force/declint/internal/lint"
	"github.com/unbound-force/declint/internal/loader"
	"github.com/unbound-force/declint/internal/validate"
)

// Options configures a check run.
type Options struct {
	// Config supplies conventions and file filters. Nil means
	// config.DefaultConfig().
	Config *config.Config

	// IncludeUnexported includes unexported declarations in
	// package-level checking (in addition to the config setting).
	IncludeUnexported bool

	// DeclFilter limits checking to a specific declaration name.
	// Empty string means check all declarations.
	DeclFilter string

	// Logger receives modeling-inconsistency reports. Nil means the
	// charmbracelet default logger.
	Logger *charmlog.Logger
}

// Check validates every item in the loaded package and returns the
// collected diagnostics in source order.
func Check(pkg *packages.Package, opts Options) []lint.Diagnostic {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	policy := validate.Policy{
		FunctionName: cfg.FunctionConvention(),
		ParamName:    cfg.ParamConvention(),
		TypeName:     cfg.TypeConvention(),
		FieldName:    cfg.FieldConvention(),
	}

	prov := NewProvider(pkg)
	v := validate.New(prov, prov, validate.Options{
		Policy: &policy,
		Logger: opts.Logger,
	})

	includeUnexported := opts.IncludeUnexported || cfg.Check.IncludeUnexported

	var sink lint.List
	for _, id := range prov.Items() {
		name := prov.ItemName(id)
		if opts.DeclFilter != "" && name != opts.DeclFilter {
			continue
		}
		if opts.DeclFilter == "" && !includeUnexported && !ast.IsExported(name) {
			continue
		}
		if !cfg.IncludeFile(relFile(pkg, prov.ItemFile(id))) {
			continue
		}
		v.ValidateItem(id, &sink)
	}
	return sink.Diagnostics
}

// relFile maps an absolute source path to a module-relative path for
// glob filtering. Outside a module the base name is used.
func relFile(pkg *packages.Package, file string) string {
	if pkg.Module != nil && pkg.Module.Dir != "" {
		if rel, err := filepath.Rel(pkg.Module.Dir, file); err == nil {
			return rel
		}
	}
	return filepath.Base(file)
}

// LoadAndCheck is a convenience function that loads every package
// matching the pattern and runs a check over each with the given
// options.
func LoadAndCheck(pattern string, opts Options) ([]lint.Diagnostic, error) {
	result, err := loader.Load(pattern)
	if err != nil {
		return nil, err
	}
	var diags []lint.Diagnostic
	for _, pkg := range result.Pkgs {
		diags = append(diags, Check(pkg, opts)...)
	}
	return diags, nil
}
