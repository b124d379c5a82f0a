// Package loader wraps go/packages to load Go packages with full
// type information for declaration checking.
package loader

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode is the minimum set of flags needed for name checking:
// syntax trees plus resolved type information, no dependency bodies.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedModule

// Result holds the loaded packages along with the shared file set.
type Result struct {
	// Pkgs are the loaded packages, in go/packages order. Patterns
	// like "./..." may match more than one.
	Pkgs []*packages.Package

	// Fset is the shared file set for position information.
	Fset *token.FileSet
}

// Load loads the Go packages matching the given import path or file
// pattern. Loading succeeds only when every matched package
// type-checks: a naming check over a broken package would misreport.
func Load(pattern string) (*Result, error) {
	cfg := &packages.Config{
		Mode:  LoadMode,
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading packages %q: %w", pattern, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for pattern %q", pattern)
	}

	var errs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e.Error())
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("packages %q have errors:\n  %s",
			pattern, strings.Join(errs, "\n  "))
	}

	return &Result{
		Pkgs: pkgs,
		Fset: pkgs[0].Fset,
	}, nil
}
