// Package stats aggregates check diagnostics into rename-effort
// statistics: how many identifiers of each kind are non-conformant,
// and how complex the flagged functions are. Renaming a
// heavily-branched function carries a larger review burden, so
// flagged functions are ranked by cyclomatic complexity.
package stats

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fzipp/gocyclo"

	"github.com/unbound-force/declint/internal/lint"
)

// FunctionRename describes one flagged function together with its
// cyclomatic complexity.
type FunctionRename struct {
	// Function is the flagged function name.
	Function string `json:"function"`

	// Suggested is the conformant spelling.
	Suggested string `json:"suggested"`

	// File is the source file path.
	File string `json:"file"`

	// Line is the line number of the flagged identifier.
	Line int `json:"line"`

	// Complexity is the function's cyclomatic complexity, or zero
	// when no matching function was measured.
	Complexity int `json:"complexity"`
}

// Summary holds the aggregate counts.
type Summary struct {
	// TotalDiagnostics is the number of naming findings.
	TotalDiagnostics int `json:"total_diagnostics"`

	// KindCounts breaks the findings down by identifier kind.
	KindCounts map[string]int `json:"kind_counts"`

	// AvgComplexity is the mean complexity of flagged functions.
	AvgComplexity float64 `json:"avg_complexity"`

	// MaxComplexity is the highest complexity among flagged
	// functions.
	MaxComplexity int `json:"max_complexity"`
}

// Report is the complete stats output.
type Report struct {
	// Functions lists flagged functions, most complex first.
	Functions []FunctionRename `json:"functions"`

	// Summary holds the aggregate counts.
	Summary Summary `json:"summary"`
}

// testFileRegexp excludes test files from complexity measurement.
var testFileRegexp = regexp.MustCompile(`_test\.go$`)

// Analyze joins diagnostics with cyclomatic complexity measured over
// the given directories and builds the stats report.
func Analyze(dirs []string, diags []lint.Diagnostic) *Report {
	complexity := measureComplexity(dirs)

	summary := Summary{
		TotalDiagnostics: len(diags),
		KindCounts:       make(map[string]int),
	}

	var functions []FunctionRename
	for _, d := range diags {
		summary.KindCounts[string(d.Kind)]++
		if d.Kind != lint.KindFunction {
			continue
		}
		line := locationLine(d.Location)
		functions = append(functions, FunctionRename{
			Function:   d.IdentText,
			Suggested:  d.SuggestedText,
			File:       d.File,
			Line:       line,
			Complexity: lookupComplexity(complexity, d.File, line, d.IdentText),
		})
	}

	// Most complex renames first; ties by name for stable output.
	sort.Slice(functions, func(i, j int) bool {
		if functions[i].Complexity != functions[j].Complexity {
			return functions[i].Complexity > functions[j].Complexity
		}
		return functions[i].Function < functions[j].Function
	})

	var total int
	for _, f := range functions {
		total += f.Complexity
		if f.Complexity > summary.MaxComplexity {
			summary.MaxComplexity = f.Complexity
		}
	}
	if len(functions) > 0 {
		summary.AvgComplexity = float64(total) / float64(len(functions))
	}

	return &Report{Functions: functions, Summary: summary}
}

// complexityKey identifies a measured function by file and line.
type complexityKey struct {
	file string
	line int
}

// complexityIndex holds the measured stats, indexed by position with
// a name-based fallback.
type complexityIndex struct {
	byPos  map[complexityKey]int
	byName map[string]int
}

// measureComplexity runs gocyclo over the directories and indexes
// the result.
func measureComplexity(dirs []string) complexityIndex {
	idx := complexityIndex{
		byPos:  make(map[complexityKey]int),
		byName: make(map[string]int),
	}
	for _, stat := range gocyclo.Analyze(dirs, testFileRegexp) {
		idx.byPos[complexityKey{file: stat.Pos.Filename, line: stat.Pos.Line}] = stat.Complexity
		idx.byName[stat.FuncName] = stat.Complexity
	}
	return idx
}

// lookupComplexity resolves the complexity for a flagged function.
// The position match anchors on the declaration line (the name token
// sits on the same line as the func keyword); method names measured
// as "(recv).Name" fall back to a suffix match.
func lookupComplexity(idx complexityIndex, file string, line int, name string) int {
	if c, ok := idx.byPos[complexityKey{file: file, line: line}]; ok {
		return c
	}
	if c, ok := idx.byName[name]; ok {
		return c
	}
	for measured, c := range idx.byName {
		if strings.HasSuffix(measured, "."+name) {
			return c
		}
	}
	return 0
}

// locationLine extracts the line number from a file:line:col
// position string. Returns 0 when the location doesn't parse.
func locationLine(location string) int {
	parts := strings.Split(location, ":")
	if len(parts) < 3 {
		return 0
	}
	line, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0
	}
	return line
}
