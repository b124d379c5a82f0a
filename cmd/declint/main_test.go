package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePkg = "github.com/unbound-force/declint/internal/gosrc/testdata/src/badnames"

// fixtureConfig writes a config with no exclude patterns, so the
// fixture package under testdata/ is not filtered out by the
// default excludes.
func fixtureConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "declint.yml")
	if err := os.WriteFile(path, []byte("check:\n  exclude: []\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// runCheck tests
// ---------------------------------------------------------------------------

func TestRunCheck_InvalidFormat(t *testing.T) {
	err := runCheck(checkParams{
		pkgPath:        "./...",
		format:         "yaml",
		maxDiagnostics: -1,
		stdout:         &bytes.Buffer{},
		stderr:         &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
	if !strings.Contains(err.Error(), `invalid format "yaml"`) {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestRunCheck_HTMLNotImplemented(t *testing.T) {
	err := runCheck(checkParams{
		pkgPath:        fixturePkg,
		format:         "html",
		maxDiagnostics: -1,
		stdout:         &bytes.Buffer{},
		stderr:         &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for html format")
	}
	if !strings.Contains(err.Error(), "not yet implemented") {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestRunCheck_TextFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		pkgPath:        fixturePkg,
		format:         "text",
		configPath:     fixtureConfig(t),
		maxDiagnostics: -1,
		stdout:         &stdout,
		stderr:         &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "NonSnakeCaseName") {
		t.Errorf("expected output to contain 'NonSnakeCaseName', got:\n%s", out)
	}
	if !strings.Contains(out, "non_snake_case_name") {
		t.Errorf("expected output to contain suggestion 'non_snake_case_name', got:\n%s", out)
	}
}

func TestRunCheck_JSONFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		pkgPath:        fixturePkg,
		format:         "json",
		configPath:     fixtureConfig(t),
		maxDiagnostics: -1,
		stdout:         &stdout,
		stderr:         &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		t.Errorf("output is not valid JSON: %v\noutput:\n%s", err, stdout.String())
	}
	if _, ok := parsed["diagnostics"]; !ok {
		t.Errorf("JSON output missing 'diagnostics' key")
	}
}

func TestRunCheck_DeclFilter(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		pkgPath:        fixturePkg,
		format:         "text",
		function:       "NonSnakeCaseName",
		configPath:     fixtureConfig(t),
		maxDiagnostics: -1,
		stdout:         &stdout,
		stderr:         &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "NonSnakeCaseName") {
		t.Errorf("expected output to contain 'NonSnakeCaseName', got:\n%s", out)
	}
	if strings.Contains(out, "SomeField") {
		t.Errorf("declaration filter leaked other diagnostics:\n%s", out)
	}
}

func TestRunCheck_IncludeUnexported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		pkgPath:           fixturePkg,
		format:            "text",
		configPath:        fixtureConfig(t),
		includeUnexported: true,
		maxDiagnostics:    -1,
		stdout:            &stdout,
		stderr:            &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "non_camel_case_name") {
		t.Errorf("expected unexported type diagnostic, got:\n%s", out)
	}
}

func TestRunCheck_BadPackage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		pkgPath:        "github.com/unbound-force/declint/nonexistent/package",
		format:         "text",
		maxDiagnostics: -1,
		stdout:         &stdout,
		stderr:         &stderr,
	})
	if err == nil {
		t.Fatal("expected error for non-existent package")
	}
}

func TestRunCheck_ConfigNotFound(t *testing.T) {
	err := runCheck(checkParams{
		pkgPath:        fixturePkg,
		format:         "text",
		configPath:     "does-not-exist.yml",
		maxDiagnostics: -1,
		stdout:         &bytes.Buffer{},
		stderr:         &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "does-not-exist.yml") {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestRunCheck_MaxDiagnosticsExceeded(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		pkgPath:        fixturePkg,
		format:         "text",
		configPath:     fixtureConfig(t),
		maxDiagnostics: 0,
		stdout:         &stdout,
		stderr:         &stderr,
	})
	if err == nil {
		t.Fatal("expected error when diagnostics exceed maximum")
	}
	if !strings.Contains(err.Error(), "exceed maximum 0") {
		t.Errorf("unexpected error message: %s", err)
	}
	if !strings.Contains(stderr.String(), "(FAIL)") {
		t.Errorf("expected FAIL summary on stderr, got: %q", stderr.String())
	}
}

func TestRunCheck_MaxDiagnosticsPass(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCheck(checkParams{
		pkgPath:        fixturePkg,
		format:         "text",
		configPath:     fixtureConfig(t),
		maxDiagnostics: 1000,
		stdout:         &stdout,
		stderr:         &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr.String(), "(PASS)") {
		t.Errorf("expected PASS summary on stderr, got: %q", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// printCISummary tests
// ---------------------------------------------------------------------------

func TestPrintCISummary_NoThreshold(t *testing.T) {
	var buf bytes.Buffer
	printCISummary(&buf, 5, -1)
	if buf.Len() != 0 {
		t.Errorf("expected no output when threshold is unset, got: %q", buf.String())
	}
}

func TestPrintCISummary_Pass(t *testing.T) {
	var buf bytes.Buffer
	printCISummary(&buf, 3, 5)
	if !strings.Contains(buf.String(), "diagnostics: 3/5 (PASS)") {
		t.Errorf("expected PASS summary, got: %q", buf.String())
	}
}

func TestPrintCISummary_Fail(t *testing.T) {
	var buf bytes.Buffer
	printCISummary(&buf, 10, 5)
	if !strings.Contains(buf.String(), "diagnostics: 10/5 (FAIL)") {
		t.Errorf("expected FAIL summary, got: %q", buf.String())
	}
}

func TestPrintCISummary_ZeroMax(t *testing.T) {
	// --max-diagnostics 0 means any finding fails.
	var buf bytes.Buffer
	printCISummary(&buf, 0, 0)
	if !strings.Contains(buf.String(), "diagnostics: 0/0 (PASS)") {
		t.Errorf("expected PASS summary at zero, got: %q", buf.String())
	}
}

// ---------------------------------------------------------------------------
// checkCIThreshold tests
// ---------------------------------------------------------------------------

func TestCheckCIThreshold_NoLimit(t *testing.T) {
	if err := checkCIThreshold(100, -1); err != nil {
		t.Errorf("expected no error with no limit, got: %v", err)
	}
}

func TestCheckCIThreshold_AtBoundary(t *testing.T) {
	// Count == max should NOT trigger an error (the check is
	// strictly greater than).
	if err := checkCIThreshold(5, 5); err != nil {
		t.Errorf("expected no error at boundary, got: %v", err)
	}
}

func TestCheckCIThreshold_Exceeded(t *testing.T) {
	err := checkCIThreshold(10, 5)
	if err == nil {
		t.Fatal("expected error when count exceeds max")
	}
	if !strings.Contains(err.Error(), "exceed maximum 5") {
		t.Errorf("unexpected error: %s", err)
	}
}

// ---------------------------------------------------------------------------
// runStats tests
// ---------------------------------------------------------------------------

func TestRunStats_InvalidFormat(t *testing.T) {
	err := runStats(statsParams{
		pkgPath: "./...",
		format:  "html",
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
	if !strings.Contains(err.Error(), `invalid format "html"`) {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestRunStats_TextFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runStats(statsParams{
		pkgPath:    fixturePkg,
		format:     "text",
		configPath: fixtureConfig(t),
		stdout:     &stdout,
		stderr:     &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "NonSnakeCaseName") {
		t.Errorf("expected output to contain 'NonSnakeCaseName', got:\n%s", out)
	}
}

func TestRunStats_JSONFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runStats(statsParams{
		pkgPath:    fixturePkg,
		format:     "json",
		configPath: fixtureConfig(t),
		stdout:     &stdout,
		stderr:     &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		t.Errorf("output is not valid JSON: %v\noutput:\n%s", err, stdout.String())
	}
	if _, ok := parsed["summary"]; !ok {
		t.Errorf("JSON output missing 'summary' key")
	}
}

func TestRunStats_BadPackage(t *testing.T) {
	err := runStats(statsParams{
		pkgPath: "github.com/unbound-force/declint/nonexistent/package",
		format:  "text",
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for non-existent package")
	}
}

// ---------------------------------------------------------------------------
// sourceDirs tests
// ---------------------------------------------------------------------------

func TestSourceDirs_Dedupes(t *testing.T) {
	dirs := sourceDirs([]string{
		"/src/pkg/a.go",
		"/src/pkg/b.go",
		"/src/other/c.go",
	})
	if len(dirs) != 2 {
		t.Fatalf("expected 2 dirs, got %d: %v", len(dirs), dirs)
	}
	if dirs[0] != "/src/other" || dirs[1] != "/src/pkg" {
		t.Errorf("unexpected dirs: %v", dirs)
	}
}

// ---------------------------------------------------------------------------
// schema command tests
// ---------------------------------------------------------------------------

func TestSchemaCmd_OutputsValidJSON(t *testing.T) {
	cmd := newSchemaCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("schema command failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Errorf("schema output is not valid JSON: %v", err)
	}
}

func TestSchemaCmd_ContainsSchemaFields(t *testing.T) {
	cmd := newSchemaCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	for _, field := range []string{
		`"$schema"`, `"title"`, `"Diagnostic"`,
		`"expected_case"`, `"suggested_text"`,
	} {
		if !strings.Contains(output, field) {
			t.Errorf("schema output missing %s", field)
		}
	}
}
