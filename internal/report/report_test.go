package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/unbound-force/declint/internal/lint"
)

func sampleDiagnostics() []lint.Diagnostic {
	return []lint.Diagnostic{
		{
			ID:            lint.GenerateID("lib.src", lint.KindFunction, "NonSnakeCaseName", "lib.src:1:4"),
			File:          "lib.src",
			Location:      "lib.src:1:4",
			Kind:          lint.KindFunction,
			ExpectedCase:  lint.LowerSnakeCase,
			IdentText:     "NonSnakeCaseName",
			SuggestedText: "non_snake_case_name",
		},
		{
			ID:            lint.GenerateID("lib.src", lint.KindArgument, "CAPS_PARAM", "lib.src:3:25"),
			File:          "lib.src",
			Location:      "lib.src:3:25",
			Kind:          lint.KindArgument,
			ExpectedCase:  lint.LowerSnakeCase,
			IdentText:     "CAPS_PARAM",
			SuggestedText: "caps_param",
		},
		{
			ID:            lint.GenerateID("types.src", lint.KindStructure, "non_camel_case_name", "types.src:7:8"),
			File:          "types.src",
			Location:      "types.src:7:8",
			Kind:          lint.KindStructure,
			ExpectedCase:  lint.UpperCamelCase,
			IdentText:     "non_camel_case_name",
			SuggestedText: "NonCamelCaseName",
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleDiagnostics()); err != nil {
		t.Fatalf("WriteText() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"=== lib.src ===",
		"=== types.src ===",
		"NonSnakeCaseName",
		"non_snake_case_name",
		"caps_param",
		"NonCamelCaseName",
		"2 file(s) checked",
		"3 issue(s) found",
		"lib.src:3:25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil); err != nil {
		t.Fatalf("WriteText() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No naming issues found.") {
		t.Errorf("empty output unexpected: %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDiagnostics()); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}

	var report JSONReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if report.Version == "" {
		t.Error("missing version")
	}
	if len(report.Diagnostics) != 3 {
		t.Errorf("diagnostics = %d, want 3", len(report.Diagnostics))
	}
	if report.Diagnostics[0].Message() == "" {
		t.Error("round-tripped diagnostic renders no message")
	}
}

func TestWriteJSON_NilDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Errorf("nil diagnostics encoded as null:\n%s", buf.String())
	}
}

func TestWriteHTML_NotImplemented(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sampleDiagnostics()); err == nil {
		t.Error("expected not-implemented error")
	}
}

// TestSchema_ValidatesOutput compiles the published JSON Schema and
// checks real WriteJSON output against it.
func TestSchema_ValidatesOutput(t *testing.T) {
	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		t.Fatalf("failed to parse schema JSON: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", sch); err != nil {
		t.Fatalf("failed to add schema resource: %v", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("failed to compile schema: %v", err)
	}

	// Generate JSON output from sample data.
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDiagnostics()); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to parse output JSON: %v", err)
	}
	if err := compiled.Validate(inst); err != nil {
		t.Errorf("output does not conform to the published schema: %v", err)
	}
}

// TestSchema_RejectsBadKind guards the schema's kind enum.
func TestSchema_RejectsBadKind(t *testing.T) {
	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		t.Fatalf("failed to parse schema JSON: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", sch); err != nil {
		t.Fatalf("failed to add schema resource: %v", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("failed to compile schema: %v", err)
	}

	bad := `{
  "version": "0.1.0",
  "diagnostics": [{
    "id": "nc-00000000",
    "file": "x.src",
    "location": "x.src:1:1",
    "kind": "EnumVariant",
    "expected_case": "lower_snake_case",
    "ident_text": "X",
    "suggested_text": "x"
  }]
}`
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(bad))
	if err != nil {
		t.Fatalf("failed to parse bad instance: %v", err)
	}
	if err := compiled.Validate(inst); err == nil {
		t.Error("schema accepted an unsupported diagnostic kind")
	}
}
