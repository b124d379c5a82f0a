package report

// Schema is the JSON Schema (Draft 2020-12) for the Declint JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/declint/check-report.schema.json",
  "title": "Declint Check Report",
  "description": "Output schema for declint check --format=json",
  "type": "object",
  "required": ["version", "diagnostics"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "diagnostics": {
      "type": "array",
      "items": { "$ref": "#/$defs/Diagnostic" }
    }
  },
  "$defs": {
    "Diagnostic": {
      "type": "object",
      "required": [
        "id", "file", "location", "kind",
        "expected_case", "ident_text", "suggested_text"
      ],
      "properties": {
        "id": {
          "type": "string",
          "description": "Stable diagnostic ID for diffing across runs",
          "pattern": "^nc-[0-9a-f]{8}$"
        },
        "file": {
          "type": "string",
          "description": "Source file containing the declaration"
        },
        "location": {
          "type": "string",
          "description": "Source position of the flagged identifier (file:line:col)"
        },
        "kind": {
          "type": "string",
          "enum": ["Function", "Argument", "Structure", "Field"],
          "description": "Role of the flagged identifier"
        },
        "expected_case": {
          "type": "string",
          "enum": ["lower_snake_case", "UpperCamelCase"],
          "description": "Convention the identifier should follow"
        },
        "ident_text": {
          "type": "string",
          "description": "Identifier as written in the source"
        },
        "suggested_text": {
          "type": "string",
          "description": "Proposed conformant spelling"
        }
      }
    }
  }
}`
