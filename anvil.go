// Package anvil is the public entry point of the library: it turns Anvil
// source text into an immutable Module, wiring the cursor, value, parser,
// and module packages together the way spec.md §2's dependency order
// describes (Source Cursor -> Value algebra -> Parser -> Module ->
// Public view). File I/O, CLI argument handling, and persistence live
// outside this package entirely — this one only parses strings.
package anvil

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/badkraft/anvil/internal/config"
	"github.com/badkraft/anvil/internal/module"
	"github.com/badkraft/anvil/internal/parser"
)

// Re-exported so callers never need to import the internal packages
// directly.
type (
	Module     = module.Module
	ParseError = parser.ParseError
	ErrorList  = parser.ErrorList
	Code       = parser.Code
)

// StringSource is the source_id sentinel for an in-memory source with no
// backing file (spec.md §6).
const StringSource = "<string>"

// Parse recognizes src as Anvil source and, if it contains no errors,
// builds and returns the resulting Module. sourceID is a file path or
// StringSource; its extension (".aml" or ".asl") selects the dialect when
// src carries no shebang.
//
// A non-empty ErrorList means parsing failed; Module is nil in that case.
func Parse(src string, sourceID string) (*Module, ErrorList) {
	extHint := dialectHint(sourceID)
	result := parser.ParseWithBudget(src, extHint, config.GetErrorBudget())
	if len(result.Errors) > 0 {
		return nil, result.Errors
	}

	namespace := module.DeriveNamespace(sourceID)
	m, err := module.Build(namespace, sourceID, result)
	if err != nil {
		pe := parser.ParseError{Code: parser.CodeDuplicateTopLevelKey, Message: err.Error()}
		var dup *module.DuplicateTopLevelKeyError
		if errors.As(err, &dup) {
			seen := false
			for _, s := range result.Statements {
				if s.Key != dup.Key {
					continue
				}
				if seen {
					pe.Line, pe.Column = s.Line, s.Column
					break
				}
				seen = true
			}
		}
		return nil, parser.ErrorList{pe}
	}
	return m, nil
}

func dialectHint(sourceID string) string {
	switch strings.ToLower(filepath.Ext(sourceID)) {
	case ".aml":
		return "aml"
	case ".asl":
		return "asl"
	default:
		return ""
	}
}
