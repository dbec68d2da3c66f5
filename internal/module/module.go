// Package module builds and exposes the immutable tree a successful parse
// produces: top-level key uniqueness, the freeze into an immutable Module,
// and the lookup façade consumers use to navigate it (spec.md §4.4, §4.5).
package module

import (
	"fmt"

	"github.com/badkraft/anvil/internal/parser"
	"github.com/badkraft/anvil/internal/value"
)

// Module is the frozen result of a successful parse: a namespace, its
// source metadata, and a top-level key->Value index built from statements.
// Once constructed a Module is never mutated; every read goes through its
// embedded *value.Fields lookup surface.
type Module struct {
	*value.Fields
	namespace string
	sourceID  string
	dialect   string
	attrs     []value.Attribute
	statements []parser.Statement
}

// Namespace is the module's identity, derived from its source id (or a
// generated fallback — see DeriveNamespace in this package).
func (m *Module) Namespace() string { return m.namespace }

// Source returns the source_id this module was parsed from (a path, or the
// "<string>" sentinel for in-memory sources).
func (m *Module) Source() string { return m.sourceID }

// Dialect returns "aml" (strict) or "asl" (permissive).
func (m *Module) Dialect() string { return m.dialect }

// Attributes returns the module's own @[...] attribute list, in source
// order (spec.md §3).
func (m *Module) Attributes() []value.Attribute { return m.attrs }

// Statements returns the module's top-level statements in source order,
// including parent-reference metadata the lookup façade does not surface
// directly.
func (m *Module) Statements() []parser.Statement { return m.statements }

// AsFormattedString pretty-prints the whole module for debugging
// (spec.md §4.5): the module attributes followed by its top-level keys
// rendered as one brace-wrapped object, using Format. The output is not
// module source text and is not guaranteed to re-parse.
func (m *Module) AsFormattedString() string {
	obj := value.NewObjectFields()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		_ = obj.Insert(k, v)
	}
	return value.Format(value.NewObject(obj).WithAttributes(m.attrs), 0)
}

// DuplicateTopLevelKeyError reports a module with two statements assigning
// the same key (spec.md §3, code DuplicateTopLevelKey).
type DuplicateTopLevelKeyError struct {
	Key string
}

func (e *DuplicateTopLevelKeyError) Error() string {
	return fmt.Sprintf("DuplicateTopLevelKey: %q is assigned more than once", e.Key)
}

// Build constructs a Module from a parser.Result that reported no errors.
// It is the authoritative point where top-level key uniqueness is checked
// (spec.md §4.4) — the parser itself only checks uniqueness within a single
// object literal, not across the whole statement list.
func Build(namespace, sourceID string, r *parser.Result) (*Module, error) {
	fields := value.NewFields(namespace)
	for _, stmt := range r.Statements {
		if err := fields.Insert(stmt.Key, stmt.Value); err != nil {
			return nil, &DuplicateTopLevelKeyError{Key: stmt.Key}
		}
	}
	return &Module{
		Fields:     fields,
		namespace:  namespace,
		sourceID:   sourceID,
		dialect:    r.Dialect,
		attrs:      r.ModuleAttributes,
		statements: r.Statements,
	}, nil
}
