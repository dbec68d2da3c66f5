package module

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// stringSentinel is the source_id a caller supplies when parsing an
// in-memory string with no backing file (spec.md §6: "source_id is a path,
// or the sentinel <string>").
const stringSentinel = "<string>"

// DeriveNamespace turns a source id into a stable module namespace: the
// filename stem of a real path (spec.md §6, Glossary: "a short identifier
// derived from the source filename"), or a generated one for the <string>
// sentinel, since two in-memory parses must not collide under the same
// identity (spec.md §6, §4.4).
func DeriveNamespace(sourceID string) string {
	if sourceID != stringSentinel && strings.TrimSpace(sourceID) != "" {
		base := filepath.Base(sourceID)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return "string:" + uuid.New().String()
}
