// Package config reads environment-driven configuration the same way the
// rest of this codebase's ambient stack does: os.Getenv with a sane
// default, no flag parsing inside the library.
package config

import (
	"os"
	"strconv"
	"strings"
)

// AuditConfig selects whether and how parse attempts are recorded to the
// optional audit sink (internal/audit). It is deliberately outside the
// core parse path (spec.md §1 non-goals exclude persistence from the
// library itself) — a caller wires it in only if it wants a history.
type AuditConfig struct {
	Enabled          bool
	Mock             bool
	ConnectionString string
}

// GetAuditConfig builds an AuditConfig from the environment:
//
//	ANVIL_AUDIT_ENABLED  - "true" to record parse attempts (default false)
//	ANVIL_AUDIT_MODE     - "mock" or "postgres" (default "postgres")
//	ANVIL_AUDIT_DSN      - Postgres connection string
func GetAuditConfig() AuditConfig {
	enabled, _ := strconv.ParseBool(os.Getenv("ANVIL_AUDIT_ENABLED"))
	cfg := AuditConfig{Enabled: enabled}

	mode := strings.ToLower(os.Getenv("ANVIL_AUDIT_MODE"))
	cfg.Mock = mode == "mock"

	dsn := os.Getenv("ANVIL_AUDIT_DSN")
	if dsn == "" {
		dsn = "postgres://localhost:5432/anvil?sslmode=disable"
	}
	cfg.ConnectionString = dsn
	return cfg
}

const defaultErrorBudget = 25

// GetErrorBudget returns the maximum number of parse errors a caller wants
// retained before the parser's collection caps out (ANVIL_ERROR_BUDGET,
// default 25). Parsing never stops early at the cap — it only bounds how
// many ParseErrors are kept (spec.md §4.3).
func GetErrorBudget() int {
	raw := os.Getenv("ANVIL_ERROR_BUDGET")
	if raw == "" {
		return defaultErrorBudget
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultErrorBudget
	}
	return n
}
