package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAuditConfigDefaults(t *testing.T) {
	t.Setenv("ANVIL_AUDIT_ENABLED", "")
	t.Setenv("ANVIL_AUDIT_MODE", "")
	t.Setenv("ANVIL_AUDIT_DSN", "")

	cfg := GetAuditConfig()
	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.Mock)
	assert.Contains(t, cfg.ConnectionString, "postgres://")
}

func TestGetAuditConfigFromEnv(t *testing.T) {
	t.Setenv("ANVIL_AUDIT_ENABLED", "true")
	t.Setenv("ANVIL_AUDIT_MODE", "mock")
	t.Setenv("ANVIL_AUDIT_DSN", "postgres://example/anvil")

	cfg := GetAuditConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Mock)
	assert.Equal(t, "postgres://example/anvil", cfg.ConnectionString)
}

func TestGetErrorBudgetFallsBackOnInvalid(t *testing.T) {
	t.Setenv("ANVIL_ERROR_BUDGET", "not-a-number")
	assert.Equal(t, defaultErrorBudget, GetErrorBudget())

	t.Setenv("ANVIL_ERROR_BUDGET", "5")
	assert.Equal(t, 5, GetErrorBudget())
}
