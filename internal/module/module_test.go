package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badkraft/anvil/internal/parser"
)

func mustBuild(t *testing.T, src string) *Module {
	t.Helper()
	r := parser.Parse(src, "asl")
	require.Empty(t, r.Errors)
	m, err := Build(DeriveNamespace("<string>"), "<string>", r)
	require.NoError(t, err)
	return m
}

func TestBuildAndLookupFacade(t *testing.T) {
	m := mustBuild(t, `
name := "Badkraft"
pos := (10, 64, -300)
player := { health := 20, tags := ["admin"] }
`)

	assert.ElementsMatch(t, []string{"name", "pos", "player"}, m.Keys())
	assert.True(t, m.Contains("player"))

	name, err := m.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "Badkraft", name)

	player, err := m.GetObject("player")
	require.NoError(t, err)
	health, err := player.GetLong("health")
	require.NoError(t, err)
	assert.EqualValues(t, 20, health)

	_, ok := m.TryGet("missing")
	assert.False(t, ok)
}

func TestBuildRejectsDuplicateTopLevelKey(t *testing.T) {
	r := parser.Parse("a := 1\na := 2\n", "asl")
	require.Empty(t, r.Errors) // the parser itself allows it; module construction catches it
	_, err := Build("ns", "<string>", r)
	require.Error(t, err)
	var dup *DuplicateTopLevelKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Key)
}

func TestDeriveNamespaceFallsBackForStringSentinel(t *testing.T) {
	ns1 := DeriveNamespace("<string>")
	ns2 := DeriveNamespace("<string>")
	assert.NotEqual(t, ns1, ns2)
	assert.Equal(t, "world", DeriveNamespace("configs/world.aml"))
}

func TestAtomicModuleHotReload(t *testing.T) {
	first := mustBuild(t, `version := 1`)
	am := NewAtomicModule(first)
	assert.Equal(t, first, am.Load())

	second := mustBuild(t, `version := 2`)
	am.Store(second)
	v, err := am.Load().GetLong("version")
	require.NoError(t, err)
	assert.EqualValues(t, 2, v)
}

func TestAsFormattedString(t *testing.T) {
	m := mustBuild(t, `health := 20`)
	out := m.AsFormattedString()
	assert.Contains(t, out, "health := 20")
}
