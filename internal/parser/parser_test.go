package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statementByKey(t *testing.T, stmts []Statement, key string) Statement {
	t.Helper()
	for _, s := range stmts {
		if s.Key == key {
			return s
		}
	}
	t.Fatalf("no statement with key %q", key)
	return Statement{}
}

func TestScalarAssignmentsAndDialectDefault(t *testing.T) {
	src := `
name := "Badkraft"
count := 7
ratio := 3.5
active := true
nothing := null
`
	r := Parse(src, "")
	require.Empty(t, r.Errors)
	assert.Equal(t, "asl", r.Dialect)
	assert.Len(t, r.Statements, 5)

	name := statementByKey(t, r.Statements, "name")
	s, err := name.Value.AsString()
	require.NoError(t, err)
	assert.Equal(t, "Badkraft", s)

	active := statementByKey(t, r.Statements, "active")
	b, err := active.Value.AsBoolean()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestShebangSelectsStrictDialect(t *testing.T) {
	src := "#!aml\nblock := { kind := stone, count := 64 }\n"
	r := Parse(src, "")
	require.Empty(t, r.Errors)
	assert.Equal(t, "aml", r.Dialect)

	block := statementByKey(t, r.Statements, "block")
	obj, err := block.Value.AsObject()
	require.NoError(t, err)
	kindVal, err := obj.Get("kind")
	require.NoError(t, err)
	kind, err := kindVal.AsBare()
	require.NoError(t, err)
	assert.Equal(t, "stone", kind)
}

func TestTupleAndBareAndParentSyntax(t *testing.T) {
	src := `
pos := (10, 64, -300)
item := minecraft:diamond_sword
entity : pos := { x := 1, y := 2 }
`
	r := Parse(src, "asl")
	require.Empty(t, r.Errors)

	pos := statementByKey(t, r.Statements, "pos")
	elems, err := pos.Value.AsTuple()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	z, err := elems[2].AsLong()
	require.NoError(t, err)
	assert.EqualValues(t, -300, z)

	item := statementByKey(t, r.Statements, "item")
	bare, err := item.Value.AsBare()
	require.NoError(t, err)
	assert.Equal(t, "minecraft:diamond_sword", bare)

	entity := statementByKey(t, r.Statements, "entity")
	assert.True(t, entity.HasParent)
	assert.Equal(t, "pos", entity.Parent)
}

func TestModuleAndStatementAttributes(t *testing.T) {
	src := `
@[author = "badkraft", version = 2]
health @[persisted, max = 20] := 20
`
	r := Parse(src, "asl")
	require.Empty(t, r.Errors)
	require.Len(t, r.ModuleAttributes, 2)
	assert.Equal(t, "author", r.ModuleAttributes[0].Key)

	health := statementByKey(t, r.Statements, "health")
	attrs := health.Value.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "persisted", attrs[0].Key)
	assert.False(t, attrs[0].HasValue)
	assert.Equal(t, "max", attrs[1].Key)
	maxVal, err := attrs[1].Value.AsLong()
	require.NoError(t, err)
	assert.EqualValues(t, 20, maxVal)
}

func TestBlobWithTagAndEscapedBacktick(t *testing.T) {
	src := "script := @lua`print(\\`hi\\`)`\n"
	r := Parse(src, "asl")
	require.Empty(t, r.Errors)

	script := statementByKey(t, r.Statements, "script")
	b, err := script.Value.AsBlob()
	require.NoError(t, err)
	assert.Equal(t, "lua", b.Tag)
	assert.Equal(t, "print(`hi`)", b.Content)
}

func TestNestedObjectArrayAndUnknownEscapePassThrough(t *testing.T) {
	src := `
player := {
  name := "Grok",
  tags := ["admin", "beta"],
  note := "path \q end",
}
`
	r := Parse(src, "asl")
	require.Empty(t, r.Errors)

	player := statementByKey(t, r.Statements, "player")
	obj, err := player.Value.AsObject()
	require.NoError(t, err)

	tags, err := obj.GetArray("tags")
	require.NoError(t, err)
	require.Len(t, tags, 2)
	first, err := tags[0].AsString()
	require.NoError(t, err)
	assert.Equal(t, "admin", first)

	note, err := obj.GetString("note")
	require.NoError(t, err)
	assert.Equal(t, `path \q end`, note)
}

func TestDuplicateFieldInObjectIsReported(t *testing.T) {
	src := `thing := { a := 1, a := 2 }`
	r := Parse(src, "asl")
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, CodeDuplicateFieldInObject, r.Errors[0].Code)
}

func TestReservedWordsRejected(t *testing.T) {
	r := Parse(`true := 1`, "asl")
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, CodeIdentifierIsKeyword, r.Errors[0].Code)
}

func TestTupleArityAndEmptyObjectInvariants(t *testing.T) {
	r1 := Parse(`single := (1)`, "asl")
	require.NotEmpty(t, r1.Errors)
	assert.Equal(t, CodeTupleTooShort, r1.Errors[0].Code)

	r2 := Parse(`empty := {}`, "asl")
	require.NotEmpty(t, r2.Errors)
	assert.Equal(t, CodeEmptyObjectNotAllowed, r2.Errors[0].Code)
}

func TestMissingCommaAndUnterminatedArray(t *testing.T) {
	r := Parse(`list := [1 2]`, "asl")
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, CodeMissingCommaInArray, r.Errors[0].Code)

	r2 := Parse(`list := [1, 2`, "asl")
	require.NotEmpty(t, r2.Errors)
	assert.Equal(t, CodeExpectedArrayClose, r2.Errors[0].Code)
}

func TestUnterminatedTupleReportsExpectedTupleClose(t *testing.T) {
	r := Parse("pos := (1, 2\n", "asl")
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, CodeExpectedTupleClose, r.Errors[0].Code)
}

func TestInvalidNumberAndExponent(t *testing.T) {
	r1 := Parse(`n := 1e`, "asl")
	require.NotEmpty(t, r1.Errors)
	assert.Equal(t, CodeInvalidExponent, r1.Errors[0].Code)

	r2 := Parse(`n := 99999999999999999999`, "asl")
	require.NotEmpty(t, r2.Errors)
	assert.Equal(t, CodeInvalidNumber, r2.Errors[0].Code)
}

func TestUnterminatedStringRecoversAndContinues(t *testing.T) {
	src := "a := \"unterminated\nb := 2\n"
	r := Parse(src, "asl")
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, CodeUnterminatedString, r.Errors[0].Code)
	// recovery should still pick up the next statement
	b := statementByKey(t, r.Statements, "b")
	n, err := b.Value.AsLong()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestErrorBudgetCapsAtTwentyFive(t *testing.T) {
	src := ""
	for i := 0; i < 40; i++ {
		src += "1 := 2\n" // a leading digit can never start an identifier: ExpectedIdentifier every line
	}
	r := Parse(src, "asl")
	assert.Len(t, r.Errors, 25)
	assert.Equal(t, 40, r.TotalErrorCount)
}

func TestSecondShebangIsReported(t *testing.T) {
	src := "#!aml\na := 1\n#!aml\nb := 2\n"
	r := Parse(src, "")
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, CodeShebangAfterStatements, r.Errors[0].Code)
}

func TestDottedBareWithDoubledSeparatorIsInvalid(t *testing.T) {
	r := Parse(`x := a..b`, "asl")
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, CodeUnexpectedToken, r.Errors[0].Code)
}

func TestNestedContainerRecoveryRespectsDepth(t *testing.T) {
	src := `outer := [ [1, 2, bad@], [3, 4] ]
next := 5
`
	r := Parse(src, "asl")
	require.NotEmpty(t, r.Errors)
	next := statementByKey(t, r.Statements, "next")
	n, err := next.Value.AsLong()
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}
