package parser

import "fmt"

// Code is a stable identifier for a parse error, surfaced to callers
// (spec.md §7).
type Code string

const (
	// Lexical
	CodeUnexpectedToken     Code = "UnexpectedToken"
	CodeInvalidNumber       Code = "InvalidNumber"
	CodeInvalidExponent     Code = "InvalidExponent"
	CodeUnterminatedString  Code = "UnterminatedString"
	CodeUnterminatedFreeform Code = "UnterminatedFreeform"
	CodeExpectedBacktick    Code = "ExpectedBacktick"

	// Structural
	CodeExpectedAssign            Code = "ExpectedAssign"
	CodeExpectedIdentifier        Code = "ExpectedIdentifier"
	CodeExpectedObjectField       Code = "ExpectedObjectField"
	CodeExpectedObjectClose       Code = "ExpectedObjectClose"
	CodeExpectedArrayClose        Code = "ExpectedArrayClose"
	CodeExpectedTupleClose        Code = "ExpectedTupleClose"
	CodeMissingCommaInArray       Code = "MissingCommaInArray"
	CodeMissingCommaInAttributes  Code = "MissingCommaInAttributes"
	CodeExpectedCommaInTuple      Code = "ExpectedCommaInTuple"
	CodeTrailingCommaInArray      Code = "TrailingCommaInArray"
	CodeEmptyObjectNotAllowed     Code = "EmptyObjectNotAllowed"
	CodeEmptyTupleElement         Code = "EmptyTupleElement"
	CodeTupleTooShort             Code = "TupleTooShort"
	CodeAssignmentNotAllowedHere  Code = "AssignmentNotAllowedHere"
	CodeRocketOpNotValid          Code = "RocketOpNotValid"

	// Semantic
	CodeIdentifierIsKeyword     Code = "IdentifierIsKeyword"
	CodeInvalidKeyInObject      Code = "InvalidKeyInObject"
	CodeAttributeIsKeyword      Code = "AttributeIsKeyword"
	CodeDuplicateFieldInObject  Code = "DuplicateFieldInObject"
	CodeDuplicateAttributeKey   Code = "DuplicateAttributeKey"
	CodeDuplicateTopLevelKey    Code = "DuplicateTopLevelKey"
	CodeInvalidValueInAttribute Code = "InvalidValueInAttribute"

	// Meta
	CodeMultipleShebang       Code = "MultipleShebang"
	CodeShebangAfterStatements Code = "ShebangAfterStatements"
	// CodeIoError belongs to the external file-loading collaborator, not the
	// core parser, but is named here so the taxonomy is defined in one
	// place (spec.md §7).
	CodeIoError       Code = "IoError"
	CodeParsingFailed Code = "ParsingFailed"
)

// ParseError carries the (line, column) of the offending position at the
// moment of detection, plus a stable code and a human message.
type ParseError struct {
	Line    int
	Column  int
	Code    Code
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Code, e.Message)
}

// ErrorList is a non-empty list of ParseErrors returned together with a
// failed parse result.
type ErrorList []ParseError

func (l ErrorList) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
}

// Summary counts errors by code, listing codes in the order of their first
// occurrence, for callers that want
// "N errors (k CodeA, j CodeB, ...)" instead of the raw list (spec.md §7:
// "callers decide whether to display first N, all, or summary").
func (l ErrorList) Summary() []CodeCount {
	counts := make(map[Code]int)
	order := make([]Code, 0)
	for _, e := range l {
		if _, seen := counts[e.Code]; !seen {
			order = append(order, e.Code)
		}
		counts[e.Code]++
	}
	out := make([]CodeCount, len(order))
	for i, c := range order {
		out[i] = CodeCount{Code: c, Count: counts[c]}
	}
	return out
}

// CodeCount pairs an error code with how many times it occurred.
type CodeCount struct {
	Code  Code
	Count int
}
