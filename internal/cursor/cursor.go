// Package cursor owns the immutable source buffer and the mutable read
// position the parser advances over. It tracks 1-based line/column so parse
// errors can point at an exact offending character.
package cursor

// Operator is one entry in the fixed operator table: a name and its literal
// symbol. There is no separate length field; an operator's byte length is
// len(Symbol). Defining operators once here avoids
// string-literal drift between the scanner and anything that describes it.
type Operator struct {
	Name   string
	Symbol string
}

var (
	Assign   = Operator{"ASSIGN", ":="}
	Equal    = Operator{"EQUAL", "="}
	Comma    = Operator{"COMMA", ","}
	At       = Operator{"AT", "@"}
	Quote    = Operator{"QUOTE", "\""}
	Backtick = Operator{"BACKTICK", "`"}
	Rocket   = Operator{"ROCKET", "=>"}
	LBrace   = Operator{"LBRACE", "{"}
	RBrace   = Operator{"RBRACE", "}"}
	LBracket = Operator{"LBRACKET", "["}
	RBracket = Operator{"RBRACKET", "]"}
	LParen   = Operator{"LPAREN", "("}
	RParen   = Operator{"RPAREN", ")"}
	Colon    = Operator{"COLON", ":"}
)

// Position is a snapshot of a cursor's read position, usable with
// SetPosition to rewind after a speculative scan.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Cursor is a mutable read position over an immutable source buffer.
type Cursor struct {
	src string
	pos Position
}

// New creates a cursor positioned at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: src, pos: Position{Offset: 0, Line: 1, Column: 1}}
}

// Position returns the cursor's current (offset, line, column).
func (c *Cursor) Position() Position { return c.pos }

// SetPosition rewinds the cursor to a position previously captured with
// Position. The parser in this module does not call it; it reports a
// rejected attribute literal without rewinding.
func (c *Cursor) SetPosition(p Position) { c.pos = p }

// Offset, Line, Column expose the individual position fields.
func (c *Cursor) Offset() int { return c.pos.Offset }
func (c *Cursor) Line() int   { return c.pos.Line }
func (c *Cursor) Column() int { return c.pos.Column }

// AtEnd reports whether the cursor has consumed the entire source.
func (c *Cursor) AtEnd() bool { return c.pos.Offset >= len(c.src) }

// Peek returns the byte at offset characters ahead of the cursor, or the
// sentinel 0 if that position is past the end of the source.
func (c *Cursor) Peek(offset int) byte {
	i := c.pos.Offset + offset
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// Is reports whether literal matches the source starting at offset
// characters ahead of the cursor, without advancing.
func (c *Cursor) Is(literal string, offset int) bool {
	start := c.pos.Offset + offset
	end := start + len(literal)
	if start < 0 || end > len(c.src) {
		return false
	}
	return c.src[start:end] == literal
}

// IsOperator reports whether op's symbol matches at the current position.
func (c *Cursor) IsOperator(op Operator) bool {
	return c.Is(op.Symbol, 0)
}

// Consume advances the cursor by one byte and returns it. Calling Consume
// at end of input is a no-op and returns 0.
func (c *Cursor) Consume() byte {
	if c.AtEnd() {
		return 0
	}
	b := c.src[c.pos.Offset]
	c.advanceOne(b)
	return b
}

// ConsumeN advances the cursor by n bytes (or to end of input, whichever
// comes first) and returns the consumed slice.
func (c *Cursor) ConsumeN(n int) string {
	start := c.pos.Offset
	for i := 0; i < n && !c.AtEnd(); i++ {
		c.advanceOne(c.src[c.pos.Offset])
	}
	return c.src[start:c.pos.Offset]
}

// ConsumeOperator advances past op's symbol and returns true iff it matched
// at the current position; otherwise the cursor is left untouched.
func (c *Cursor) ConsumeOperator(op Operator) bool {
	if !c.IsOperator(op) {
		return false
	}
	c.ConsumeN(len(op.Symbol))
	return true
}

func (c *Cursor) advanceOne(b byte) {
	if b == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	c.pos.Offset++
}

// SkipWhitespace skips spaces, tabs, CR, LF, "//" line comments, and
// nestable "/* ... */" block comments. Comments never participate in the
// grammar beyond being skipped here.
func (c *Cursor) SkipWhitespace() {
	for !c.AtEnd() {
		switch {
		case isSpace(c.Peek(0)):
			c.Consume()
		case c.Is("//", 0):
			for !c.AtEnd() && c.Peek(0) != '\n' {
				c.Consume()
			}
		case c.Is("/*", 0):
			c.skipBlockComment()
		default:
			return
		}
	}
}

func (c *Cursor) skipBlockComment() {
	depth := 0
	for !c.AtEnd() {
		switch {
		case c.Is("/*", 0):
			c.ConsumeN(2)
			depth++
		case c.Is("*/", 0):
			c.ConsumeN(2)
			depth--
			if depth == 0 {
				return
			}
		default:
			c.Consume()
		}
	}
}

// IsEscaped reports whether the byte at the given absolute offset is
// preceded by an odd number of consecutive backslashes, i.e. whether it is
// itself escaped rather than a literal backslash run.
func (c *Cursor) IsEscaped(index int) bool {
	count := 0
	for i := index - 1; i >= 0 && c.src[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

// Substring returns the borrowed source slice [start, end).
func (c *Cursor) Substring(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(c.src) {
		end = len(c.src)
	}
	if start > end {
		return ""
	}
	return c.src[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// IsDigit reports whether b is a decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsAlpha reports whether b can start or continue an identifier: a letter
// or underscore.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// IsAlphanumeric reports whether b is a letter, digit, or underscore.
func IsAlphanumeric(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}
