package format

import (
	"fmt"
)

type TokenType int8

const (
	EOF TokenType = iota
	Literal
	Field
	Invalid
	Unterminated
)

// Token is one element of a pattern. Field tokens carry the pattern letter and
// the length of its run; Literal tokens carry the text to emit, quotes
// already removed.
type Token struct {
	Literal string
	Type    TokenType
	Letter  byte
	Count   int
	Pos     int
}

// Err reports the error a token stands for. It is nil for literal and field
// tokens.
func (t Token) Err() error {
	switch t.Type {
	case Invalid:
		return fmt.Errorf("%w: %q at position %d", ErrUnknownLetter, t.Literal, t.Pos)
	case Unterminated:
		return fmt.Errorf("%w: %q at position %d", ErrUnterminatedQuote, t.Literal, t.Pos)
	default:
		return nil
	}
}

func (t Token) String() string {
	var str string
	switch t.Type {
	case EOF:
		return "<eof>"
	case Literal:
		str = "literal"
	case Field:
		return fmt.Sprintf("field(%c, %d)", t.Letter, t.Count)
	case Invalid:
		str = "invalid"
	case Unterminated:
		str = "unterminated"
	default:
		return "<unknown>"
	}
	return fmt.Sprintf("%s(%s)", str, t.Literal)
}
