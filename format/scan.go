package format

import (
	"iter"
	"strings"
)

const (
	quote   = '\''
	letters = "GyYMLwWDdFEuaHkKhmsSZX"
)

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isPatternLetter(c byte) bool {
	return strings.IndexByte(letters, c) >= 0
}

func isLiteral(c byte) bool {
	return c != quote && !isLetter(c)
}

// Scanner splits a pattern into tokens. The scanner never fails: malformed
// parts of a pattern are returned as Invalid or Unterminated tokens.
type Scanner struct {
	input string
	pos   int
}

func Scan(pattern string) *Scanner {
	return &Scanner{
		input: pattern,
	}
}

func (s *Scanner) Done() bool {
	return s.pos >= len(s.input)
}

func (s *Scanner) Scan() Token {
	if s.Done() {
		return Token{
			Type: EOF,
			Pos:  s.pos,
		}
	}
	switch c := s.input[s.pos]; {
	case c == quote:
		return s.scanQuote()
	case isPatternLetter(c):
		return s.scanField()
	case isLetter(c):
		return s.scanInvalid()
	default:
		return s.scanLiteral()
	}
}

func (s *Scanner) scanQuote() Token {
	tok := Token{
		Type: Literal,
		Pos:  s.pos,
	}
	if s.peek() == quote {
		tok.Literal = string(quote)
		s.pos += 2
		return tok
	}
	var buf strings.Builder
	for i := s.pos + 1; i < len(s.input); i++ {
		if s.input[i] != quote {
			buf.WriteByte(s.input[i])
			continue
		}
		if i+1 < len(s.input) && s.input[i+1] == quote {
			buf.WriteByte(quote)
			i++
			continue
		}
		tok.Literal = buf.String()
		s.pos = i + 1
		return tok
	}
	tok.Type = Unterminated
	tok.Literal = s.input[s.pos:]
	s.pos = len(s.input)
	return tok
}

func (s *Scanner) scanField() Token {
	var (
		letter = s.input[s.pos]
		beg    = s.pos
	)
	for s.pos < len(s.input) && s.input[s.pos] == letter {
		s.pos++
	}
	return Token{
		Literal: s.input[beg:s.pos],
		Type:    Field,
		Letter:  letter,
		Count:   s.pos - beg,
		Pos:     beg,
	}
}

func (s *Scanner) scanInvalid() Token {
	beg := s.pos
	for s.pos < len(s.input) && isLetter(s.input[s.pos]) && !isPatternLetter(s.input[s.pos]) {
		s.pos++
	}
	return Token{
		Literal: s.input[beg:s.pos],
		Type:    Invalid,
		Pos:     beg,
	}
}

func (s *Scanner) scanLiteral() Token {
	beg := s.pos
	for s.pos < len(s.input) && isLiteral(s.input[s.pos]) {
		s.pos++
	}
	return Token{
		Literal: s.input[beg:s.pos],
		Type:    Literal,
		Pos:     beg,
	}
}

func (s *Scanner) peek() byte {
	if s.pos+1 >= len(s.input) {
		return 0
	}
	return s.input[s.pos+1]
}

// Tokens returns the tokens of pattern. Each token is given with the error it
// stands for, if any. The sequence can be iterated more than once.
func Tokens(pattern string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		scan := Scan(pattern)
		for {
			tok := scan.Scan()
			if tok.Type == EOF {
				return
			}
			if !yield(tok, tok.Err()) {
				return
			}
		}
	}
}

// Compile returns all the tokens of pattern, stopping at the first invalid
// one.
func Compile(pattern string) ([]Token, error) {
	var list []Token
	for tok, err := range Tokens(pattern) {
		if err != nil {
			return nil, err
		}
		list = append(list, tok)
	}
	return list, nil
}
