package format

import (
	"errors"
	"time"
)

const DefaultDatePattern = "yyyy-MM-dd"

var (
	ErrMissingPattern    = errors.New("missing pattern")
	ErrUnterminatedQuote = errors.New("unterminated quoted literal")
	ErrUnknownLetter     = errors.New("unrecognized pattern letter")
	ErrUnsupportedField  = errors.New("unsupported field")
)

type Formatter interface {
	Format(time.Time) (string, error)
}

// ParseDateFormatter returns a Formatter for pattern. Unlike New, errors in
// the pattern, or the lack of a default one, are reported immediately.
func ParseDateFormatter(pattern string, options ...Option) (Formatter, error) {
	f := New(pattern, options...)
	if _, err := f.tokens(); err != nil {
		return nil, err
	}
	return f, nil
}

// Format formats t with pattern using the English locale.
func Format(pattern string, t time.Time) (string, error) {
	f, err := ParseDateFormatter(pattern)
	if err != nil {
		return "", err
	}
	return f.Format(t)
}
