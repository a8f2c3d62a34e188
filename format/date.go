package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/midbel/simpledate/calendar"
	"github.com/midbel/simpledate/locale"
)

type Option func(*SimpleDateFormat)

// WithLocale sets the names, the week rule and the default pattern used to
// render dates.
func WithLocale(loc *locale.Locale) Option {
	return func(f *SimpleDateFormat) {
		if loc != nil {
			f.locale = loc
			f.localized = true
		}
	}
}

// WithWeekRule overrides the week rule of the locale.
func WithWeekRule(rule calendar.WeekRule) Option {
	return func(f *SimpleDateFormat) {
		f.rule = &rule
	}
}

// WithDefaults gives the table used to select a pattern from the locale name
// when no pattern has been set.
func WithDefaults(lookup locale.PatternLookup) Option {
	return func(f *SimpleDateFormat) {
		f.defaults = lookup
	}
}

// WithLenient makes runs of unknown letters be dropped from the output
// instead of failing the formatting.
func WithLenient() Option {
	return func(f *SimpleDateFormat) {
		f.lenient = true
	}
}

type compiled struct {
	pattern string
	tokens  []Token
	err     error
}

// SimpleDateFormat formats dates according to a pattern made of letters
// (yyyy, MM, dd, ...), quoted text and other characters copied as is.
//
// The pattern is compiled when it is set. A SimpleDateFormat can be shared
// between goroutines as long as none of them calls ApplyPattern.
type SimpleDateFormat struct {
	pattern  string
	locale   *locale.Locale
	rule     *calendar.WeekRule
	defaults locale.PatternLookup
	lenient  bool
	// set when the locale comes from WithLocale
	localized bool

	cache *compiled
}

func New(pattern string, options ...Option) *SimpleDateFormat {
	f := SimpleDateFormat{
		pattern: pattern,
		locale:  locale.Default(),
	}
	for _, o := range options {
		o(&f)
	}
	f.reset()
	return &f
}

func (f *SimpleDateFormat) ApplyPattern(pattern string) error {
	if pattern == "" {
		return ErrMissingPattern
	}
	f.pattern = pattern
	f.reset()
	return nil
}

// Pattern returns the active pattern: the pattern set explicitly, the entry
// of the default table for the locale name or the default pattern carried by
// the locale given with WithLocale, in that order.
func (f *SimpleDateFormat) Pattern() (string, error) {
	if f.pattern != "" {
		return f.pattern, nil
	}
	if f.defaults != nil {
		if pattern, ok := f.defaults.Lookup(f.locale.Name); ok && pattern != "" {
			return pattern, nil
		}
	}
	if f.localized && f.locale.Pattern != "" {
		return f.locale.Pattern, nil
	}
	if f.defaults == nil && !f.localized {
		return "", ErrMissingPattern
	}
	return "", fmt.Errorf("%w: no default pattern for %s", ErrMissingPattern, f.locale)
}

func (f *SimpleDateFormat) Locale() *locale.Locale {
	return f.locale
}

func (f *SimpleDateFormat) WeekRule() calendar.WeekRule {
	if f.rule != nil {
		return *f.rule
	}
	return f.locale.Week
}

func (f *SimpleDateFormat) Format(t time.Time) (string, error) {
	tokens, err := f.tokens()
	if err != nil {
		return "", err
	}
	var (
		str  strings.Builder
		date = calendar.New(t, f.WeekRule())
	)
	for _, tok := range tokens {
		if tok.Type == Literal {
			str.WriteString(tok.Literal)
			continue
		}
		fv, err := Resolve(date, tok.Letter, tok.Count, f.locale)
		if err != nil {
			return "", err
		}
		if err := writeField(&str, fv, f.locale); err != nil {
			return "", err
		}
	}
	return str.String(), nil
}

func (f *SimpleDateFormat) reset() {
	f.cache = nil
	if pattern, err := f.Pattern(); err == nil {
		f.cache = f.compile(pattern)
	}
}

func (f *SimpleDateFormat) tokens() ([]Token, error) {
	pattern, err := f.Pattern()
	if err != nil {
		return nil, err
	}
	if f.cache == nil || f.cache.pattern != pattern {
		c := f.compile(pattern)
		return c.tokens, c.err
	}
	return f.cache.tokens, f.cache.err
}

func (f *SimpleDateFormat) compile(pattern string) *compiled {
	c := compiled{
		pattern: pattern,
	}
	for tok, err := range Tokens(pattern) {
		if tok.Type == Invalid && f.lenient {
			continue
		}
		if err != nil {
			c.tokens, c.err = nil, err
			break
		}
		c.tokens = append(c.tokens, tok)
	}
	return &c
}
