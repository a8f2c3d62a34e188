package format

import (
	"errors"
	"testing"
	"time"

	"github.com/midbel/simpledate/calendar"
	"github.com/midbel/simpledate/locale"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		Pattern string
		Date    time.Time
		Want    string
	}{
		{
			Pattern: "G",
			Date:    time.Date(2001, 7, 4, 0, 0, 0, 0, time.UTC),
			Want:    "AD",
		},
		{
			Pattern: "y",
			Date:    time.Date(1989, 12, 6, 0, 0, 0, 0, time.UTC),
			Want:    "1989",
		},
		{
			Pattern: "yy",
			Date:    time.Date(1989, 12, 6, 0, 0, 0, 0, time.UTC),
			Want:    "89",
		},
		{
			Pattern: "yyy",
			Date:    time.Date(1989, 12, 6, 0, 0, 0, 0, time.UTC),
			Want:    "1989",
		},
		{
			Pattern: "yy",
			Date:    time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			Want:    "99",
		},
		{
			Pattern: "yyyy",
			Date:    time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC),
			Want:    "10000",
		},
		{
			Pattern: "Y",
			Date:    time.Date(1997, 12, 28, 0, 0, 0, 0, time.UTC),
			Want:    "1998",
		},
		{
			Pattern: "YY",
			Date:    time.Date(1997, 12, 28, 0, 0, 0, 0, time.UTC),
			Want:    "98",
		},
		{
			Pattern: "YYYY y",
			Date:    time.Date(1997, 12, 28, 0, 0, 0, 0, time.UTC),
			Want:    "1998 1997",
		},
		{
			Pattern: "M MM MMM MMMM",
			Date:    time.Date(2017, 6, 5, 0, 0, 0, 0, time.UTC),
			Want:    "6 06 Jun June",
		},
		{
			Pattern: "L LL LLL LLLL",
			Date:    time.Date(2017, 6, 5, 0, 0, 0, 0, time.UTC),
			Want:    "6 06 Jun June",
		},
		{
			Pattern: "w ww",
			Date:    time.Date(1997, 12, 28, 0, 0, 0, 0, time.UTC),
			Want:    "1 01",
		},
		{
			Pattern: "W",
			Date:    time.Date(1997, 12, 28, 0, 0, 0, 0, time.UTC),
			Want:    "5",
		},
		{
			Pattern: "D DD DDD",
			Date:    time.Date(1997, 1, 3, 0, 0, 0, 0, time.UTC),
			Want:    "3 03 003",
		},
		{
			Pattern: "d dd",
			Date:    time.Date(2017, 6, 5, 0, 0, 0, 0, time.UTC),
			Want:    "5 05",
		},
		{
			Pattern: "F",
			Date:    time.Date(2017, 5, 10, 0, 0, 0, 0, time.UTC),
			Want:    "2",
		},
		{
			Pattern: "E EE EEE EEEE",
			Date:    time.Date(2017, 5, 10, 0, 0, 0, 0, time.UTC),
			Want:    "Wed Wed Wed Wednesday",
		},
		{
			Pattern: "u",
			Date:    time.Date(2017, 5, 8, 0, 0, 0, 0, time.UTC),
			Want:    "1",
		},
		{
			Pattern: "u",
			Date:    time.Date(2017, 5, 7, 0, 0, 0, 0, time.UTC),
			Want:    "7",
		},
		{
			Pattern: "H k K h a",
			Date:    time.Date(2001, 7, 4, 0, 5, 0, 0, time.UTC),
			Want:    "0 24 0 12 AM",
		},
		{
			Pattern: "HH kk KK hh a",
			Date:    time.Date(2001, 7, 4, 13, 5, 0, 0, time.UTC),
			Want:    "13 13 01 01 PM",
		},
		{
			Pattern: "m:s.S mm:ss.SSS",
			Date:    time.Date(2001, 7, 4, 12, 8, 5, 35*int(time.Millisecond), time.UTC),
			Want:    "8:5.35 08:05.035",
		},
		{
			Pattern: "yyyy.MM.dd G 'at' HH:mm:ss Z",
			Date:    calendar.At(time.Date(2001, 7, 4, 19, 8, 56, 0, time.UTC), -420),
			Want:    "2001.07.04 AD at 12:08:56 -0700",
		},
		{
			Pattern: "EEE, MMM d, ''yy",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "Wed, Jul 4, '01",
		},
		{
			Pattern: "h:mm a",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "12:08 PM",
		},
		{
			Pattern: "hh 'o''clock' a",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "12 o'clock PM",
		},
		{
			Pattern: "K:mm a",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "0:08 PM",
		},
		{
			Pattern: "yyyyy.MMMMM.dd GGG hh:mm aaa",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "02001.July.04 AD 12:08 PM",
		},
		{
			Pattern: "EEE, d MMM yyyy HH:mm:ss Z",
			Date:    calendar.At(time.Date(2001, 7, 4, 19, 8, 56, 0, time.UTC), -420),
			Want:    "Wed, 4 Jul 2001 12:08:56 -0700",
		},
		{
			Pattern: "yyMMddHHmmssZ",
			Date:    calendar.At(time.Date(2001, 7, 4, 19, 8, 56, 0, time.UTC), -420),
			Want:    "010704120856-0700",
		},
		{
			Pattern: "yyyy-MM-dd'T'HH:mm:ss.SSSZ",
			Date:    calendar.At(time.Date(2001, 7, 4, 19, 8, 56, 235*int(time.Millisecond), time.UTC), -420),
			Want:    "2001-07-04T12:08:56.235-0700",
		},
		{
			Pattern: "yyyy-MM-dd'T'HH:mm:ss.SSSXXX",
			Date:    calendar.At(time.Date(2001, 7, 4, 19, 8, 56, 235*int(time.Millisecond), time.UTC), -420),
			Want:    "2001-07-04T12:08:56.235-07:00",
		},
		{
			Pattern: "X XX XXX",
			Date:    calendar.At(time.Date(2001, 7, 4, 12, 0, 0, 0, time.UTC), 0),
			Want:    "+00 +0000 +00:00",
		},
		{
			Pattern: "YYYY-'W'ww-u",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "2001-W27-3",
		},
		{
			Pattern: "'quoted text only'",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "quoted text only",
		},
		{
			Pattern: "'it''s' -- ''",
			Date:    time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC),
			Want:    "it's -- '",
		},
	}
	for _, c := range tests {
		f := New(c.Pattern)
		got, err := f.Format(c.Date)
		if err != nil {
			t.Errorf("%s: fail to format date (%v): %s", c.Pattern, c.Date, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s (%v): results mismatched! want %s - got %s", c.Pattern, c.Date, c.Want, got)
		}
	}
}

func TestFormatWeekRule(t *testing.T) {
	tests := []struct {
		Rule calendar.WeekRule
		Date time.Time
		Want string
	}{
		{
			Rule: calendar.ISO,
			Date: time.Date(1997, 12, 29, 0, 0, 0, 0, time.UTC),
			Want: "1998-W01-1 1997",
		},
		{
			Rule: calendar.US,
			Date: time.Date(1998, 1, 3, 0, 0, 0, 0, time.UTC),
			Want: "1998-W01-6 1998",
		},
		{
			Rule: calendar.ISO,
			Date: time.Date(2010, 1, 3, 0, 0, 0, 0, time.UTC),
			Want: "2009-W53-7 2010",
		},
	}
	for _, c := range tests {
		f := New("YYYY-'W'ww-u y", WithWeekRule(c.Rule))
		got, err := f.Format(c.Date)
		if err != nil {
			t.Errorf("%s: fail to format date: %s", c.Date, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s (%s): results mismatched! want %s - got %s", c.Date, c.Rule, c.Want, got)
		}
	}
}

func TestFormatLocale(t *testing.T) {
	cat, err := locale.Builtin()
	if err != nil {
		t.Fatalf("fail to load locales: %s", err)
	}
	tests := []struct {
		Locale  string
		Pattern string
		Want    string
	}{
		{
			Locale:  "fr",
			Pattern: "EEEE d MMMM yyyy G",
			Want:    "mercredi 4 juillet 2001 ap. J.-C.",
		},
		{
			Locale:  "de",
			Pattern: "EEE, d. MMM yyyy",
			Want:    "Mi., 4. Juli 2001",
		},
		{
			Locale:  "ru",
			Pattern: "d MMMM yyyy",
			Want:    "4 июля 2001",
		},
		{
			Locale:  "ru",
			Pattern: "LLLL yyyy",
			Want:    "июль 2001",
		},
		{
			Locale:  "de",
			Pattern: "LLL MMM",
			Want:    "Jul Juli",
		},
	}
	when := time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC)
	for _, c := range tests {
		loc, err := cat.Get(c.Locale)
		if err != nil {
			t.Errorf("%s: locale not found: %s", c.Locale, err)
			continue
		}
		got, err := New(c.Pattern, WithLocale(loc)).Format(when)
		if err != nil {
			t.Errorf("%s (%s): fail to format date: %s", c.Pattern, c.Locale, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s (%s): results mismatched! want %s - got %s", c.Pattern, c.Locale, c.Want, got)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		Pattern string
		Err     error
	}{
		{
			Pattern: "yyyy-MM-dd HH:mm z",
			Err:     ErrUnknownLetter,
		},
		{
			Pattern: "yyyy 'at HH",
			Err:     ErrUnterminatedQuote,
		},
		{
			Pattern: "",
			Err:     ErrMissingPattern,
		},
	}
	when := time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC)
	for _, c := range tests {
		got, err := New(c.Pattern).Format(when)
		if !errors.Is(err, c.Err) {
			t.Errorf("%s: error mismatched! want %v - got %v", c.Pattern, c.Err, err)
		}
		if got != "" {
			t.Errorf("%s: partial output returned: %s", c.Pattern, got)
		}
	}
}

func TestFormatLenient(t *testing.T) {
	when := time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC)
	got, err := New("yyyy-MM-dd zzz HH:mm", WithLenient()).Format(when)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := "2001-07-04  12:08"; got != want {
		t.Errorf("results mismatched! want %s - got %s", want, got)
	}
	_, err = New("yyyy 'at", WithLenient()).Format(when)
	if !errors.Is(err, ErrUnterminatedQuote) {
		t.Errorf("expected ErrUnterminatedQuote, got %v", err)
	}
}

func TestApplyPattern(t *testing.T) {
	var (
		f    = New("yyyy")
		when = time.Date(2001, 7, 4, 12, 8, 56, 0, time.UTC)
	)
	if err := f.ApplyPattern(""); !errors.Is(err, ErrMissingPattern) {
		t.Errorf("empty pattern: expected ErrMissingPattern, got %v", err)
	}
	if got, _ := f.Format(when); got != "2001" {
		t.Errorf("pattern changed by failed ApplyPattern: %s", got)
	}
	if err := f.ApplyPattern("dd/MM"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i := 0; i < 2; i++ {
		got, err := f.Format(when)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got != "04/07" {
			t.Errorf("results mismatched! want %s - got %s", "04/07", got)
		}
	}
	if err := f.ApplyPattern("yyyy q"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := f.Format(when); !errors.Is(err, ErrUnknownLetter) {
		t.Errorf("expected ErrUnknownLetter, got %v", err)
	}
}

func TestDefaultPattern(t *testing.T) {
	when := time.Date(2001, 7, 4, 13, 8, 56, 0, time.UTC)

	f := New("", WithDefaults(locale.DefaultPatterns))
	got, err := f.Format(when)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := "7/4/01 1:08 PM"; got != want {
		t.Errorf("en: results mismatched! want %s - got %s", want, got)
	}

	loc := locale.Default()
	loc.Name = "de_CH"
	f = New("", WithLocale(loc), WithDefaults(locale.DefaultPatterns))
	if got, _ = f.Format(when); got != "04.07.01 13:08" {
		t.Errorf("de_CH: results mismatched! want %s - got %s", "04.07.01 13:08", got)
	}
	if err := f.ApplyPattern("yyyy"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, _ = f.Format(when); got != "2001" {
		t.Errorf("explicit pattern not used! want %s - got %s", "2001", got)
	}

	_, err = New("", WithDefaults(locale.Patterns{})).Format(when)
	if !errors.Is(err, ErrMissingPattern) {
		t.Errorf("expected ErrMissingPattern, got %v", err)
	}
}

func TestFormatIdempotent(t *testing.T) {
	var (
		f    = New("yyyy-MM-dd'T'HH:mm:ss.SSSXXX 'week' w W F E")
		when = calendar.At(time.Date(2016, 2, 29, 23, 59, 59, 999*int(time.Millisecond), time.UTC), 330)
	)
	first, err := f.Format(when)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	second, _ := f.Format(when)
	if first != second {
		t.Errorf("results mismatched between calls! first %s - second %s", first, second)
	}
}

func TestLocalePattern(t *testing.T) {
	when := time.Date(2001, 7, 4, 13, 8, 56, 0, time.UTC)

	cat, err := locale.Builtin()
	if err != nil {
		t.Fatalf("fail to load builtin locales: %s", err)
	}
	fr, err := cat.Get("fr")
	if err != nil {
		t.Fatalf("fail to get locale: %s", err)
	}
	tests := []struct {
		Name    string
		Options []Option
		Want    string
	}{
		{
			Name:    "fr",
			Options: []Option{WithLocale(fr)},
			Want:    "04/07/01 13:08",
		},
		{
			Name:    "en",
			Options: []Option{WithLocale(locale.Default())},
			Want:    "7/4/01 1:08 PM",
		},
		{
			Name:    "table miss",
			Options: []Option{WithLocale(fr), WithDefaults(locale.Patterns{})},
			Want:    "04/07/01 13:08",
		},
		{
			Name:    "table first",
			Options: []Option{WithLocale(fr), WithDefaults(locale.Patterns{"fr": "yyyy"})},
			Want:    "2001",
		},
	}
	for _, c := range tests {
		got, err := New("", c.Options...).Format(when)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Name, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: results mismatched! want %s - got %s", c.Name, c.Want, got)
		}
	}

	loc := locale.Default()
	loc.Pattern = ""
	if _, err := New("", WithLocale(loc)).Format(when); !errors.Is(err, ErrMissingPattern) {
		t.Errorf("locale without pattern: expected ErrMissingPattern, got %v", err)
	}
}

func TestCompiledPattern(t *testing.T) {
	var (
		f    = New("yyyy")
		when = time.Date(2001, 7, 4, 13, 8, 56, 0, time.UTC)
	)
	if f.cache == nil || f.cache.pattern != "yyyy" {
		t.Fatalf("pattern not compiled when set")
	}
	f.pattern = "MM"
	got, err := f.Format(when)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "07" {
		t.Errorf("stale compiled pattern used! want %s - got %s", "07", got)
	}
}
