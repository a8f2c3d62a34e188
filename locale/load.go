package locale

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	sax "github.com/midbel/codecs/xml"
	"github.com/midbel/simpledate/calendar"
)

const (
	ctxFormat     = "format"
	ctxStandalone = "stand-alone"

	widthAbbreviated = "abbreviated"
	widthWide        = "wide"
)

// LoadFile reads a locale definition from the XML file at name.
func LoadFile(name string) (*Locale, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Load(r)
}

// Load reads a locale definition from r. Tables absent from the document are
// taken from the English locale; absent standalone month tables are copied
// from the format ones.
func Load(r io.Reader) (*Locale, error) {
	rs := localeReader{
		reader: sax.NewReader(r),
		locale: Default(),
	}
	rs.locale.Name = ""
	rs.locale.Pattern = ""
	return rs.Read()
}

type localeReader struct {
	reader *sax.Reader
	locale *Locale

	standalone map[string]bool
}

func (r *localeReader) Read() (*Locale, error) {
	r.standalone = make(map[string]bool)

	r.reader.Element(sax.LocalName("locale"), r.onLocale)
	r.reader.Element(sax.LocalName("week"), r.onWeek)
	r.reader.Element(sax.LocalName("era"), r.onEra)
	r.reader.Element(sax.LocalName("months"), r.onMonths)
	r.reader.Element(sax.LocalName("days"), r.onDays)
	r.reader.Element(sax.LocalName("dayPeriod"), r.onDayPeriod)
	r.reader.Element(sax.LocalName("defaultPattern"), r.onPattern)
	if err := r.reader.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLocale, err)
	}
	if !r.standalone[widthAbbreviated] {
		r.locale.Standalone.Abbreviated = r.locale.Months.Abbreviated
	}
	if !r.standalone[widthWide] {
		r.locale.Standalone.Wide = r.locale.Months.Wide
	}
	if err := r.locale.validate(); err != nil {
		return nil, err
	}
	return r.locale, nil
}

func (r *localeReader) onLocale(_ *sax.Reader, el sax.E) error {
	r.locale.Name = el.GetAttributeValue("name")
	if r.locale.Name == "" {
		return fmt.Errorf("locale name is missing")
	}
	return nil
}

func (r *localeReader) onWeek(_ *sax.Reader, el sax.E) error {
	if str := el.GetAttributeValue("firstDay"); str != "" {
		day, err := calendar.ParseWeekday(str)
		if err != nil {
			return err
		}
		r.locale.Week.FirstDay = day
	}
	if str := el.GetAttributeValue("minDays"); str != "" {
		n, err := strconv.Atoi(str)
		if err != nil || n < 1 || n > 7 {
			return fmt.Errorf("%s: invalid minimal days in first week", str)
		}
		r.locale.Week.MinDays = n
	}
	return nil
}

func (r *localeReader) onEra(rs *sax.Reader, el sax.E) error {
	return r.readText(rs, el, func(str string) error {
		r.locale.Era = str
		return nil
	})
}

func (r *localeReader) onPattern(rs *sax.Reader, el sax.E) error {
	return r.readText(rs, el, func(str string) error {
		r.locale.Pattern = str
		return nil
	})
}

func (r *localeReader) onDayPeriod(rs *sax.Reader, el sax.E) error {
	var target *string
	switch kind := el.GetAttributeValue("type"); kind {
	case "am":
		target = &r.locale.AM
	case "pm":
		target = &r.locale.PM
	default:
		return fmt.Errorf("%s: unsupported day period", kind)
	}
	return r.readText(rs, el, func(str string) error {
		*target = str
		return nil
	})
}

func (r *localeReader) onMonths(rs *sax.Reader, el sax.E) error {
	var (
		months  *Months
		context = el.GetAttributeValue("context")
		width   = el.GetAttributeValue("width")
	)
	if width == "" {
		width = widthWide
	}
	switch context {
	case "", ctxFormat:
		months = &r.locale.Months
	case ctxStandalone:
		months = &r.locale.Standalone
		r.standalone[width] = true
	default:
		return fmt.Errorf("%s: unsupported month context", context)
	}
	names, err := selectWidth(months.Abbreviated[:], months.Wide[:], width)
	if err != nil {
		return err
	}
	rs.Element(sax.LocalName("month"), func(rs *sax.Reader, el sax.E) error {
		ix, err := strconv.Atoi(el.GetAttributeValue("type"))
		if err != nil || ix < 1 || ix > len(names) {
			return fmt.Errorf("%s: invalid month", el.GetAttributeValue("type"))
		}
		return r.readText(rs, el, func(str string) error {
			names[ix-1] = str
			return nil
		})
	})
	return nil
}

func (r *localeReader) onDays(rs *sax.Reader, el sax.E) error {
	width := el.GetAttributeValue("width")
	if width == "" {
		width = widthWide
	}
	names, err := selectWidth(r.locale.Days.Abbreviated[:], r.locale.Days.Wide[:], width)
	if err != nil {
		return err
	}
	rs.Element(sax.LocalName("day"), func(rs *sax.Reader, el sax.E) error {
		day, err := calendar.ParseWeekday(el.GetAttributeValue("type"))
		if err != nil {
			return err
		}
		return r.readText(rs, el, func(str string) error {
			names[day] = str
			return nil
		})
	})
	return nil
}

func (r *localeReader) readText(rs *sax.Reader, el sax.E, fn func(string) error) error {
	if el.SelfClosed {
		return nil
	}
	rs.OnText(func(_ *sax.Reader, str string) error {
		return fn(strings.TrimSpace(str))
	})
	return nil
}

func selectWidth(abbr, wide []string, width string) ([]string, error) {
	switch width {
	case widthAbbreviated:
		return abbr, nil
	case widthWide:
		return wide, nil
	default:
		return nil, fmt.Errorf("%s: unsupported width", width)
	}
}
