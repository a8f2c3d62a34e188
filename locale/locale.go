package locale

import (
	"errors"
	"fmt"

	"github.com/midbel/simpledate/calendar"
)

var (
	ErrLocale   = errors.New("invalid locale")
	ErrNotFound = errors.New("locale not found")
)

const (
	Root    = ""
	English = "en"
)

type Months struct {
	Abbreviated [12]string
	Wide        [12]string
}

func (m Months) Name(month int, wide bool) string {
	if month < 0 || month >= len(m.Wide) {
		return ""
	}
	if wide {
		return m.Wide[month]
	}
	return m.Abbreviated[month]
}

// Days holds the weekday names indexed from Sunday.
type Days struct {
	Abbreviated [7]string
	Wide        [7]string
}

func (d Days) Name(day int, wide bool) string {
	if day < 0 || day >= len(d.Wide) {
		return ""
	}
	if wide {
		return d.Wide[day]
	}
	return d.Abbreviated[day]
}

// Locale is the text table and week rule used to render a date. Standalone
// month names are used for month letters that appear outside of a date
// context (L) while Months is used in context (M).
type Locale struct {
	Name       string
	Era        string
	Months     Months
	Standalone Months
	Days       Days
	AM         string
	PM         string
	Week       calendar.WeekRule
	Pattern    string
}

func (l *Locale) Month(month int, wide, standalone bool) string {
	if standalone {
		return l.Standalone.Name(month, wide)
	}
	return l.Months.Name(month, wide)
}

func (l *Locale) Weekday(day int, wide bool) string {
	return l.Days.Name(day, wide)
}

func (l *Locale) Meridiem(hour, minute int) string {
	if hour < 12 {
		return l.AM
	}
	return l.PM
}

func (l *Locale) Clone() *Locale {
	c := *l
	return &c
}

func (l *Locale) String() string {
	if l.Name == "" {
		return "root"
	}
	return l.Name
}

func (l *Locale) validate() error {
	for i, n := range l.Months.Wide {
		if n == "" || l.Months.Abbreviated[i] == "" {
			return fmt.Errorf("%w: %s: missing name for month %d", ErrLocale, l, i+1)
		}
	}
	for i, n := range l.Days.Wide {
		if n == "" || l.Days.Abbreviated[i] == "" {
			return fmt.Errorf("%w: %s: missing name for day %d", ErrLocale, l, i)
		}
	}
	return nil
}

// Default returns a copy of the English locale.
func Default() *Locale {
	return english.Clone()
}

var english = Locale{
	Name: English,
	Era:  "AD",
	Months: Months{
		Abbreviated: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Wide: [12]string{
			"January",
			"February",
			"March",
			"April",
			"May",
			"June",
			"July",
			"August",
			"September",
			"October",
			"November",
			"December",
		},
	},
	Standalone: Months{
		Abbreviated: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Wide: [12]string{
			"January",
			"February",
			"March",
			"April",
			"May",
			"June",
			"July",
			"August",
			"September",
			"October",
			"November",
			"December",
		},
	},
	Days: Days{
		Abbreviated: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Wide:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	},
	AM:      "AM",
	PM:      "PM",
	Week:    calendar.US,
	Pattern: "M/d/yy h:mm a",
}
