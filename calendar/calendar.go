package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrWeekday = errors.New("invalid weekday")

const secondsPerDay = 24 * 60 * 60

// WeekRule describes how the weeks of a year are numbered: the day a week
// starts on and how many days of the new year week 1 must contain.
type WeekRule struct {
	FirstDay time.Weekday
	MinDays  int
}

var (
	ISO = WeekRule{
		FirstDay: time.Monday,
		MinDays:  4,
	}
	US = WeekRule{
		FirstDay: time.Sunday,
		MinDays:  1,
	}
)

func (w WeekRule) normalize() WeekRule {
	w.FirstDay = time.Weekday((int(w.FirstDay)%7 + 7) % 7)
	if w.MinDays < 1 {
		w.MinDays = 1
	}
	if w.MinDays > 7 {
		w.MinDays = 7
	}
	return w
}

func (w WeekRule) String() string {
	return fmt.Sprintf("%s/%d", w.FirstDay, w.MinDays)
}

// Date is a snapshot of an instant from which every field a pattern can
// reference is derived. Fields are computed in the location of the instant.
type Date struct {
	when time.Time
	rule WeekRule
	day  int
}

func New(t time.Time, rule WeekRule) Date {
	y, m, d := t.Date()
	return Date{
		when: t,
		rule: rule.normalize(),
		day:  epochDay(y, m, d),
	}
}

// At returns t moved to a fixed zone offset minutes east of UTC.
func At(t time.Time, offset int) time.Time {
	return t.In(time.FixedZone("", offset*60))
}

func (d Date) Time() time.Time {
	return d.when
}

func (d Date) Rule() WeekRule {
	return d.rule
}

func (d Date) Year() int {
	return d.when.Year()
}

// WeekYear returns the year owning the week that contains d. It differs from
// Year for the first and last days of a calendar year.
func (d Date) WeekYear() int {
	year, _ := weekDate(d.Year(), d.day, d.rule)
	return year
}

// Month returns the zero based month.
func (d Date) Month() int {
	return int(d.when.Month()) - 1
}

func (d Date) Week() int {
	_, week := weekDate(d.Year(), d.day, d.rule)
	return week
}

func (d Date) WeekInMonth() int {
	var (
		y, m, _ = d.when.Date()
		first   = epochDay(y, m, 1)
		fy, fw  = weekDate(y, first, d.rule)
		_, curr = weekDate(y, d.day, d.rule)
	)
	if fw > curr {
		fw -= WeeksInYear(fy, d.rule)
	}
	return curr - fw + 1
}

func (d Date) DayOfYear() int {
	return d.when.YearDay()
}

func (d Date) Day() int {
	return d.when.Day()
}

// DayOfWeekInMonth counts how many times the weekday of d occurred in its
// month up to and including d.
func (d Date) DayOfWeekInMonth() int {
	var (
		count = 1
		month = d.when.Month()
		prev  = d.when
	)
	for {
		prev = prev.AddDate(0, 0, -7)
		if prev.Month() != month {
			break
		}
		count++
	}
	return count
}

// Weekday returns the weekday of d with Sunday as 0.
func (d Date) Weekday() int {
	return int(d.when.Weekday())
}

// ISOWeekday returns the weekday of d with Monday as 1 and Sunday as 7
// whatever the week rule.
func (d Date) ISOWeekday() int {
	if wd := d.when.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

func (d Date) Hour() int {
	return d.when.Hour()
}

func (d Date) Hour24() int {
	if h := d.when.Hour(); h != 0 {
		return h
	}
	return 24
}

func (d Date) Hour11() int {
	return d.when.Hour() % 12
}

func (d Date) Hour12() int {
	if h := d.when.Hour() % 12; h != 0 {
		return h
	}
	return 12
}

func (d Date) Minute() int {
	return d.when.Minute()
}

func (d Date) Second() int {
	return d.when.Second()
}

func (d Date) Millisecond() int {
	return d.when.Nanosecond() / int(time.Millisecond)
}

// Offset returns the offset of d to UTC in minutes.
func (d Date) Offset() int {
	_, secs := d.when.Zone()
	return secs / 60
}

// WeeksInYear returns the number of weeks of the given week year.
func WeeksInYear(year int, rule WeekRule) int {
	rule = rule.normalize()
	return (weekOneStart(year+1, rule) - weekOneStart(year, rule)) / 7
}

func ParseWeekday(str string) (time.Weekday, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if len(str) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			name := strings.ToLower(d.String())
			if strings.HasPrefix(name, str) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrWeekday, str)
}

func weekDate(year, day int, rule WeekRule) (int, int) {
	if next := weekOneStart(year+1, rule); day >= next {
		return year + 1, (day-next)/7 + 1
	}
	start := weekOneStart(year, rule)
	if day < start {
		year--
		start = weekOneStart(year, rule)
	}
	return year, (day-start)/7 + 1
}

func weekOneStart(year int, rule WeekRule) int {
	var (
		jan1   = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		offset = (int(jan1.Weekday()) - int(rule.FirstDay) + 7) % 7
		start  = epochDay(year, time.January, 1) - offset
	)
	if 7-offset < rule.MinDays {
		start += 7
	}
	return start
}

func epochDay(year int, month time.Month, day int) int {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return int(t.Unix() / secondsPerDay)
}
