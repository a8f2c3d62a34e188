package format

import (
	"fmt"

	"github.com/midbel/simpledate/calendar"
	"github.com/midbel/simpledate/locale"
)

type Kind int8

const (
	KindText Kind = iota
	KindNumber
	KindYear
	KindMonth
	KindRFCZone
	KindISOZone
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindYear:
		return "year"
	case KindMonth:
		return "month"
	case KindRFCZone:
		return "rfc-timezone"
	case KindISOZone:
		return "iso-timezone"
	default:
		return "unknown"
	}
}

// FieldValue is the value of one pattern field, ready to be rendered. Number
// holds the numeric value (zero based for months, minutes for offsets) and
// Text the value of text fields.
type FieldValue struct {
	Kind       Kind
	Number     int
	Text       string
	Width      int
	Standalone bool
}

func textField(str string) FieldValue {
	return FieldValue{
		Kind: KindText,
		Text: str,
	}
}

func numberField(n, width int) FieldValue {
	return FieldValue{
		Kind:   KindNumber,
		Number: n,
		Width:  width,
	}
}

func yearField(n, width int) FieldValue {
	return FieldValue{
		Kind:   KindYear,
		Number: n,
		Width:  width,
	}
}

func monthField(n, width int, standalone bool) FieldValue {
	return FieldValue{
		Kind:       KindMonth,
		Number:     n,
		Width:      width,
		Standalone: standalone,
	}
}

func zoneField(kind Kind, offset, width int) FieldValue {
	return FieldValue{
		Kind:   kind,
		Number: offset,
		Width:  width,
	}
}

// Resolve returns the value of the field identified by letter for the given
// date.
func Resolve(d calendar.Date, letter byte, width int, loc *locale.Locale) (FieldValue, error) {
	switch letter {
	case 'G':
		return textField(loc.Era), nil
	case 'y':
		return yearField(d.Year(), width), nil
	case 'Y':
		return yearField(d.WeekYear(), width), nil
	case 'M':
		return monthField(d.Month(), width, false), nil
	case 'L':
		return monthField(d.Month(), width, true), nil
	case 'w':
		return numberField(d.Week(), width), nil
	case 'W':
		return numberField(d.WeekInMonth(), width), nil
	case 'D':
		return numberField(d.DayOfYear(), width), nil
	case 'd':
		return numberField(d.Day(), width), nil
	case 'F':
		return numberField(d.DayOfWeekInMonth(), width), nil
	case 'E':
		return textField(loc.Weekday(d.Weekday(), width > 3)), nil
	case 'u':
		return numberField(d.ISOWeekday(), width), nil
	case 'a':
		return textField(loc.Meridiem(d.Hour(), d.Minute())), nil
	case 'H':
		return numberField(d.Hour(), width), nil
	case 'k':
		return numberField(d.Hour24(), width), nil
	case 'K':
		return numberField(d.Hour11(), width), nil
	case 'h':
		return numberField(d.Hour12(), width), nil
	case 'm':
		return numberField(d.Minute(), width), nil
	case 's':
		return numberField(d.Second(), width), nil
	case 'S':
		return numberField(d.Millisecond(), width), nil
	case 'Z':
		return zoneField(KindRFCZone, d.Offset(), width), nil
	case 'X':
		return zoneField(KindISOZone, d.Offset(), width), nil
	default:
		return FieldValue{}, fmt.Errorf("%w: %c", ErrUnsupportedField, letter)
	}
}
