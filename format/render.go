package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/midbel/simpledate/locale"
)

// Render returns the text of a field value.
func Render(f FieldValue, loc *locale.Locale) (string, error) {
	var str strings.Builder
	if err := writeField(&str, f, loc); err != nil {
		return "", err
	}
	return str.String(), nil
}

func writeField(w *strings.Builder, f FieldValue, loc *locale.Locale) error {
	switch f.Kind {
	case KindText:
		w.WriteString(f.Text)
	case KindNumber:
		writeNumber(w, f.Number, f.Width)
	case KindYear:
		writeYear(w, f.Number, f.Width)
	case KindMonth:
		writeMonth(w, f, loc)
	case KindRFCZone:
		writeOffset(w, f.Number, false)
	case KindISOZone:
		writeISOOffset(w, f.Number, f.Width)
	default:
		return fmt.Errorf("%w: field kind %s", ErrUnsupportedField, f.Kind)
	}
	return nil
}

func writeNumber(w *strings.Builder, n, width int) {
	if n < 0 {
		w.WriteByte('-')
		n = -n
		width--
	}
	str := strconv.Itoa(n)
	for i := len(str); i < width; i++ {
		w.WriteByte('0')
	}
	w.WriteString(str)
}

func writeYear(w *strings.Builder, year, width int) {
	if width != 2 {
		writeNumber(w, year, width)
		return
	}
	str := strconv.Itoa(year)
	if len(str) > 2 {
		str = str[len(str)-2:]
	}
	w.WriteString(str)
}

func writeMonth(w *strings.Builder, f FieldValue, loc *locale.Locale) {
	switch {
	case f.Width <= 2:
		writeNumber(w, f.Number+1, f.Width)
	case f.Width == 3:
		w.WriteString(loc.Month(f.Number, false, f.Standalone))
	default:
		w.WriteString(loc.Month(f.Number, true, f.Standalone))
	}
}

func writeISOOffset(w *strings.Builder, offset, width int) {
	if width == 1 {
		writeSign(w, offset)
		writeNumber(w, abs(offset)/60, 2)
		return
	}
	writeOffset(w, offset, width >= 3)
}

func writeOffset(w *strings.Builder, offset int, colon bool) {
	writeSign(w, offset)
	offset = abs(offset)
	writeNumber(w, offset/60, 2)
	if colon {
		w.WriteByte(':')
	}
	writeNumber(w, offset%60, 2)
}

func writeSign(w *strings.Builder, offset int) {
	if offset < 0 {
		w.WriteByte('-')
	} else {
		w.WriteByte('+')
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
