package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// layout is the result of compiling a pattern: the Go layout and the kinds
// of field it carries.
type layout struct {
	text      string
	hasDate   bool
	hasZone   bool
	hasAbbrev bool
}

// compile converts a pattern of java.time-style letters into a Go layout.
// Supported letters:
//
//	y     year (yy: two digits)
//	M     month (M, MM, MMM name, MMMM full name)
//	d     day of month (d, dd)
//	D     day of year (three digits)
//	E     day of week (E..EEE name, EEEE full name)
//	H     hour of day 0-23 (two digits)
//	h     clock hour 1-12 (h, hh)
//	a     AM/PM marker
//	m     minute (m, mm)
//	s     second (s, ss)
//	S     fraction of second; must follow '.' or ','
//	Z     offset (Z: -0700, ZZ: -07:00)
//	X     offset with Z for UTC (X: Z07, XX: Z0700, XXX: Z07:00)
//	z     zone abbreviation
//
// Text in single quotes is literal and '' is a single quote. Other letters
// are reserved and return an error wrapping [ErrPattern], as do literals
// that Go would read as layout elements and adjacent fields that Go would
// read as a different element, such as "Ms" (Go "15", the hour).
func compile(pattern string) (*layout, error) {
	lay := &layout{}
	var b strings.Builder
	runes := []rune(pattern)
	pieces := []string{}

	for i := 0; i < len(runes); {
		ch := runes[i]

		// Quoted literal.
		if ch == '\'' {
			lit, next, err := quoted(pattern, runes, i)
			if err != nil {
				return nil, err
			}
			if err := writeLiteral(&b, pattern, lit); err != nil {
				return nil, err
			}
			pieces = append(pieces, lit)
			i = next
			continue
		}

		// Unquoted literal.
		if !isPatternLetter(ch) {
			j := i
			for j < len(runes) && !isPatternLetter(runes[j]) && runes[j] != '\'' {
				j++
			}
			lit := string(runes[i:j])
			if err := writeLiteral(&b, pattern, lit); err != nil {
				return nil, err
			}
			pieces = append(pieces, lit)
			i = j
			continue
		}

		// Run of a pattern letter.
		n := 1
		for i+n < len(runes) && runes[i+n] == ch {
			n++
		}
		elem, err := element(pattern, ch, n, b.String())
		if err != nil {
			return nil, err
		}
		b.WriteString(elem)

		// Go reads a fraction only with its separator.
		if ch == 'S' {
			last := pieces[len(pieces)-1]
			pieces[len(pieces)-1] = last[:len(last)-1]
			elem = last[len(last)-1:] + elem
		}
		pieces = append(pieces, elem)

		switch ch {
		case 'y', 'M', 'd', 'D', 'E':
			lay.hasDate = true
		case 'Z', 'X':
			lay.hasZone = true
		case 'z':
			lay.hasZone = true
			lay.hasAbbrev = true
		}
		i += n
	}

	lay.text = b.String()
	if err := checkJoined(pattern, lay.text, pieces); err != nil {
		return nil, err
	}
	return lay, nil
}

// checkJoined returns an error if text formats differently than its pieces
// formatted one at a time, meaning Go reads adjacent pieces as some other
// element.
func checkJoined(pattern, text string, pieces []string) error {
	for _, ref := range []time.Time{refTime1, refTime2} {
		var want strings.Builder
		for _, p := range pieces {
			want.WriteString(ref.Format(p))
		}
		if ref.Format(text) != want.String() {
			return fmt.Errorf("%w: adjacent fields in %q are ambiguous", ErrPattern, pattern)
		}
	}
	return nil
}

// isPatternLetter returns true for ASCII letters, all of which are reserved
// as pattern letters.
func isPatternLetter(ch rune) bool {
	return ch < unicode.MaxASCII && unicode.IsLetter(ch)
}

// quoted scans the quoted literal starting at runes[start] and returns its
// text and the index following the closing quote.
func quoted(pattern string, runes []rune, start int) (string, int, error) {
	// '' outside quotes is a literal quote.
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return "'", start + 2, nil
	}

	var b strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] != '\'' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("%w: unterminated quote in %q", ErrPattern, pattern)
}

// Reference times that differ in every field, used to detect literal text
// that Go would interpret as a layout element.
var (
	refTime1 = time.Date(2009, 11, 17, 20, 34, 58, 651387237, time.FixedZone("XYZ", 5*60*60))
	refTime2 = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
)

// writeLiteral writes lit to b. Returns an error if lit contains digits or
// any other text that Go would read as a layout element.
func writeLiteral(b *strings.Builder, pattern, lit string) error {
	if strings.ContainsAny(lit, "0123456789") ||
		refTime1.Format(lit) != lit || refTime2.Format(lit) != lit {
		return fmt.Errorf("%w: literal %q in %q is ambiguous", ErrPattern, lit, pattern)
	}
	b.WriteString(lit)
	return nil
}

// element returns the Go layout element for n repetitions of the pattern
// letter ch. prev is the layout compiled so far.
func element(pattern string, ch rune, n int, prev string) (string, error) {
	switch ch {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		return pick(n, "1", "01", "Jan", "January"), nil
	case 'd':
		return pick(n, "2", "02"), nil
	case 'D':
		return "002", nil
	case 'E':
		if n >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'H':
		return "15", nil
	case 'h':
		return pick(n, "3", "03"), nil
	case 'a':
		return "PM", nil
	case 'm':
		return pick(n, "4", "04"), nil
	case 's':
		return pick(n, "5", "05"), nil
	case 'S':
		if !strings.HasSuffix(prev, ".") && !strings.HasSuffix(prev, ",") {
			return "", fmt.Errorf(
				"%w: fraction of second in %q must follow '.' or ','",
				ErrPattern, pattern,
			)
		}
		return strings.Repeat("0", n), nil
	case 'Z':
		if n > 2 {
			break
		}
		return pick(n, "-0700", "-07:00"), nil
	case 'X':
		if n > 3 {
			break
		}
		return pick(n, "Z07", "Z0700", "Z07:00"), nil
	case 'z':
		return "MST", nil
	default:
		return "", fmt.Errorf("%w: unknown pattern letter %q in %q", ErrPattern, ch, pattern)
	}
	return "", fmt.Errorf(
		"%w: too many pattern letters %q in %q",
		ErrPattern, strings.Repeat(string(ch), n), pattern,
	)
}

// pick returns the element in elems for n repetitions, using the last
// element for longer runs.
func pick(n int, elems ...string) string {
	if n > len(elems) {
		return elems[len(elems)-1]
	}
	return elems[n-1]
}

// inspect reports the kinds of field a raw Go layout carries by formatting
// reference times that differ only in date, only in zone, or only in zone
// name.
func inspect(text string) *layout {
	out := refTime1.Format(text)
	otherZone := time.Date(2009, 11, 17, 20, 34, 58, 651387237, time.FixedZone("ABC", -3*60*60))
	otherName := time.Date(2009, 11, 17, 20, 34, 58, 651387237, time.FixedZone("ABC", 5*60*60))
	return &layout{
		text:      text,
		hasDate:   refTime1.AddDate(1, 1, 1).Format(text) != out,
		hasZone:   otherZone.Format(text) != out,
		hasAbbrev: otherName.Format(text) != out,
	}
}
