package payload

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber coerces v into a finite number, 0 when that is not possible.
// Text accepts a single decimal comma ("45,5") and ignores any character
// outside digits, '.' and '-' ("70%" is 70, "1.234,56" is 0).
func ToNumber(v Value) float64 {
	switch v.kind {
	case KindNumber:
		if isFinite(v.n) {
			return v.n
		}
		return 0
	case KindText:
		return textToNumber(v.s)
	default:
		return 0
	}
}

func textToNumber(s string) float64 {
	s = strings.Replace(s, ",", ".", 1)
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || !isFinite(f) {
		return 0
	}
	return f
}

// ToText renders v as display text. Absent and Null are empty, structured
// values use their JSON form.
func ToText(v Value) string {
	switch v.kind {
	case KindAbsent, KindNull:
		return ""
	case KindText:
		return v.s
	case KindNumber:
		return NumberString(v.n)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return formatTime(v.t)
	default:
		return v.JSON()
	}
}

// ClampPercent bounds f to [0, 100]. NaN is treated as 0.
func ClampPercent(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(100, f))
}

// ParseCount reads a counter that may be missing.
func ParseCount(v Value) float64 {
	if v.IsAbsent() {
		return 0
	}
	return ToNumber(v)
}

// Numeric is the strict number conversion used for counters such as likes.
// Unlike ToNumber it reports NaN for anything that is not a numeric literal:
// Absent is NaN, Null and "" are 0, booleans are 0 or 1, text must be a
// complete decimal, hex, octal or binary literal (or Infinity) after trimming,
// a sequence converts through its comma-joined text and a mapping is NaN.
func Numeric(v Value) float64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindNumber:
		return v.n
	case KindText:
		return stringToNumeric(v.s)
	case KindTime:
		return float64(v.t.UnixMilli())
	case KindSequence:
		return stringToNumeric(joinText(v))
	default:
		return math.NaN()
	}
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool { return isFinite(f) }

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func stringToNumeric(s string) float64 {
	s = strings.TrimFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\ufeff' })
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return radixToNumeric(s[2:], base)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	// Overflow yields ±Inf with ErrRange, which is the wanted result.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func radixToNumeric(digits string, base int) float64 {
	var f float64
	for _, r := range digits {
		var d int
		switch {
		case r >= '0' && r <= '9':
			d = int(r - '0')
		case r >= 'a' && r <= 'f':
			d = int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = int(r-'A') + 10
		default:
			return math.NaN()
		}
		if d >= base {
			return math.NaN()
		}
		f = f*float64(base) + float64(d)
	}
	return f
}

// joinText renders a sequence the way a list is flattened into text:
// elements joined by ",", Absent and Null elements as "".
func joinText(v Value) string {
	parts := make([]string, len(v.items))
	for i, item := range v.items {
		switch item.kind {
		case KindAbsent, KindNull:
			parts[i] = ""
		case KindSequence:
			parts[i] = joinText(item)
		case KindMapping:
			parts[i] = "[object Object]"
		default:
			parts[i] = ToText(item)
		}
	}
	return strings.Join(parts, ",")
}
