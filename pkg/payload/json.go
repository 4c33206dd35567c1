package payload

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	isoLayout = "2006-01-02T15:04:05.000Z"
	hexDigits = "0123456789abcdef"
)

// JSON returns the compact structural form of v.
// Mapping keys keep their order, Absent members are omitted, Absent elements
// and non-finite numbers are written as null. HTML characters are not escaped.
func (v Value) JSON() string {
	var sb strings.Builder
	writeJSON(&sb, v)
	return sb.String()
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.JSON()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func writeJSON(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			sb.WriteString("null")
			return
		}
		sb.WriteString(NumberString(v.n))
	case KindText:
		writeQuoted(sb, v.s)
	case KindTime:
		writeQuoted(sb, formatTime(v.t))
	case KindSequence:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSON(sb, item)
		}
		sb.WriteByte(']')
	case KindMapping:
		sb.WriteByte('{')
		first := true
		for _, f := range v.fields {
			if f.Value.IsAbsent() {
				continue
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			writeQuoted(sb, f.Key)
			sb.WriteByte(':')
			writeJSON(sb, f.Value)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("null")
	}
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteString("\ufffd")
		case r == '"':
			sb.WriteString(`\"`)
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '\b':
			sb.WriteString(`\b`)
		case r == '\f':
			sb.WriteString(`\f`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20:
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigits[r>>4])
			sb.WriteByte(hexDigits[r&0xf])
		default:
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	sb.WriteByte('"')
}

func formatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
