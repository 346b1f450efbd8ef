package escape

import (
	"strings"
	"unicode/utf16"
)

// Options selects the stricter escaping variants.
type Options struct {
	EscapeSingleQuote  bool
	EscapeForwardSlash bool
}

// JavaScript is the variant that also escapes ' and /.
var JavaScript = Options{EscapeSingleQuote: true, EscapeForwardSlash: true}

const hexDigits = "0123456789ABCDEF"

// Encode escapes s with the default (Java) variant.
func Encode(s string) string {
	return EncodeWith(s, Options{})
}

// EncodeJavaScript escapes s with both ' and / escaped.
func EncodeJavaScript(s string) string {
	return EncodeWith(s, JavaScript)
}

// EncodeWith escapes s using opts. It never fails: every code unit has a mapping.
func EncodeWith(s string, opts Options) string {
	var b strings.Builder
	b.Grow(len(s) * 2)

	for _, r := range s {
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			writeUnicode(&b, uint16(hi))
			writeUnicode(&b, uint16(lo))
			continue
		}
		encodeUnit(&b, uint16(r), opts)
	}

	return b.String()
}

func encodeUnit(b *strings.Builder, ch uint16, opts Options) {
	switch {
	case ch > 0x7F:
		writeUnicode(b, ch)
	case ch < 0x20:
		switch ch {
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			writeUnicode(b, ch)
		}
	default:
		switch ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			if opts.EscapeSingleQuote {
				b.WriteByte('\\')
			}
			b.WriteByte('\'')
		case '/':
			if opts.EscapeForwardSlash {
				b.WriteByte('\\')
			}
			b.WriteByte('/')
		default:
			b.WriteByte(byte(ch))
		}
	}
}

// writeUnicode writes \uXXXX, zero-padded to exactly four hex digits.
func writeUnicode(b *strings.Builder, ch uint16) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[ch>>12&0xF])
	b.WriteByte(hexDigits[ch>>8&0xF])
	b.WriteByte(hexDigits[ch>>4&0xF])
	b.WriteByte(hexDigits[ch&0xF])
}

// Decode reverses Encode (either variant).
//
// Recognized escapes are \" \' \\ \b \f \n \r \t and \uXXXX. Any other escaped
// character is emitted without its backslash, and a lone trailing backslash is
// kept as-is. A \u escape with fewer than four characters left or with a
// non-hex digit returns a *DecodeError.
func Decode(s string) (string, error) {
	units := make([]uint16, 0, len(s))
	emit := func(r rune) {
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			units = append(units, uint16(hi), uint16(lo))
			return
		}
		units = append(units, uint16(r))
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '\\' {
			emit(ch)
			continue
		}
		if i+1 == len(runes) {
			emit('\\')
			break
		}

		i++
		switch runes[i] {
		case 'b':
			emit('\b')
		case 'f':
			emit('\f')
		case 'n':
			emit('\n')
		case 'r':
			emit('\r')
		case 't':
			emit('\t')
		case 'u':
			unit, err := parseUnicode(runes, i+1)
			if err != nil {
				return "", err
			}
			units = append(units, unit)
			i += 4
		default:
			// covers \" \' \\ and unknown escapes alike
			emit(runes[i])
		}
	}

	return string(utf16.Decode(units)), nil
}

// parseUnicode reads the four hex digits starting at runes[start].
func parseUnicode(runes []rune, start int) (uint16, error) {
	end := start + 4
	if end > len(runes) {
		return 0, &DecodeError{
			Offset:   start - 2,
			Sequence: `\u` + string(runes[start:]),
			Reason:   "incomplete unicode escape",
		}
	}

	var v uint16
	for _, r := range runes[start:end] {
		d, ok := hexValue(r)
		if !ok {
			return 0, &DecodeError{
				Offset:   start - 2,
				Sequence: `\u` + string(runes[start:end]),
				Reason:   "invalid hex digit in unicode escape",
			}
		}
		v = v<<4 | d
	}
	return v, nil
}

func hexValue(r rune) (uint16, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint16(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint16(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint16(r-'A') + 10, true
	default:
		return 0, false
	}
}
