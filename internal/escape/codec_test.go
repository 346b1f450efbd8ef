package escape

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_QuotesAndNewline(t *testing.T) {
	got := Encode("He said \"hi\"\n")
	assert.Equal(t, `He said \"hi\"\n`, got)
}

func TestEncode_ControlCharacters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"backspace", "\b", `\b`},
		{"tab", "\t", `\t`},
		{"newline", "\n", `\n`},
		{"form feed", "\f", `\f`},
		{"carriage return", "\r", `\r`},
		{"nul", "\x00", `\u0000`},
		{"vertical tab", "\v", `\u000B`},
		{"unit separator", "\x1f", `\u001F`},
		{"escape", "\x1b", `\u001B`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncode_NonASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"delete stays literal", "\x7f", "\x7f"},
		{"latin-1", "é", `\u00E9`},
		{"above 0xFF", "Ā", `\u0100`},
		{"above 0xFFF", "€", `\u20AC`},
		{"cjk", "日本", `\u65E5\u672C`},
		{"surrogate pair", "😀", `\uD83D\uDE00`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncode_Variants(t *testing.T) {
	in := `it's a/b \ "c"`

	assert.Equal(t, `it's a/b \\ \"c\"`, Encode(in))
	assert.Equal(t, `it\'s a\/b \\ \"c\"`, EncodeJavaScript(in))
	assert.Equal(t, `it\'s a/b \\ \"c\"`, EncodeWith(in, Options{EscapeSingleQuote: true}))
	assert.Equal(t, `it's a\/b \\ \"c\"`, EncodeWith(in, Options{EscapeForwardSlash: true}))
}

func TestEncode_FixedWidthUnicode(t *testing.T) {
	in := "\x01\x1f\u0080\u00ff\u0100\u0fff\u1000\uffff\U0001F600"
	unicodeEscape := regexp.MustCompile(`\\u([0-9A-Fa-f]*)`)

	matches := unicodeEscape.FindAllStringSubmatch(Encode(in), -1)
	require.Len(t, matches, 10)
	for _, m := range matches {
		assert.Len(t, m[1], 4, "escape %q must carry exactly 4 hex digits", m[0])
	}
}

func TestDecode_Escapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "marko", "marko"},
		{"quotes", `\"hi\" \'there\'`, `"hi" 'there'`},
		{"backslash", `a\\b`, `a\b`},
		{"controls", `\b\f\n\r\t`, "\b\f\n\r\t"},
		{"unicode upper", `\u00E9`, "é"},
		{"unicode lower", `\u00e9`, "é"},
		{"surrogate pair", `\uD83D\uDE00`, "😀"},
		{"forward slash", `a\/b`, "a/b"},
		{"unknown escape drops backslash", `\q`, "q"},
		{"trailing backslash kept", `abc\`, `abc\`},
		{"only backslash", `\`, `\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_MalformedUnicode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		sequence string
	}{
		{"non-hex digit", `ab\u12G4`, `\u12G4`},
		{"truncated at end", `ab\u12`, `\u12`},
		{"bare u at end", `\u`, `\u`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			require.Error(t, err)
			assert.True(t, IsDecodeError(err))

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.sequence, de.Sequence)
		})
	}
}

func TestDecode_ErrorOffset(t *testing.T) {
	_, err := Decode(`ab\uZZZZ`)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Offset)
	assert.Contains(t, de.Error(), "offset 2")
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"marko",
		"He said \"hi\"\n",
		`C:\path\to\file`,
		"tab\there\r\nand\fform\bfeed",
		"\x00\x01\x1f\x7f",
		"it's a/b",
		"café 日本語 😀 €",
		"$name ${x}",
		`\u0041 literal`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			for _, opts := range []Options{{}, JavaScript} {
				got, err := Decode(EncodeWith(in, opts))
				require.NoError(t, err)
				assert.Equal(t, in, got)
			}
		})
	}
}

func TestEncode_OutputIsASCII(t *testing.T) {
	out := Encode("naïve ☃ 😀\u2028")
	for i := 0; i < len(out); i++ {
		assert.Less(t, out[i], byte(0x80), "byte %d of %q is not ASCII", i, out)
	}
}
