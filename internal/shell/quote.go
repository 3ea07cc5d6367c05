package shell

import "strings"

// BashEscape escapes a string for use inside bash or zsh double quotes.
// Backslash, double quote, dollar and backtick are escaped, and control
// characters newline, carriage return and tab are written as \n, \r, \t.
func BashEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 10)

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '`':
			b.WriteString("\\`")
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FishEscape escapes a string for use inside fish single quotes, where only
// the single quote and the backslash are special.
func FishEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 10)

	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
