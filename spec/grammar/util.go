package grammar

import "strings"

// EscapePattern escapes the ASCII characters of s other than letters, digits and `_`, so that s
// matches itself as a regular expression. For example, EscapePattern(`<=`) returns `\<\=`.
func EscapePattern(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c >= 0x80:
		default:
			b.WriteRune('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
