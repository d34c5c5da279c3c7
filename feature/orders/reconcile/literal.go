package reconcile

import (
	"strings"
	"unicode"
)

// literalConstants maps Python constants to their JSON spelling.
var literalConstants = map[string]string{
	"None":  "null",
	"True":  "true",
	"False": "false",
}

// literalToJSON rewrites a Python style literal (as printed by repr) into JSON.
// String delimiters become double quotes and None/True/False are replaced only
// outside string literals. It reports false for unterminated strings.
func literalToJSON(s string) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'' || r == '"':
			end, ok := writeString(&sb, runes, i)
			if !ok {
				return "", false
			}
			i = end
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			word := string(runes[i:j])
			if v, ok := literalConstants[word]; ok {
				word = v
			}
			sb.WriteString(word)
			i = j - 1
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String(), true
}

// writeString writes the string literal starting at runes[start] as a JSON
// string and returns the index of its closing delimiter.
func writeString(sb *strings.Builder, runes []rune, start int) (int, bool) {
	quote := runes[start]
	sb.WriteByte('"')

	for i := start + 1; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			i++
			next := runes[i]
			if next == '\'' {
				// \' is not a JSON escape
				sb.WriteRune('\'')
			} else {
				sb.WriteRune('\\')
				sb.WriteRune(next)
			}
		case r == quote:
			sb.WriteByte('"')
			return i, true
		case r == '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	return 0, false
}
