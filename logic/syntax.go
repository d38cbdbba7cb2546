package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func firstRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size < 2 {
		return 0, false
	}
	return r, true
}

func isIdent(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isIdents(text string) bool {
	for _, ch := range text {
		if !isIdent(ch) {
			return false
		}
	}
	return true
}

func isVarFirst(ch rune) bool {
	return ch == '_' || unicode.IsUpper(ch)
}

// IsVar returns whether text is a valid variable name.
func IsVar(text string) bool {
	ch, ok := firstRune(text)
	if !ok || !isVarFirst(ch) {
		return false
	}
	return isIdents(text)
}

// IsInt returns whether text is made only of decimal digits.
func IsInt(text string) bool {
	if text == "" {
		return false
	}
	for _, ch := range text {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}

var escapeChars = map[rune]string{
	' ':  " ",
	'\n': "\\n",
	'\t': "\\t",
	'\v': "\\v",
	'\f': "\\f",
	'\r': "\\r",
	',':  ",",
	'(':  "(",
	')':  ")",
	'[':  "[",
	']':  "]",
	'"':  "\\\"",
	'\\': "\\\\",
	'_':  "_",
}

// FormatAtom returns the atom text, quoted if it could be mistaken for
// another kind of term.
func FormatAtom(text string) string {
	var hasEscape bool
	for _, ch := range text {
		if _, ok := escapeChars[ch]; ok {
			hasEscape = true
			break
		}
	}
	if !(hasEscape || text == "" || IsVar(text) || IsInt(text)) {
		return text
	}
	var b strings.Builder
	b.WriteRune('"')
	for _, ch := range text {
		if exp, ok := escapeChars[ch]; ok {
			b.WriteString(exp)
		} else {
			b.WriteRune(ch)
		}
	}
	b.WriteRune('"')
	return b.String()
}
