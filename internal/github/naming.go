package github

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatProjectName turns a repository name into a start-cased display name:
// "lift-sim" -> "Lift Sim", "MNK-TicTacToe" -> "MNK Tic Tac Toe".
func FormatProjectName(repoName string) string {
	words := splitWords(repoName)
	// Casers are stateful, so each call gets its own.
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, " ")
}

// Capitalise upper-cases the first rune of s.
func Capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// splitWords breaks s at separators, lower/upper transitions, acronym ends
// ("ATel" -> "A", "Tel") and letter/digit boundaries.
func splitWords(s string) []string {
	rs := []rune(s)
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(r) && unicode.IsLower(prev):
				flush()
			case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
