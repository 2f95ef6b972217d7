package transliteration

import "unicode"

// IsSeparator reports whether r delimits words in a file name. The
// separator stays attached to the end of the word it closes.
func IsSeparator(r rune) bool {
	switch r {
	case '-', '–', '—', '−', ' ', '_', '.':
		return true
	}
	return false
}

// IsCaseBoundary reports whether a new word starts at next. No character is
// consumed: the split happens between the current rune and next.
func IsCaseBoundary(next rune) bool {
	return unicode.IsUpper(next)
}
