package transliteration

import "unicode/utf8"

// Segment splits a name stem into words. Joining the result reproduces stem
// byte for byte, and the result is never empty. Bytes that are not valid
// UTF-8 stay inside the word they occur in.
func Segment(stem string) []string {
	if stem == "" {
		return []string{stem}
	}

	var words []string
	start := 0
	for i := 0; i < len(stem); {
		r, size := utf8.DecodeRuneInString(stem[i:])
		end := i + size
		boundary := IsSeparator(r)
		if !boundary && end < len(stem) {
			next, _ := utf8.DecodeRuneInString(stem[end:])
			boundary = IsCaseBoundary(next)
		}
		if boundary {
			words = append(words, stem[start:end])
			start = end
		}
		i = end
	}
	if start < len(stem) {
		words = append(words, stem[start:])
	}
	return words
}
