// Package transliteration converts Ukrainian and Russian file names to the
// Latin alphabet.
//
// Four variants are supported: Ukrainian and Russian, each under the
// Official (legal) or Extended (phonetic) standard. A name is split into its
// stem and extension, the stem into words (see Segment), and each word is
// transliterated letter by letter. A letter's Latin form depends only on the
// letter, its case and the letter before it in the same word.
//
// All functions are safe for concurrent use; the letter tables are never
// modified after package initialization.
package transliteration

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Translate returns the Latin form of a file base name under variant v. The
// extension is carried over untouched.
//
// It returns ErrNoCyrillic when nothing in the stem changes and an
// *UnsupportedLetterError when the stem mixes in letters of another
// Cyrillic alphabet.
func Translate(name string, v Variant) (string, error) {
	rs, ok := rulesets[v]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}

	stem, ext := SplitExtension(name)
	// Some file systems (APFS, HFS+) hand out decomposed names, where "й"
	// arrives as "и" plus a combining breve. Only the stem is normalized so
	// the extension keeps its exact bytes.
	stem = norm.NFC.String(stem)

	var b strings.Builder
	b.Grow(len(name))
	for _, word := range Segment(stem) {
		latin, err := rs.mapToken(word)
		if err != nil {
			return "", err
		}
		b.WriteString(latin)
	}

	if b.String() == stem {
		return "", ErrNoCyrillic
	}
	b.WriteString(ext)
	return b.String(), nil
}

// SplitExtension splits name at its last dot. The extension keeps the dot
// and is empty when name has none.
func SplitExtension(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i:]
}
