package transliteration

import (
	"errors"
	"fmt"
)

// ErrNoCyrillic is returned when transliteration leaves the stem unchanged,
// meaning the name had nothing to convert.
var ErrNoCyrillic = errors.New("file name has no cyrillic letters")

// ErrUnknownVariant is returned for a language/standard pair outside the
// four supported variants.
var ErrUnknownVariant = errors.New("unknown transliteration variant")

// UnsupportedLetterError reports a Cyrillic letter the active language has no
// mapping for, e.g. a Russian "ы" in a name processed as Ukrainian.
type UnsupportedLetterError struct {
	Letter   rune
	Language Language
}

func (e *UnsupportedLetterError) Error() string {
	return fmt.Sprintf("letter %q is not part of the %s alphabet", e.Letter, e.Language.Name())
}
