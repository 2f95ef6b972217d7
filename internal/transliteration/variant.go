package transliteration

import (
	"fmt"
	"strings"
)

type Language int

const (
	Ukrainian Language = iota
	Russian
)

// String returns the short code used on the command line.
func (l Language) String() string {
	switch l {
	case Ukrainian:
		return "ua"
	case Russian:
		return "ru"
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}

func (l Language) Name() string {
	switch l {
	case Ukrainian:
		return "Ukrainian"
	case Russian:
		return "Russian"
	default:
		return l.String()
	}
}

// Standard selects between the legal transliteration rules and the
// phonetic, sound-based ones.
type Standard int

const (
	Official Standard = iota
	Extended
)

func (s Standard) String() string {
	switch s {
	case Official:
		return "official"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("standard(%d)", int(s))
	}
}

// Variant is a (language, standard) pair selecting one rule set.
type Variant struct {
	Language Language
	Standard Standard
}

var (
	UAOfficial = Variant{Language: Ukrainian, Standard: Official}
	UAExtended = Variant{Language: Ukrainian, Standard: Extended}
	RUOfficial = Variant{Language: Russian, Standard: Official}
	RUExtended = Variant{Language: Russian, Standard: Extended}
)

// Variants lists every supported variant.
func Variants() []Variant {
	return []Variant{UAOfficial, UAExtended, RUOfficial, RUExtended}
}

func (v Variant) String() string {
	return v.Language.String() + "-" + v.Standard.String()
}

func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ua", "uk", "ukr", "ukrainian":
		return Ukrainian, nil
	case "ru", "rus", "russian":
		return Russian, nil
	default:
		return 0, fmt.Errorf("%w: language %q", ErrUnknownVariant, s)
	}
}

func ParseStandard(s string) (Standard, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "official", "o":
		return Official, nil
	case "extended", "e":
		return Extended, nil
	default:
		return 0, fmt.Errorf("%w: standard %q", ErrUnknownVariant, s)
	}
}

// ParseVariant builds a Variant from its command-line spelling, e.g.
// ("ua", "official").
func ParseVariant(lang, standard string) (Variant, error) {
	l, err := ParseLanguage(lang)
	if err != nil {
		return Variant{}, err
	}
	s, err := ParseStandard(standard)
	if err != nil {
		return Variant{}, err
	}
	return Variant{Language: l, Standard: s}, nil
}

// MapToken transliterates a single segmented token. Context never crosses
// token boundaries, so callers must pass whole tokens as produced by Segment.
func (v Variant) MapToken(token string) (string, error) {
	rs, ok := rulesets[v]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return rs.mapToken(token)
}
