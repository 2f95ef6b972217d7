package transliteration

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule overrides the table lookup for one letter. prev is the rune before
// cur in the same word, or 0 at the start of a word. Both are uppercased.
type rule struct {
	name  string
	match func(rs *ruleset, prev, cur rune) bool
	latin func(rs *ruleset, cur rune) string
}

// ruleset is the immutable letter mapping of one variant. Rules are tried in
// order; the first match wins, otherwise overrides and then the universal
// table are consulted.
type ruleset struct {
	language  Language
	overrides map[rune]string
	special   map[rune]string
	rules     []rule
}

// specialLetterRule picks the iotated digraph (Ye, Yi, Yu, Ya) at the start
// of a word and after a vowel or soft sign.
var specialLetterRule = rule{
	name: "special-letter",
	match: func(rs *ruleset, prev, cur rune) bool {
		if _, ok := rs.special[cur]; !ok {
			return false
		}
		return prev == 0 || vowels.has(prev) || softSigns.has(prev)
	},
	latin: func(rs *ruleset, cur rune) string {
		return rs.special[cur]
	},
}

// zghRule keeps "зг" from reading as "zh".
var zghRule = rule{
	name: "zgh",
	match: func(_ *ruleset, prev, cur rune) bool {
		return cur == 'Г' && prev == 'З'
	},
	latin: func(*ruleset, rune) string { return "Gh" },
}

// sibilantRule renders "и" as "y" after ж, ш and щ.
var sibilantRule = rule{
	name: "sibilant-i",
	match: func(_ *ruleset, prev, cur rune) bool {
		return cur == 'И' && sibilants.has(prev)
	},
	latin: func(*ruleset, rune) string { return "Y" },
}

var rulesets = map[Variant]*ruleset{
	UAOfficial: {
		language:  Ukrainian,
		overrides: ukrainianLetters,
		special:   ukrainianSpecialLetters,
		rules:     []rule{specialLetterRule, zghRule},
	},
	UAExtended: {
		language:  Ukrainian,
		overrides: ukrainianLetters,
		special:   ukrainianSpecialLetters,
		rules:     []rule{specialLetterRule, zghRule},
	},
	RUOfficial: {
		language:  Russian,
		overrides: russianOfficialLetters,
	},
	RUExtended: {
		language:  Russian,
		overrides: russianLetters,
		special:   russianSpecialLetters,
		rules:     []rule{specialLetterRule, sibilantRule},
	},
}

func (rs *ruleset) mapToken(token string) (string, error) {
	var b strings.Builder
	b.Grow(len(token))

	var prev rune
	for i := 0; i < len(token); {
		r, size := utf8.DecodeRuneInString(token[i:])
		if isLetter(prev, r) {
			latin, err := rs.mapLetter(prev, r)
			if err != nil {
				return "", err
			}
			b.WriteString(latin)
		} else {
			// Copied as bytes so invalid UTF-8 is not replaced with U+FFFD.
			b.WriteString(token[i : i+size])
		}
		prev = unicode.ToUpper(r)
		i += size
	}
	return b.String(), nil
}

func (rs *ruleset) mapLetter(prev, r rune) (string, error) {
	cur := unicode.ToUpper(r)
	for _, rl := range rs.rules {
		if rl.match(rs, prev, cur) {
			return matchCase(r, rl.latin(rs, cur)), nil
		}
	}
	if latin, ok := rs.overrides[cur]; ok {
		return matchCase(r, latin), nil
	}
	if latin, ok := universalLetters[cur]; ok {
		return matchCase(r, latin), nil
	}
	return "", &UnsupportedLetterError{Letter: r, Language: rs.language}
}

// isLetter reports whether r takes part in transliteration. Apostrophes only
// count inside Cyrillic words, so "don't" is left alone.
func isLetter(prev, r rune) bool {
	if unicode.Is(unicode.Cyrillic, r) {
		return true
	}
	return apostrophes.has(r) && unicode.Is(unicode.Cyrillic, prev)
}

// matchCase capitalizes latin when src is uppercase and lowercases it
// entirely otherwise.
func matchCase(src rune, latin string) string {
	if latin == "" {
		return ""
	}
	lower := strings.ToLower(latin)
	if !unicode.IsUpper(src) {
		return lower
	}
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(first)) + lower[size:]
}
