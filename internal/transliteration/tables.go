package transliteration

// Tables are keyed by the uppercase letter and hold the capitalized Latin
// form; matchCase lowers it for lowercase input.
var (
	universalLetters = map[rune]string{
		'А': "A", 'Б': "B", 'В': "V", 'Д': "D", 'Е': "E",
		'Ж': "Zh", 'З': "Z", 'К': "K", 'Л': "L", 'М': "M",
		'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S",
		'Т': "T", 'У': "U", 'Ф': "F", 'Х': "Kh", 'Ц': "Ts",
		'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch", 'Ю': "Iu", 'Я': "Ia",
		'Ь': "", '\'': "", '’': "", 'ʼ': "",
	}

	ukrainianLetters = map[rune]string{
		'Г': "H", 'Ґ': "G", 'Є': "Ie", 'И': "Y",
		'І': "I", 'Ї': "I", 'Й': "I",
	}

	russianLetters = map[rune]string{
		'Г': "G", 'Ё': "Yo", 'Э': "E", 'И': "I",
		'Й': "Y", 'Ы': "Y", 'Ъ': "",
	}

	// ICAO-style passport rules.
	russianOfficialLetters = map[rune]string{
		'Г': "G", 'Ё': "E", 'Э': "E", 'И': "I",
		'Й': "I", 'Ы': "Y", 'Ъ': "Ie",
	}

	ukrainianSpecialLetters = map[rune]string{
		'Є': "Ye", 'Ї': "Yi", 'Й': "Y", 'Ю': "Yu", 'Я': "Ya",
	}

	russianSpecialLetters = map[rune]string{
		'Е': "Ye", 'Й': "Y", 'Ю': "Yu", 'Я': "Ya",
	}
)

var (
	vowels = runeSet('А', 'Е', 'Є', 'И', 'І', 'Ї', 'О', 'У', 'Ю', 'Я', 'Ы', 'Э', 'Ё')

	apostrophes = runeSet('\'', '’', 'ʼ')

	// Soft sign, hard sign and the apostrophes that play their role in
	// Ukrainian spelling.
	softSigns = runeSet('Ь', 'Ъ', '\'', '’', 'ʼ')

	sibilants = runeSet('Ж', 'Ш', 'Щ')
)

type set map[rune]struct{}

func runeSet(rs ...rune) set {
	s := make(set, len(rs))
	for _, r := range rs {
		s[r] = struct{}{}
	}
	return s
}

func (s set) has(r rune) bool {
	_, ok := s[r]
	return ok
}
