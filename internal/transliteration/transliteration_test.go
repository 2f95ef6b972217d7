package transliteration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateUkrainian(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Єва", "Yeva"},
		{"Надія", "Nadiya"},
		{"Ілля", "Illia"},
		{"згода", "zghoda"},
		{"Розгон", "Rozghon"},
		{"сім'я", "simya"},
		{"сім’я", "simya"},
		{"Соломʼя", "Solomya"},
		{"Їжак", "Yizhak"},
		{"Щастя", "Shchastia"},
		{"Житомир", "Zhytomyr"},
		{"ЖИТОМИР", "ZhYTOMYR"},
		{"Гарбуз", "Harbuz"},
		{"Ґанок", "Ganok"},
		{"Йосип", "Yosyp"},
		{"Андрій", "Andriy"},
		{"Львів", "Lviv"},
		{"Приєднання", "Pryyednannia"},
		{"Мій файл.txt", "Miy fayl.txt"},
		{"ЩоДня.docx", "ShchoDnia.docx"},
		{"звіт.2023.xlsx", "zvit.2023.xlsx"},
		{"фото_2023-01-01.jpeg", "foto_2023-01-01.jpeg"},
	}
	for _, v := range []Variant{UAOfficial, UAExtended} {
		for _, tt := range tests {
			got, err := Translate(tt.input, v)
			require.NoError(t, err, "%s: Translate(%q)", v, tt.input)
			assert.Equal(t, tt.want, got, "%s: Translate(%q)", v, tt.input)
		}
	}
}

func TestTranslateRussianExtended(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"сертификат-Для-ВПО.pdf", "sertifikat-Dlia-VPO.pdf"},
		{"Жизнь", "Zhyzn"},
		{"Шишка", "Shyshka"},
		{"Щи", "Shchy"},
		{"Ель", "Yel"},
		{"Юля", "Yulia"},
		{"объявление", "obyavleniye"},
		{"ёлка", "yolka"},
		{"Эхо", "Ekho"},
		{"Гоша", "Gosha"},
		{"Йод", "Yod"},
		{"мой отчёт.odt", "moy otchyot.odt"},
	}
	for _, tt := range tests {
		got, err := Translate(tt.input, RUExtended)
		require.NoError(t, err, "Translate(%q)", tt.input)
		assert.Equal(t, tt.want, got, "Translate(%q)", tt.input)
	}
}

func TestTranslateRussianExtendedHardSign(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"подъезд", "podyezd"},
		{"съёмка", "syomka"},
		{"ОБЪЁМ", "OBYoM"},
		{"Объявление", "Obyavleniye"},
	}
	for _, tt := range tests {
		got, err := Translate(tt.input, RUExtended)
		require.NoError(t, err, "Translate(%q)", tt.input)
		assert.Equal(t, tt.want, got, "Translate(%q)", tt.input)
	}
}

func TestTranslateRussianOfficial(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"сертификат-Для-ВПО.pdf", "sertifikat-Dlia-VPO.pdf"},
		{"объявление", "obieiavlenie"},
		{"Ёжик", "Ezhik"},
		{"Щука", "Shchuka"},
		{"Юля", "Iulia"},
		{"Жизнь", "Zhizn"},
		{"Йод", "Iod"},
		{"Эхо", "Ekho"},
		{"Ель", "El"},
		{"Мой отчёт.odt", "Moi otchet.odt"},
	}
	for _, tt := range tests {
		got, err := Translate(tt.input, RUOfficial)
		require.NoError(t, err, "Translate(%q)", tt.input)
		assert.Equal(t, tt.want, got, "Translate(%q)", tt.input)
	}
}

func TestTranslateCaseBoundaryResetsContext(t *testing.T) {
	// "з" and "Г" land in different words, so the zgh rule does not apply.
	got, err := Translate("зГаньба", UAOfficial)
	require.NoError(t, err)
	assert.Equal(t, "zHanba", got)

	got, err = Translate("зганьба", UAOfficial)
	require.NoError(t, err)
	assert.Equal(t, "zghanba", got)
}

func TestTranslateKeepsExtension(t *testing.T) {
	for _, v := range Variants() {
		got, err := Translate("фото.JPG", v)
		require.NoError(t, err, v.String())
		assert.Equal(t, "foto.JPG", got, v.String())
	}
}

func TestTranslateDecomposedInput(t *testing.T) {
	// "й" as "и" followed by U+0306 COMBINING BREVE.
	got, err := Translate("Андрі\u0438\u0306.txt", UAExtended)
	require.NoError(t, err)
	assert.Equal(t, "Andriy.txt", got)
}

func TestTranslateKeepsExtensionBytes(t *testing.T) {
	got, err := Translate("фото.e\u0301", UAOfficial)
	require.NoError(t, err)
	assert.Equal(t, "foto.e\u0301", got)

	got, err = Translate("Андрі\u0438\u0306.txt\u0306", UAExtended)
	require.NoError(t, err)
	assert.Equal(t, "Andriy.txt\u0306", got)
}

func TestTranslateInvalidUTF8(t *testing.T) {
	for _, v := range Variants() {
		_, err := Translate("caf\xe9.txt", v)
		assert.ErrorIs(t, err, ErrNoCyrillic, v.String())

		_, err = Translate("\xff\xfe", v)
		assert.ErrorIs(t, err, ErrNoCyrillic, v.String())
	}

	got, err := Translate("фото\xe9_Мама.t\xfft", UAOfficial)
	require.NoError(t, err)
	assert.Equal(t, "foto\xe9_Mama.t\xfft", got)
}

func TestTranslateNoCyrillic(t *testing.T) {
	inputs := []string{"photo.jpg", "", "a", ".bashrc", "don't.txt", "README", "2023-01-01 12.00.00.png"}
	for _, v := range Variants() {
		for _, input := range inputs {
			_, err := Translate(input, v)
			assert.ErrorIs(t, err, ErrNoCyrillic, "%s: Translate(%q)", v, input)
		}
	}
}

func TestTranslateUnsupportedLetter(t *testing.T) {
	tests := []struct {
		input   string
		variant Variant
		letter  rune
	}{
		{"мы.txt", UAOfficial, 'ы'},
		{"ёлка", UAExtended, 'ё'},
		{"Эхо", UAOfficial, 'Э'},
		{"объява", UAExtended, 'ъ'},
		{"їжак", RUExtended, 'ї'},
		{"Європа", RUOfficial, 'Є'},
		{"звіт.2023.xlsx", RUExtended, 'і'},
		{"ґанок", RUOfficial, 'ґ'},
	}
	for _, tt := range tests {
		_, err := Translate(tt.input, tt.variant)
		var unsupported *UnsupportedLetterError
		require.True(t, errors.As(err, &unsupported), "%s: Translate(%q) err = %v", tt.variant, tt.input, err)
		assert.Equal(t, tt.letter, unsupported.Letter)
		assert.Equal(t, tt.variant.Language, unsupported.Language)
		assert.NotErrorIs(t, err, ErrNoCyrillic)
	}
}

func TestTranslateUnknownVariant(t *testing.T) {
	_, err := Translate("файл.txt", Variant{Language: Language(7)})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		input, stem, ext string
	}{
		{"фото.JPG", "фото", ".JPG"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".bashrc", "", ".bashrc"},
		{"trailing.", "trailing", "."},
		{"", "", ""},
	}
	for _, tt := range tests {
		stem, ext := SplitExtension(tt.input)
		assert.Equal(t, tt.stem, stem, "stem of %q", tt.input)
		assert.Equal(t, tt.ext, ext, "ext of %q", tt.input)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		lang, standard string
		want           Variant
	}{
		{"ua", "official", UAOfficial},
		{"UK", "Extended", UAExtended},
		{"ukrainian", "e", UAExtended},
		{"ru", "OFFICIAL", RUOfficial},
		{" russian ", "extended", RUExtended},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.lang, tt.standard)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseVariant("by", "official")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	_, err = ParseVariant("ua", "scientific")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "ua-official", UAOfficial.String())
	assert.Equal(t, "ru-extended", RUExtended.String())
	assert.Len(t, Variants(), 4)
}
