package transliteration

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func FuzzSegment(f *testing.F) {
	f.Add("сертификат-Для-ВПО")
	f.Add("")
	f.Add("а")
	f.Add("--__..")
	f.Add("ЖИТОМИР")
	f.Add("my file_Name–v2")
	f.Add("caf\xe9_\xffЖ")

	f.Fuzz(func(t *testing.T, s string) {
		words := Segment(s)
		if len(words) == 0 {
			t.Fatalf("Segment(%q) returned no words", s)
		}
		if got := strings.Join(words, ""); got != s {
			t.Fatalf("Segment(%q) joined = %q", s, got)
		}
	})
}

func FuzzTranslate(f *testing.F) {
	f.Add("фото.JPG")
	f.Add("сім'я")
	f.Add("photo.jpg")
	f.Add("Мій Файл_2023.tar.gz")
	f.Add("caf\xe9.txt")
	f.Add("фото.e\u0301")

	f.Fuzz(func(t *testing.T, name string) {
		hasCyrillic := strings.ContainsFunc(name, func(r rune) bool {
			return unicode.Is(unicode.Cyrillic, r)
		})
		for _, v := range Variants() {
			got, err := Translate(name, v)
			if !hasCyrillic && !errors.Is(err, ErrNoCyrillic) {
				t.Fatalf("%s: Translate(%q) = %q, %v; want ErrNoCyrillic", v, name, got, err)
			}
			if err != nil {
				continue
			}
			_, wantExt := SplitExtension(name)
			if !strings.HasSuffix(got, wantExt) {
				t.Fatalf("%s: Translate(%q) = %q lost extension %q", v, name, got, wantExt)
			}
		}
	})
}
