package transliteration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{"а", []string{"а"}},
		{"Ab", []string{"Ab"}},
		{"AB", []string{"A", "B"}},
		{"аБв", []string{"а", "Бв"}},
		{"my file_name", []string{"my ", "file_", "name"}},
		{"а–б—в−г", []string{"а–", "б—", "в−", "г"}},
		{"a.b.c", []string{"a.", "b.", "c"}},
		{"-Abc", []string{"-", "Abc"}},
		{"abc-", []string{"abc-"}},
		{"--", []string{"-", "-"}},
		{"сертификат-Для-ВПО", []string{"сертификат-", "Для-", "В", "П", "О"}},
		{"caf\xe9Ж\xff", []string{"caf\xe9", "Ж\xff"}},
		{"\xe9_\xe9", []string{"\xe9_", "\xe9"}},
	}
	for _, tt := range tests {
		got := Segment(tt.input)
		assert.Equal(t, tt.want, got, "Segment(%q)", tt.input)
		assert.Equal(t, tt.input, strings.Join(got, ""), "Segment(%q) is lossy", tt.input)
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range "-–—− _." {
		assert.True(t, IsSeparator(r), "%q", r)
	}
	for _, r := range "aЯ1'’,+~" {
		assert.False(t, IsSeparator(r), "%q", r)
	}
}

func TestIsCaseBoundary(t *testing.T) {
	assert.True(t, IsCaseBoundary('Я'))
	assert.True(t, IsCaseBoundary('Q'))
	assert.False(t, IsCaseBoundary('я'))
	assert.False(t, IsCaseBoundary('1'))
	assert.False(t, IsCaseBoundary('-'))
}
