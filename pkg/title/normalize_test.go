package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "The Matrix", "matrix"},
		{"leading article", "A Quiet Place", "quiet place"},
		{"accents", "Léon", "leon"},
		{"subtitle articles", "Léon: The Professional", "leon professional"},
		{"ampersand", "Fast & Furious", "fast and furious"},
		{"roman numerals", "Rocky II", "rocky 2"},
		{"roman numeral at start kept", "VII Days", "vii days"},
		{"punctuation", "M*A*S*H", "mash"},
		{"whitespace collapse", "  Some   Movie  ", "some movie"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeRelease(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"movie with year", "Some.Movie.2024.1080p.WEB-DL.x264-GRP", "some movie"},
		{"episode marker", "Some.Show.S02E05.720p.HDTV", "some show"},
		{"season pack", "Some_Show_S02_COMPLETE_1080p", "some show"},
		{"resolution only", "Some.Movie.2160p.REMUX", "some movie"},
		{"no metadata tail", "Some.Movie", "some movie"},
		{"brackets", "[Group] Some.Show.S01", "group some show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRelease(tt.input))
		})
	}
}
