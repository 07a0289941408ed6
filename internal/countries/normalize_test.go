package countries

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
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"all punctuation", "..., !?", ""},
		{"lowercases", "TURKIYE", "turkiye"},
		{"strips accents", "Türkiye", "turkiye"},
		{"strips cedilla", "Curaçao", "curacao"},
		{"curly apostrophe", "Côte d’Ivoire", "cote d ivoire"},
		{"straight apostrophe", "Cote d'Ivoire", "cote d ivoire"},
		{"collapses whitespace", "  United   States  ", "united states"},
		{"ampersand becomes and", "Trinidad & Tobago", "trinidad and tobago"},
		{"arab rep", "Egypt, Arab Rep.", "egypt arab republic"},
		{"islamic rep", "Iran, Islamic Rep.", "iran islamic republic"},
		{"rep alone", "Korea, Rep.", "korea republic"},
		{"rep of", "Rep. of Korea", "republic of korea"},
		{"fed sts", "Micronesia, Fed. Sts.", "micronesia federated states"},
		{"fed alone", "Somalia, Fed. Rep.", "somalia federal republic"},
		{"dem peoples", "Dem. People's Republic of Korea", "democratic peoples republic of korea"},
		{"dem peoples spaced", "Korea, Dem. People's Rep.", "korea democratic peoples republic"},
		{"initialisms", "U.S.A.", "u s a"},
		{"digits kept", "Euro area 19", "euro area 19"},
		// Whole-word boundaries only: no mid-word expansion.
		{"federation untouched", "Russian Federation", "russian federation"},
		{"democratic untouched", "Democratic Republic of the Congo", "democratic republic of the congo"},
		{"representative untouched", "Representative", "representative"},
		{"federal untouched", "Federal Republic", "federal republic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Egypt, Arab Rep.",
		"Micronesia, Fed. Sts.",
		"Dem. People's Republic of Korea",
		"Türkiye",
		"Trinidad & Tobago",
		"World",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
