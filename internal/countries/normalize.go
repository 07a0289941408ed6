// Package countries canonicalizes country names across datasets that use
// different naming conventions (World Bank, UN, colloquial, abbreviated).
package countries

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes and strips combining marks, e.g. "Türkiye" -> "Turkiye".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// abbrevRules expands World Bank / UN abbreviations on whole-word boundaries.
// Order matters: multi-word patterns run before their single-word prefixes so
// "arab rep" is never half-consumed by the generic "rep" rule.
var abbrevRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\bdem peoples\b`), "democratic peoples"},
	{regexp.MustCompile(`\bdem people s\b`), "democratic peoples"},
	{regexp.MustCompile(`\barab rep\b`), "arab republic"},
	{regexp.MustCompile(`\bislamic rep\b`), "islamic republic"},
	{regexp.MustCompile(`\brep of\b`), "republic of"},
	{regexp.MustCompile(`\bfed sts\b`), "federated states"},
	{regexp.MustCompile(`\bfed states\b`), "federated states"},
	{regexp.MustCompile(`\bdem\b`), "democratic"},
	{regexp.MustCompile(`\brep\b`), "republic"},
	{regexp.MustCompile(`\bfed\b`), "federal"},
}

// Normalize converts a raw country name into its comparison key: lowercase,
// accent-free, punctuation-free, whitespace-collapsed, with known
// abbreviations expanded. The key is used only for lookup, never displayed.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if folded, _, err := transform.String(foldAccents, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	// "&" must become "and" before the punctuation strip removes it.
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	s = strings.Join(strings.Fields(b.String()), " ")

	for _, rule := range abbrevRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}

	return strings.Join(strings.Fields(s), " ")
}
