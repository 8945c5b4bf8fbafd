// Package convert maps Traditional-script corpus text to Simplified script.
// Conversion is best-effort character mapping; it is not guaranteed to be
// semantically perfect for every historical term.
package convert

import (
	"strings"

	"github.com/siongui/gojianfan"
)

// exceptions lists strings that must pass through unconverted. A naive
// character mapping corrupts them: 乾隆 (the Qianlong reign name) would have
// its 乾 mapped to 干.
var exceptions = map[string]struct{}{
	"乾隆": {},
}

// Text converts a Traditional-script string to Simplified script. Strings on
// the exception list and empty strings are returned verbatim.
func Text(s string) string {
	if s == "" {
		return s
	}
	if _, ok := exceptions[s]; ok {
		return s
	}
	return gojianfan.T2S(s)
}

// TextPtr converts through a nullable string. A nil input passes through
// unchanged.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Text(*s)
	return &out
}

// Stanzas converts each stanza and joins the results with newline
// separators, so that Stanzas([s1, s2]) == Text(s1) + "\n" + Text(s2).
func Stanzas(stanzas []string) string {
	out := make([]string, len(stanzas))
	for i, s := range stanzas {
		out[i] = Text(s)
	}
	return strings.Join(out, "\n")
}
