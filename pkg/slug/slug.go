package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that carry no combining mark under NFD and would otherwise be
// treated as separators.
var ligatures = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"ł", "l",
	"đ", "d",
	"ð", "d",
	"þ", "th",
	"ı", "i",
)

// Make converts text into a URL-safe slug.
//
// Every maximal run of characters outside [a-z0-9] (after lower-casing and
// accent folding) becomes a single hyphen, and leading/trailing hyphens are
// trimmed. Accented letters fold to their base letter first, so "Café Zen"
// becomes "cafe-zen" where a plain ASCII filter would give "caf-zen"; the
// identities of accented names differ from that naive rule.
func Make(text string) string {
	folded := ligatures.Replace(strings.ToLower(fold(text)))

	var b strings.Builder
	b.Grow(len(folded))

	gap := false
	for _, r := range folded {
		if !isAlnum(r) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('-')
		}
		gap = false
		b.WriteRune(r)
	}

	return b.String()
}

// fold strips combining marks after canonical decomposition.
// A new chain is built per call because transform chains keep state.
func fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
