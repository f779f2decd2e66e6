package catalog

import (
	"strings"

	goslug "github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// ToSlug converts a display name to its URL-safe slug form.
// "Crew Cab" becomes "crew-cab", "Silverado 1500" becomes "silverado-1500".
func ToSlug(name string) string {
	return goslug.Make(name)
}

// Label converts a slug back to a display label by title-casing each
// hyphen-separated word. "crew-cab" becomes "Crew Cab". Labels are
// cosmetic; slugs remain the canonical identifiers.
func Label(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}
