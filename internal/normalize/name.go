package normalize

import (
	"regexp"
	"strings"
)

// Punctuation that appears in FJC name fields: periods and commas from
// suffixes and initials, brackets and apostrophes from editorial notes.
var reNamePunct = regexp.MustCompile(`[.,\[\]']`)

// StripPunct removes name punctuation and surrounding whitespace while
// preserving case, the form stored on canonical records.
func StripPunct(raw string) string {
	return strings.TrimSpace(reNamePunct.ReplaceAllString(raw, ""))
}

// CanonicalName strips punctuation from a name component, trims it and
// upper-cases it. The result contains only the characters matched on, so
// two names compare equal exactly when their canonical forms do.
func CanonicalName(raw string) string {
	return strings.ToUpper(StripPunct(raw))
}

// Initial returns the first character of an already-canonical name
// component, or "" for an empty component. No placeholder is substituted;
// an empty initial collapses out of the joined permutation.
func Initial(name string) string {
	if name == "" {
		return ""
	}
	return string([]rune(name)[:1])
}

// Perms derives the seven lookup variants of a judge's name from its raw
// first, middle and last components, most to least specific:
//
//	1. FIRST MIDDLE LAST
//	2. FIRST M LAST
//	3. FIRST LAST
//	4. F MIDDLE LAST
//	5. F M LAST
//	6. F LAST
//	7. LAST
//
// Empty components collapse rather than leaving doubled spaces, so a judge
// with no middle name yields "FIRST LAST" for variants 1 and 2.
func Perms(firstRaw, middleRaw, lastRaw string) [7]string {
	first := CanonicalName(firstRaw)
	middle := CanonicalName(middleRaw)
	last := CanonicalName(lastRaw)
	firstInit := Initial(first)
	middleInit := Initial(middle)

	return [7]string{
		joinName(first, middle, last),
		joinName(first, middleInit, last),
		joinName(first, last),
		joinName(firstInit, middle, last),
		joinName(firstInit, middleInit, last),
		joinName(firstInit, last),
		last,
	}
}

// joinName joins the non-empty parts with single spaces.
func joinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
