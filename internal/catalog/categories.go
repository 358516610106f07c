package catalog

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// CategorySet is the sorted list of distinct category tags in a catalog.
type CategorySet []string

// ExtractCategories collects every distinct tag across records, sorted byte-wise.
func ExtractCategories(records []Record) CategorySet {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, tag := range rec.CategoryList() {
			seen[tag] = struct{}{}
		}
	}

	set := make(CategorySet, 0, len(seen))
	for tag := range seen {
		set = append(set, tag)
	}
	sort.Strings(set)
	return set
}

// Contains reports whether tag is in the set (exact match).
func (cs CategorySet) Contains(tag string) bool {
	i := sort.SearchStrings(cs, tag)
	return i < len(cs) && cs[i] == tag
}

// Resolve maps user input to a tag: a 1-based position, or a name matched
// after title-casing ("sci-fi" -> "Sci-Fi").
func (cs CategorySet) Resolve(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if isDigits(input) {
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(cs) {
			return cs[n-1], true
		}
	}
	name := TitleCase(input)
	if cs.Contains(name) {
		return name, true
	}
	return "", false
}

// TitleCase upper-cases the first letter of every letter run and lower-cases the rest.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		prevLetter = false
		b.WriteRune(r)
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
