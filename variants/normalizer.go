package variants

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	slugPattern       = regexp.MustCompile(`[^a-z0-9]+`)
)

// CleanName lowercases a display name, replaces punctuation with spaces and collapses
// whitespace.
func CleanName(name string) string {
	name = strings.ToLower(name)
	name = nonWordPattern.ReplaceAllString(name, " ")
	name = whitespacePattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// Normalize reduces a display name to its base name: the clean name with one trailing
// concentration, gender, year or edition token removed.
func Normalize(name string) string {
	clean := CleanName(name)
	for _, suffix := range baseNameSuffixes {
		if suffix.MatchString(clean) {
			return strings.TrimSpace(suffix.ReplaceAllString(clean, ""))
		}
	}
	return clean
}

// markerPrefix returns the index of the first marker pattern matching a clean name and the
// text in front of the marker, or -1.
func markerPrefix(clean string) (int, string) {
	for i, pattern := range markerPrefixPatterns {
		if m := pattern.FindStringSubmatch(clean); m != nil {
			return i, strings.TrimSpace(m[1])
		}
	}
	return -1, ""
}

func slugify(s string) string {
	s = slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// GroupID derives the stable identifier of the group a variant heads.
func GroupID(v FragranceVariant) string {
	brand := v.Brand
	if strings.TrimSpace(brand) == "" {
		brand = v.BrandID
	}
	base := slugify(Normalize(v.Name))
	if base == "" {
		base = slugify(v.ID)
	}
	return base + "-" + slugify(brand)
}

// GroupName is the variant's display name without a trailing concentration phrase.
func GroupName(v FragranceVariant) string {
	name := strings.TrimSpace(groupNameSuffix.ReplaceAllString(v.Name, ""))
	if name == "" {
		return strings.TrimSpace(v.Name)
	}
	return name
}
