package variants

import (
	"math"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Similarity scores how likely two variants are releases of the same fragrance, in [0, 1].
// Variants from different brands always score 0.
func Similarity(a, b FragranceVariant) float64 {
	if a.BrandID != b.BrandID {
		return 0
	}
	if a.ID != "" && a.ID == b.ID {
		return 1.0
	}

	score := NameWeight*nameScore(a.Name, b.Name) +
		BrandWeight*1.0 +
		NotesWeight*jaccard(a.Notes, b.Notes) +
		FamilyWeight*familyScore(a.FragranceFamily, b.FragranceFamily)

	return math.Min(score, 1.0)
}

func nameScore(a, b string) float64 {
	baseA, baseB := Normalize(a), Normalize(b)
	if baseA == baseB {
		return 1.0
	}

	idxA, prefixA := markerPrefix(CleanName(a))
	idxB, prefixB := markerPrefix(CleanName(b))
	if idxA >= 0 && idxA == idxB && strings.EqualFold(prefixA, prefixB) {
		return PrefixMatchScore
	}

	return levenshteinSimilarity(baseA, baseB)
}

// levenshteinSimilarity is 1 - distance/longer length, floored at 0.
func levenshteinSimilarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}
	distance := edlib.LevenshteinDistance(a, b)
	return math.Max(0, 1-float64(distance)/float64(longest))
}

// jaccard is the case-insensitive overlap of two note sets; 0 when either is empty.
func jaccard(a, b []string) float64 {
	setA, setB := noteSet(a), noteSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var intersection int
	for note := range setA {
		if _, ok := setB[note]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func noteSet(notes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func familyScore(a, b string) float64 {
	if a != "" && a == b {
		return 1.0
	}
	return 0
}
