package variants

import "strings"

// SelectPrimary picks the canonical member of a cluster: the highest PrimaryScore, with ties
// going to the earliest member. A singleton is returned without scoring.
func SelectPrimary(cluster []FragranceVariant) (FragranceVariant, error) {
	i, err := primaryIndex(cluster)
	if err != nil {
		return FragranceVariant{}, err
	}
	return cluster[i], nil
}

func primaryIndex(cluster []FragranceVariant) (int, error) {
	switch len(cluster) {
	case 0:
		return -1, ErrEmptyCluster
	case 1:
		return 0, nil
	}

	best := 0
	bestScore := PrimaryScore(cluster[0])
	for i := 1; i < len(cluster); i++ {
		if score := PrimaryScore(cluster[i]); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, nil
}

// PrimaryScore rates how well a variant represents its group.
func PrimaryScore(v FragranceVariant) float64 {
	score := PrimaryPopularityWeight * floatOr(v.PopularityScore, MissingPopularity) / PopularityScale
	if v.SampleAvailable {
		score += PrimaryAvailabilityWeight
	}
	score += PrimaryConcentrationWeight * concentrationScore(v.Name)
	score += PrimaryAppealWeight * appealScore(v.Name)
	return score
}

func concentrationScore(name string) float64 {
	lower := strings.ToLower(name)
	for _, rule := range concentrationRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.score
			}
		}
	}
	return ConcentrationDefault
}

func appealScore(name string) float64 {
	for _, rule := range appealRules {
		if rule.pattern.MatchString(name) {
			return rule.score
		}
	}
	return AppealDefault
}
