package variants

import (
	"math"
	"strings"
)

type levelScorer func(FragranceVariant) float64

var levelScorers = map[ExperienceLevel]levelScorer{
	LevelBeginner:   beginnerScore,
	LevelEnthusiast: enthusiastScore,
	LevelCollector:  collectorScore,
}

// Recommend returns one recommendation per experience level, in ExperienceLevels order.
// The cluster must not be empty.
func Recommend(cluster []FragranceVariant, primary FragranceVariant) ([]ExperienceRecommendation, error) {
	if len(cluster) == 0 {
		return nil, ErrEmptyCluster
	}

	recs := make([]ExperienceRecommendation, 0, len(ExperienceLevels))
	for _, level := range ExperienceLevels {
		pick := bestFor(cluster, levelScorers[level])

		reasoning := reasoningText[level].alternative
		if pick.ID == primary.ID {
			reasoning = reasoningText[level].primary
		}

		recs = append(recs, ExperienceRecommendation{
			Level:                level,
			RecommendedVariantID: pick.ID,
			Reasoning:            reasoning,
			Confidence:           levelConfidence[level],
		})
	}
	return recs, nil
}

// bestFor keeps the first member with the strictly highest score.
func bestFor(cluster []FragranceVariant, score levelScorer) FragranceVariant {
	best := cluster[0]
	bestScore := score(best)
	for _, v := range cluster[1:] {
		if s := score(v); s > bestScore {
			best, bestScore = v, s
		}
	}
	return best
}

func beginnerScore(v FragranceVariant) float64 {
	var score float64
	if v.SampleAvailable {
		score += RecommendPrimaryFactor
	}
	if strings.Contains(strings.ToLower(v.Name), "edt") {
		score += RecommendSecondaryFactor
	}
	intensity := floatOr(v.IntensityScore, DefaultIntensity)
	return score + RecommendTertiaryFactor*(IntensityScale-intensity)/IntensityScale
}

func enthusiastScore(v FragranceVariant) float64 {
	var score float64
	if strings.Contains(strings.ToLower(v.Name), "edp") {
		score += RecommendPrimaryFactor
	}

	intensity := floatOr(v.IntensityScore, DefaultIntensity)
	if intensity >= EnthusiastIntensityMin && intensity <= EnthusiastIntensityMax {
		score += RecommendSecondaryFactor * EnthusiastInRange
	} else {
		score += RecommendSecondaryFactor * EnthusiastOutOfRange
	}

	longevity := floatOr(v.LongevityHours, DefaultLongevityHours)
	return score + RecommendTertiaryFactor*math.Min(longevity/LongevityFullHours, 1)
}

func collectorScore(v FragranceVariant) float64 {
	var score float64
	if collectorMarkers.MatchString(v.Name) {
		score += RecommendPrimaryFactor
	}
	score += RecommendSecondaryFactor * floatOr(v.IntensityScore, DefaultIntensity) / IntensityScale
	popularity := floatOr(v.PopularityScore, DefaultPopularity)
	return score + RecommendTertiaryFactor*(PopularityScale-popularity)/PopularityScale
}
