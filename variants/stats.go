package variants

// Stats summarizes how effectively a run collapsed the catalog.
type Stats struct {
	TotalGroups          int               `json:"totalGroups"`
	TotalVariants        int               `json:"totalVariants"`
	SingletonGroups      int               `json:"singletonGroups"`
	MultiVariantGroups   int               `json:"multiVariantGroups"`
	AvgVariantsPerGroup  float64           `json:"avgVariantsPerGroup"`
	MaxVariantsPerGroup  int               `json:"maxVariantsPerGroup"`
	BadgeCounts          map[BadgeType]int `json:"badgeCounts"`
	AlternativeRecGroups int               `json:"alternativeRecommendationGroups"`
}

// Summarize computes grouping statistics for a set of groups.
func Summarize(groups []VariantGroup) Stats {
	stats := Stats{
		TotalGroups: len(groups),
		BadgeCounts: make(map[BadgeType]int),
	}

	for _, g := range groups {
		stats.TotalVariants += g.TotalVariants
		if g.TotalVariants == 1 {
			stats.SingletonGroups++
		} else {
			stats.MultiVariantGroups++
		}
		stats.MaxVariantsPerGroup = max(stats.MaxVariantsPerGroup, g.TotalVariants)

		for _, b := range g.Badges {
			stats.BadgeCounts[b.Type]++
		}
		for _, rec := range g.ExperienceRecommendations {
			if rec.RecommendedVariantID != g.PrimaryVariant.ID {
				stats.AlternativeRecGroups++
				break
			}
		}
	}

	if stats.TotalGroups > 0 {
		stats.AvgVariantsPerGroup = float64(stats.TotalVariants) / float64(stats.TotalGroups)
	}
	return stats
}
