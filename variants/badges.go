package variants

// AssignBadges labels the primary against the whole cluster. Each badge is checked on its
// own; strongest and lightest exclude each other with strongest taking precedence.
func AssignBadges(cluster []FragranceVariant, primary FragranceVariant) []VariantBadge {
	badges := make([]VariantBadge, 0, 3)

	if isMostPopular(cluster, primary) {
		badges = append(badges, badgeText[BadgeMostPopular])
	}
	if b, ok := intensityBadge(cluster, primary); ok {
		badges = append(badges, b)
	}
	if isBestValue(cluster, primary) {
		badges = append(badges, badgeText[BadgeBestValue])
	}

	return badges
}

func isMostPopular(cluster []FragranceVariant, primary FragranceVariant) bool {
	top := MissingPopularity
	for _, v := range cluster {
		top = max(top, floatOr(v.PopularityScore, MissingPopularity))
	}
	return top > 0 && floatOr(primary.PopularityScore, MissingPopularity) == top
}

// intensityBadge needs at least two members with a known intensity.
func intensityBadge(cluster []FragranceVariant, primary FragranceVariant) (VariantBadge, bool) {
	var scores []float64
	for _, v := range cluster {
		if v.IntensityScore != nil {
			scores = append(scores, *v.IntensityScore)
		}
	}
	if len(scores) < 2 || primary.IntensityScore == nil {
		return VariantBadge{}, false
	}

	hi, lo := scores[0], scores[0]
	for _, s := range scores[1:] {
		hi = max(hi, s)
		lo = min(lo, s)
	}

	switch *primary.IntensityScore {
	case hi:
		return badgeText[BadgeStrongest], true
	case lo:
		return badgeText[BadgeLightest], true
	}
	return VariantBadge{}, false
}

// isBestValue only considers a primary that is itself sampleable with a price.
// TODO: decide with merchandising whether a cheaper related sample should move the badge
// when the primary has no price; today it never does.
func isBestValue(cluster []FragranceVariant, primary FragranceVariant) bool {
	if !primary.SampleAvailable || primary.SamplePriceUSD == nil {
		return false
	}

	var priced int
	cheapest := *primary.SamplePriceUSD
	for _, v := range cluster {
		if !v.SampleAvailable || v.SamplePriceUSD == nil {
			continue
		}
		priced++
		cheapest = min(cheapest, *v.SamplePriceUSD)
	}
	return priced >= 2 && *primary.SamplePriceUSD == cheapest
}
