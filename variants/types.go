package variants

// FragranceVariant is one catalog record: a specific release or concentration of a fragrance.
// Optional numeric fields are pointers so that "missing" is distinguishable from zero.
type FragranceVariant struct {
	ID                   string   `json:"id" validate:"required"`
	Name                 string   `json:"name"`
	Brand                string   `json:"brand"`
	BrandID              string   `json:"brand_id" validate:"required"`
	Notes                []string `json:"notes,omitempty"`
	IntensityScore       *float64 `json:"intensity_score,omitempty"`
	LongevityHours       *float64 `json:"longevity_hours,omitempty"`
	SampleAvailable      bool     `json:"sample_available"`
	SamplePriceUSD       *float64 `json:"sample_price_usd,omitempty"`
	PopularityScore      *float64 `json:"popularity_score,omitempty"`
	FragranceFamily      string   `json:"fragrance_family,omitempty"`
	ImageURL             string   `json:"image_url,omitempty"`
	RecommendedOccasions []string `json:"recommended_occasions,omitempty"`
	RecommendedSeasons   []string `json:"recommended_seasons,omitempty"`
}

// BadgeType identifies a descriptive label attached to a group's primary variant
type BadgeType string

const (
	BadgeMostPopular BadgeType = "most_popular"
	BadgeStrongest   BadgeType = "strongest"
	BadgeLightest    BadgeType = "lightest"
	BadgeBestValue   BadgeType = "best_value"

	// Reserved, never assigned by AssignBadges.
	BadgeDiscontinued   BadgeType = "discontinued"
	BadgeLimitedEdition BadgeType = "limited_edition"
)

// VariantBadge describes why the primary variant stands out within its group
type VariantBadge struct {
	Type        BadgeType `json:"type"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
}

// ExperienceLevel is an audience tier for purchase recommendations
type ExperienceLevel string

const (
	LevelBeginner   ExperienceLevel = "beginner"
	LevelEnthusiast ExperienceLevel = "enthusiast"
	LevelCollector  ExperienceLevel = "collector"
)

// ExperienceLevels lists the tiers in the order recommendations are emitted.
var ExperienceLevels = []ExperienceLevel{LevelBeginner, LevelEnthusiast, LevelCollector}

// ExperienceRecommendation is the best-fit variant of a group for one audience tier
type ExperienceRecommendation struct {
	Level                ExperienceLevel `json:"level"`
	RecommendedVariantID string          `json:"recommended_variant_id"`
	Reasoning            string          `json:"reasoning"`
	Confidence           float64         `json:"confidence"`
}

// VariantGroup is one cluster of near-duplicate variants with its canonical primary,
// badges and per-audience recommendations.
type VariantGroup struct {
	PrimaryVariant            FragranceVariant           `json:"primary_variant"`
	RelatedVariants           []FragranceVariant         `json:"related_variants"`
	GroupID                   string                     `json:"group_id"`
	GroupName                 string                     `json:"group_name"`
	TotalVariants             int                        `json:"total_variants"`
	PopularityScore           float64                    `json:"popularity_score"`
	Badges                    []VariantBadge             `json:"badges"`
	ExperienceRecommendations []ExperienceRecommendation `json:"experience_recommendations"`
}

// Members returns the primary followed by the related variants.
func (g VariantGroup) Members() []FragranceVariant {
	out := make([]FragranceVariant, 0, 1+len(g.RelatedVariants))
	out = append(out, g.PrimaryVariant)
	return append(out, g.RelatedVariants...)
}

// HasBadge reports whether the group carries a badge of type t
func (g VariantGroup) HasBadge(t BadgeType) bool {
	for _, b := range g.Badges {
		if b.Type == t {
			return true
		}
	}
	return false
}

// Result is the outcome of one engine run: the groups plus every record rejected before
// clustering.
type Result struct {
	Groups  []VariantGroup `json:"groups"`
	Skipped []*RecordError `json:"skipped,omitempty"`
}

// Float returns a pointer to v, for building optional fields.
func Float(v float64) *float64 {
	return &v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
