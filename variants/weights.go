package variants

// Similarity weights. They sum to 1.0.
const (
	NameWeight   = 0.4
	BrandWeight  = 0.3
	NotesWeight  = 0.2
	FamilyWeight = 0.1

	// PrefixMatchScore is the name score when two names share the text in front of the
	// same concentration marker.
	PrefixMatchScore = 0.9

	// ClusterThreshold is the minimum similarity for joining an anchor's cluster.
	ClusterThreshold = 0.7
)

// Primary selection weights. They sum to 1.0.
const (
	PrimaryPopularityWeight    = 0.4
	PrimaryAvailabilityWeight  = 0.3
	PrimaryConcentrationWeight = 0.2
	PrimaryAppealWeight        = 0.1
)

// Concentration preference scores, checked in this order against the lowercased name.
const (
	ConcentrationEDP     = 1.0
	ConcentrationEDT     = 0.8
	ConcentrationParfum  = 0.6
	ConcentrationCologne = 0.4
	ConcentrationFlanker = 0.5
	ConcentrationDefault = 0.7
)

// Mainstream appeal scores.
const (
	AppealClassic  = 1.0
	AppealNiche    = 0.3
	AppealSeasonal = 0.5
	AppealDefault  = 0.7
)

// Defaults substituted for missing optional fields. Primary selection and the experience
// recommender both read these; primary selection treats missing popularity as
// MissingPopularity while the recommender uses DefaultPopularity.
const (
	DefaultIntensity      = 5.0
	DefaultLongevityHours = 4.0
	DefaultPopularity     = 50.0
	MissingPopularity     = 0.0
)

// Experience recommender weights and constants.
const (
	RecommendPrimaryFactor   = 0.4
	RecommendSecondaryFactor = 0.3
	RecommendTertiaryFactor  = 0.3

	IntensityScale         = 10.0
	PopularityScale        = 100.0
	LongevityFullHours     = 12.0
	EnthusiastIntensityMin = 6.0
	EnthusiastIntensityMax = 8.0
	EnthusiastInRange      = 0.3
	EnthusiastOutOfRange   = 0.1

	BeginnerConfidence   = 0.85
	EnthusiastConfidence = 0.90
	CollectorConfidence  = 0.80
)
