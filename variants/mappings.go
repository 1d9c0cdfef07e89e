package variants

import "regexp"

// Vocabulary tables for fragrance names. Order matters in every list: the first match wins.

// Trailing tokens stripped from a clean name to get its base name. Applied once.
var baseNameSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`\s+(edt|edp|parfum|cologne|elixir|intense|extreme|sport|noir|blanc|blue)$`),
	regexp.MustCompile(`\s+(eau de toilette|eau de parfum|eau de cologne)$`),
	regexp.MustCompile(`\s+(for men|for women|homme|femme)$`),
	regexp.MustCompile(`\s+\d{4}$`),
	regexp.MustCompile(`\s+(limited|edition|collector)$`),
}

// "Prefix before a concentration marker" patterns. Two names that match the same pattern
// with the same prefix are treated as near-identical.
var markerPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?)\s+(?:eau de toilette|eau de parfum|eau de cologne)\b`),
	regexp.MustCompile(`^(.+?)\s+(?:edt|edp|parfum|cologne|extrait)\b`),
	regexp.MustCompile(`^(.+?)\s+(?:elixir|intense|extreme|absolu)\b`),
	regexp.MustCompile(`^(.+?)\s+(?:pour homme|pour femme|for men|for women|homme|femme)\b`),
}

// Display-name suffix removed when building a group name. Case is kept in the result.
var groupNameSuffix = regexp.MustCompile(`(?i)\s*\b(eau de toilette|eau de parfum|eau de cologne|edt|edp|parfum|cologne)\s*$`)

type concentrationRule struct {
	markers []string
	score   float64
}

// Substring checks against the lowercased name. "eau de parfum" is caught by the first
// rule, so the plain "parfum" rule only sees extraits.
var concentrationRules = []concentrationRule{
	{[]string{"edp", "eau de parfum"}, ConcentrationEDP},
	{[]string{"edt", "eau de toilette"}, ConcentrationEDT},
	{[]string{"parfum"}, ConcentrationParfum},
	{[]string{"cologne", "eau de cologne"}, ConcentrationCologne},
	{[]string{"elixir", "intense"}, ConcentrationFlanker},
}

type appealRule struct {
	pattern *regexp.Regexp
	score   float64
}

var appealRules = []appealRule{
	{regexp.MustCompile(`(?i)\b(original|classic|signature)\b`), AppealClassic},
	{regexp.MustCompile(`(?i)\b(extreme|intense|elixir|royal|limited|exclusive|collector)\b`), AppealNiche},
	{regexp.MustCompile(`(?i)\b(sport|summer|winter|noir|blue|white)\b`), AppealSeasonal},
}

// Names that read as rare or concentrated releases.
var collectorMarkers = regexp.MustCompile(`(?i)(limited|exclusive|collector|elixir|parfum|extreme)`)

var badgeText = map[BadgeType]VariantBadge{
	BadgeMostPopular: {Type: BadgeMostPopular, Label: "Most Popular", Description: "The most popular version of this fragrance"},
	BadgeStrongest:   {Type: BadgeStrongest, Label: "Strongest", Description: "Highest intensity in this collection"},
	BadgeLightest:    {Type: BadgeLightest, Label: "Lightest", Description: "The most subtle and light version"},
	BadgeBestValue:   {Type: BadgeBestValue, Label: "Best Value", Description: "The most affordable sample option"},
}

type reasoningPair struct {
	primary     string
	alternative string
}

var reasoningText = map[ExperienceLevel]reasoningPair{
	LevelBeginner: {
		primary:     "This is the perfect starting point: the definitive version that is widely loved and easy to wear.",
		alternative: "A lighter, more approachable take that is easier to sample and wear every day.",
	},
	LevelEnthusiast: {
		primary:     "The essential version, with the best balance of strength and longevity.",
		alternative: "An enhanced version with more projection and longevity for experienced wearers.",
	},
	LevelCollector: {
		primary:     "The definitive expression of this fragrance and a must-have for any collection.",
		alternative: "A rarer, more distinctive expression prized by collectors.",
	},
}

var levelConfidence = map[ExperienceLevel]float64{
	LevelBeginner:   BeginnerConfidence,
	LevelEnthusiast: EnthusiastConfidence,
	LevelCollector:  CollectorConfidence,
}
