package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func badgeTypes(badges []VariantBadge) []BadgeType {
	out := make([]BadgeType, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.Type)
	}
	return out
}

func withStats(v FragranceVariant, popularity, intensity *float64, price *float64) FragranceVariant {
	v.PopularityScore = popularity
	v.IntensityScore = intensity
	if price != nil {
		v.SampleAvailable = true
		v.SamplePriceUSD = price
	}
	return v
}

func TestAssignBadges_Singleton(t *testing.T) {
	only := withStats(dior("1", "Dune"), Float(70), Float(9), Float(4))
	assert.Equal(t, []BadgeType{BadgeMostPopular}, badgeTypes(AssignBadges([]FragranceVariant{only}, only)))

	unknown := dior("2", "Dune")
	assert.Empty(t, AssignBadges([]FragranceVariant{unknown}, unknown))
}

func TestAssignBadges_AllThree(t *testing.T) {
	primary := withStats(dior("p", "Sauvage EDP"), Float(90), Float(9), Float(5))
	cluster := []FragranceVariant{
		primary,
		withStats(dior("t", "Sauvage EDT"), Float(70), Float(6), Float(7.5)),
		withStats(dior("c", "Sauvage Cologne"), nil, Float(3), nil),
	}

	got := badgeTypes(AssignBadges(cluster, primary))
	assert.Equal(t, []BadgeType{BadgeMostPopular, BadgeStrongest, BadgeBestValue}, got)
}

func TestAssignBadges_Lightest(t *testing.T) {
	primary := withStats(dior("p", "Sauvage EDT"), Float(10), Float(3), nil)
	cluster := []FragranceVariant{
		withStats(dior("x", "Sauvage Elixir"), Float(60), Float(9), nil),
		primary,
	}

	assert.Equal(t, []BadgeType{BadgeLightest}, badgeTypes(AssignBadges(cluster, primary)))
}

func TestAssignBadges_EqualIntensityIsStrongest(t *testing.T) {
	primary := withStats(dior("p", "Sauvage EDT"), nil, Float(5), nil)
	cluster := []FragranceVariant{primary, withStats(dior("q", "Sauvage EDP"), nil, Float(5), nil)}

	assert.Equal(t, []BadgeType{BadgeStrongest}, badgeTypes(AssignBadges(cluster, primary)))
}

func TestAssignBadges_IntensityNeedsTwoScores(t *testing.T) {
	primary := withStats(dior("p", "Sauvage EDT"), nil, Float(8), nil)
	cluster := []FragranceVariant{primary, dior("q", "Sauvage EDP"), dior("r", "Sauvage Parfum")}

	assert.Empty(t, AssignBadges(cluster, primary))
}

func TestAssignBadges_PrimaryWithoutIntensity(t *testing.T) {
	primary := dior("p", "Sauvage EDT")
	cluster := []FragranceVariant{
		primary,
		withStats(dior("q", "Sauvage EDP"), nil, Float(4), nil),
		withStats(dior("r", "Sauvage Parfum"), nil, Float(8), nil),
	}

	assert.Empty(t, AssignBadges(cluster, primary))
}

func TestAssignBadges_BestValueNeedsTwoPricedMembers(t *testing.T) {
	primary := withStats(dior("p", "Sauvage EDP"), nil, nil, Float(3))
	cluster := []FragranceVariant{
		primary,
		dior("a", "Sauvage EDT"),
		dior("b", "Sauvage Parfum"),
		dior("c", "Sauvage Elixir"),
	}

	assert.NotContains(t, badgeTypes(AssignBadges(cluster, primary)), BadgeBestValue)
}

func TestAssignBadges_UnpricedPrimaryNeverBestValue(t *testing.T) {
	primary := dior("p", "Sauvage EDP")
	primary.SampleAvailable = true
	cluster := []FragranceVariant{
		primary,
		withStats(dior("a", "Sauvage EDT"), nil, nil, Float(2)),
		withStats(dior("b", "Sauvage Parfum"), nil, nil, Float(4)),
	}

	assert.Empty(t, AssignBadges(cluster, primary))
}

func TestAssignBadges_PricierPrimary(t *testing.T) {
	primary := withStats(dior("p", "Sauvage EDP"), nil, nil, Float(6))
	cluster := []FragranceVariant{primary, withStats(dior("a", "Sauvage EDT"), nil, nil, Float(4))}

	assert.Empty(t, AssignBadges(cluster, primary))
}

func TestAssignBadges_MostPopular(t *testing.T) {
	tests := []struct {
		name       string
		primaryPop *float64
		otherPop   *float64
		want       bool
	}{
		{"strictly highest", Float(80), Float(60), true},
		{"shared maximum", Float(80), Float(80), true},
		{"lower", Float(40), Float(60), false},
		{"all zero", Float(0), nil, false},
		{"all missing", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := withStats(dior("p", "Sauvage EDP"), tt.primaryPop, nil, nil)
			cluster := []FragranceVariant{primary, withStats(dior("o", "Sauvage EDT"), tt.otherPop, nil, nil)}

			got := AssignBadges(cluster, primary)
			assert.Equal(t, tt.want, len(got) == 1 && got[0].Type == BadgeMostPopular)
		})
	}
}

func TestAssignBadges_Text(t *testing.T) {
	only := withStats(dior("1", "Dune"), Float(10), nil, nil)
	got := AssignBadges([]FragranceVariant{only}, only)

	if assert.Len(t, got, 1) {
		assert.Equal(t, "Most Popular", got[0].Label)
		assert.NotEmpty(t, got[0].Description)
	}
}
