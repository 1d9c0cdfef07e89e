package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	res, err := ClusterAndAnnotate(catalog())
	require.NoError(t, err)

	stats := Summarize(res.Groups)
	assert.Equal(t, 4, stats.TotalGroups)
	assert.Equal(t, 8, stats.TotalVariants)
	assert.Equal(t, 1, stats.SingletonGroups)
	assert.Equal(t, 3, stats.MultiVariantGroups)
	assert.Equal(t, 3, stats.MaxVariantsPerGroup)
	assert.InDelta(t, 2.0, stats.AvgVariantsPerGroup, 1e-9)
	assert.Equal(t, 1, stats.BadgeCounts[BadgeLightest])
	// Sauvage recommends the EDP and Elixir to enthusiasts and collectors
	assert.GreaterOrEqual(t, stats.AlternativeRecGroups, 1)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	assert.Zero(t, stats.TotalGroups)
	assert.Zero(t, stats.AvgVariantsPerGroup)
	assert.NotNil(t, stats.BadgeCounts)
}
