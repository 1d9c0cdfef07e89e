package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmeahab/scent-variants/variants"
)

func TestReadVariants(t *testing.T) {
	in := `[
		{"id": "1", "name": "Sauvage EDT", "brand": "Dior", "brand_id": "dior", "notes": ["bergamot"], "intensity_score": 0, "sample_available": true},
		{"id": "2", "name": "Dune", "brand_id": "dior"}
	]`

	batch, err := readVariants(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, batch, 2)

	assert.Equal(t, []string{"bergamot"}, batch[0].Notes)
	require.NotNil(t, batch[0].IntensityScore)
	assert.Equal(t, 0.0, *batch[0].IntensityScore)
	assert.True(t, batch[0].SampleAvailable)
	assert.Nil(t, batch[1].IntensityScore)
	assert.Nil(t, batch[1].PopularityScore)
}

func TestReadVariants_Invalid(t *testing.T) {
	_, err := readVariants(strings.NewReader(`{"id": "1"}`))
	assert.ErrorContains(t, err, "failed to decode variants")
}

func TestNewGroupsResponse_JSON(t *testing.T) {
	res, err := variants.ClusterAndAnnotate([]variants.FragranceVariant{
		{ID: "1", Name: "Dune", Brand: "Dior", BrandID: "dior"},
		{ID: "2", Name: "Nameless"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, newGroupsResponse("run-1", res)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "run-1", out["run_id"])
	assert.Len(t, out["groups"], 1)

	skipped := out["skipped"].([]any)
	require.Len(t, skipped, 1)
	assert.Equal(t, "brand_id", skipped[0].(map[string]any)["field"])

	stats := out["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["totalGroups"])
}

func TestNewGroupsResponse_NoSkips(t *testing.T) {
	resp := newGroupsResponse("", &variants.Result{Groups: []variants.VariantGroup{}})
	assert.NotNil(t, resp.Skipped)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "run_id")
	assert.Contains(t, string(b), `"skipped":[]`)
}

func TestStructPBRoundTrip(t *testing.T) {
	in := groupBrandRequest{BrandID: "dior"}

	st, err := toStructPB(in)
	require.NoError(t, err)
	assert.Equal(t, "dior", st.AsMap()["brand_id"])

	var out groupBrandRequest
	require.NoError(t, fromStructPB(st, &out))
	assert.Equal(t, in, out)

	var untouched groupBrandRequest
	require.NoError(t, fromStructPB(nil, &untouched))
	assert.Empty(t, untouched.BrandID)
}
