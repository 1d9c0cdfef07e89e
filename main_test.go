package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
	{"id": "edt", "name": "Sauvage EDT", "brand": "Dior", "brand_id": "dior", "notes": ["bergamot", "pepper"], "popularity_score": 90, "sample_available": true},
	{"id": "edp", "name": "Sauvage EDP", "brand": "Dior", "brand_id": "dior", "notes": ["bergamot", "pepper"], "popularity_score": 80},
	{"id": "dune", "name": "Dune", "brand": "Dior", "brand_id": "dior"},
	{"name": "Broken"}
]`

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "disabled")
	defer func(l zerolog.Logger) { log.Logger = l }(log.Logger)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	return newApp().Run(append([]string{"scent-variants"}, args...))
}

func TestGroupCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "variants.json")
	out := filepath.Join(dir, "groups.json")
	require.NoError(t, os.WriteFile(in, []byte(sampleCatalog), 0o600))

	require.NoError(t, runApp(t, "group", "--in", in, "--out", out))

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	var resp struct {
		RunID  string `json:"run_id"`
		Groups []struct {
			GroupID       string `json:"group_id"`
			TotalVariants int    `json:"total_variants"`
		} `json:"groups"`
		Skipped []map[string]any `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(b, &resp))

	assert.NotEmpty(t, resp.RunID)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "sauvage-dior", resp.Groups[0].GroupID)
	assert.Equal(t, 2, resp.Groups[0].TotalVariants)
	assert.Equal(t, "dune-dior", resp.Groups[1].GroupID)
	assert.Len(t, resp.Skipped, 2)
}

func TestGroupCommand_MissingInput(t *testing.T) {
	err := runApp(t, "group", "--in", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open")
}

func TestStatsCommand_File(t *testing.T) {
	in := filepath.Join(t.TempDir(), "variants.json")
	require.NoError(t, os.WriteFile(in, []byte(sampleCatalog), 0o600))

	assert.NoError(t, runApp(t, "stats", "--in", in))
}
