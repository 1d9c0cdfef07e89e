package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/callmeahab/scent-variants/variants"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := &server{engine: variants.NewEngine(variants.WithWorkers(2)), batchSize: 100}
	ts := httptest.NewServer(s.handler())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, procedure string, payload map[string]any) (*structpb.Struct, error) {
	t.Helper()
	msg, err := structpb.NewStruct(payload)
	require.NoError(t, err)

	client := connect.NewClient[structpb.Struct, structpb.Struct](ts.Client(), ts.URL+procedure)
	res, err := client.CallUnary(context.Background(), connect.NewRequest(msg))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	msg, err := call(t, ts, healthProcedure, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "healthy", msg.AsMap()["status"])
}

func TestServer_ClusterAndAnnotate(t *testing.T) {
	ts := newTestServer(t)

	payload := map[string]any{
		"variants": []any{
			map[string]any{"id": "edt", "name": "Sauvage EDT", "brand": "Dior", "brand_id": "dior", "notes": []any{"bergamot", "pepper"}, "popularity_score": 90.0},
			map[string]any{"id": "edp", "name": "Sauvage EDP", "brand": "Dior", "brand_id": "dior", "notes": []any{"bergamot", "pepper"}, "popularity_score": 80.0},
			map[string]any{"id": "orphan", "name": "No Brand"},
		},
	}
	msg, err := call(t, ts, clusterProcedure, payload)
	require.NoError(t, err)

	var out struct {
		RunID   string                  `json:"run_id"`
		Groups  []variants.VariantGroup `json:"groups"`
		Skipped []map[string]any        `json:"skipped"`
		Stats   variants.Stats          `json:"stats"`
	}
	require.NoError(t, fromStructPB(msg, &out))

	assert.NotEmpty(t, out.RunID)
	require.Len(t, out.Groups, 1)
	g := out.Groups[0]
	assert.Equal(t, "sauvage-dior", g.GroupID)
	assert.Equal(t, 2, g.TotalVariants)
	assert.Equal(t, 90.0, g.PopularityScore)
	assert.Len(t, g.ExperienceRecommendations, 3)

	require.Len(t, out.Skipped, 1)
	assert.Equal(t, "orphan", out.Skipped[0]["id"])
	assert.Equal(t, "brand_id", out.Skipped[0]["field"])
	assert.Equal(t, 1, out.Stats.TotalGroups)
}

func TestServer_ClusterAndAnnotate_Empty(t *testing.T) {
	ts := newTestServer(t)

	msg, err := call(t, ts, clusterProcedure, map[string]any{})
	require.NoError(t, err)

	m := msg.AsMap()
	assert.Equal(t, []any{}, m["groups"])
	assert.Equal(t, []any{}, m["skipped"])
}

func TestServer_ClusterAndAnnotate_BadPayload(t *testing.T) {
	ts := newTestServer(t)

	_, err := call(t, ts, clusterProcedure, map[string]any{"variants": "not a list"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestServer_GroupBrandWithoutDatabase(t *testing.T) {
	ts := newTestServer(t)

	_, err := call(t, ts, groupBrandProcedure, map[string]any{"brand_id": "dior"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)

	res, err := ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
