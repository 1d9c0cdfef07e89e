package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/callmeahab/scent-variants/variants"
)

// readVariants decodes a JSON array of variants.
func readVariants(r io.Reader) ([]variants.FragranceVariant, error) {
	var batch []variants.FragranceVariant
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to decode variants: %w", err)
	}
	return batch, nil
}

// groupsResponse is the payload shared by the group command and the RPC handlers.
type groupsResponse struct {
	RunID   string                  `json:"run_id,omitempty"`
	Groups  []variants.VariantGroup `json:"groups"`
	Skipped []*variants.RecordError `json:"skipped"`
	Stats   variants.Stats          `json:"stats"`
}

func newGroupsResponse(runID string, res *variants.Result) groupsResponse {
	skipped := res.Skipped
	if skipped == nil {
		skipped = []*variants.RecordError{}
	}
	return groupsResponse{
		RunID:   runID,
		Groups:  res.Groups,
		Skipped: skipped,
		Stats:   variants.Summarize(res.Groups),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// toStructPB converts a map or any JSON-marshalable value to a Struct.
func toStructPB(v any) (*structpb.Struct, error) {
	switch m := v.(type) {
	case map[string]any:
		return structpb.NewStruct(m)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var mm map[string]any
		if err := json.Unmarshal(b, &mm); err != nil {
			return nil, err
		}
		return structpb.NewStruct(mm)
	}
}

// fromStructPB decodes a Struct into dst through its JSON form.
func fromStructPB(s *structpb.Struct, dst any) error {
	if s == nil {
		return nil
	}
	b, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
