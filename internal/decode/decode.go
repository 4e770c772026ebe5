package decode

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"careerpilot/pkg/errors"
	"careerpilot/pkg/types"
)

// Analysis parses an analyze-mode response as a strict JSON object. No
// fence stripping, no prose tolerance: a model that wraps its output in
// markdown violated the contract and the caller gets the raw text back
// inside the DecodeError. Missing keys default to zero values; unknown
// keys are ignored.
func Analysis(raw string) (*types.AnalysisResult, error) {
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsObject() {
		return nil, &errors.DecodeError{Reason: "malformed-json", Raw: raw}
	}
	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &errors.DecodeError{Reason: "schema-mismatch", Raw: raw}
	}
	return &result, nil
}
