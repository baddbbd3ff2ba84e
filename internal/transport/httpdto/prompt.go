package httpdto

import "encoding/json"

// CreatePromptRequest is used for POST /prompts and PUT /prompts/:id.
// Metadata is passed through verbatim.
type CreatePromptRequest struct {
	Type     string          `json:"type"`
	Prompt   string          `json:"prompt"`
	Metadata json.RawMessage `json:"metadata"`
}

// PatchPromptRequest is used for PATCH /prompts/:id. Pointer fields
// distinguish absent keys from explicit values, so only the fields present
// in the body are merged.
type PatchPromptRequest struct {
	Type     *string          `json:"type"`
	Prompt   *string          `json:"prompt"`
	Metadata *json.RawMessage `json:"metadata"`
}

// UnmarshalJSON decodes by key presence. A plain struct decode cannot
// represent an explicit `"metadata": null` (the decoder nils the pointer
// instead of pointing it at the null literal), so presence is tracked via
// the raw key set: a present metadata key always yields a non-nil pointer,
// and null clears the stored value.
func (r *PatchPromptRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["type"]; ok {
		if err := json.Unmarshal(raw, &r.Type); err != nil {
			return err
		}
	}
	if raw, ok := fields["prompt"]; ok {
		if err := json.Unmarshal(raw, &r.Prompt); err != nil {
			return err
		}
	}
	if raw, ok := fields["metadata"]; ok {
		m := make(json.RawMessage, len(raw))
		copy(m, raw)
		r.Metadata = &m
	}
	return nil
}
