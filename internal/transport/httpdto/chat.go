package httpdto

import "encoding/json"

// ChatRequest is used for POST /chat
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse returns the extracted completion text plus the unmodified
// upstream payload
type ChatResponse struct {
	Response string          `json:"response"`
	Raw      json.RawMessage `json:"raw"`
}
