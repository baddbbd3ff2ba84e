package httpdto

// ErrorResponse is the JSON error body returned by every failing endpoint.
// Details carries the upstream body when the external completion API fails.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// MessageResponse is a bare informational body, e.g. after registration.
type MessageResponse struct {
	Msg string `json:"msg"`
}
