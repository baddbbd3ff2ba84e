package prompt

import (
	"encoding/json"
	"time"
)

// TimestampLayout is a fixed-width UTC ISO-8601 form with millisecond
// precision, so stored timestamps sort lexicographically.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func Now() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// Record is one stored prompt. Metadata is an arbitrary optional payload,
// opaque to the server, passed through verbatim.
type Record struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Prompt    string          `json:"prompt"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// HistoryEntry is one chat exchange. ID is a 1-based sequence number local
// to the owning user's history; Raw is the unmodified upstream payload.
type HistoryEntry struct {
	ID        int             `json:"id"`
	Prompt    string          `json:"prompt"`
	Response  string          `json:"response"`
	Raw       json.RawMessage `json:"raw"`
	CreatedAt string          `json:"created_at"`
}

// UserData is the durable unit of storage: one file per user holding that
// user's prompts and chat history.
type UserData struct {
	Username string         `json:"username"`
	Prompts  []Record       `json:"prompts"`
	History  []HistoryEntry `json:"history"`
}

// NewUserData returns the empty shape a per-user file is initialized with.
func NewUserData(username string) UserData {
	return UserData{
		Username: username,
		Prompts:  []Record{},
		History:  []HistoryEntry{},
	}
}
