// Package dataset holds the fixed analytical datasets the assistant
// answers questions about, plus the SQLite store that persists them
// alongside chat history.
package dataset

import (
	"time"

	"agridata/internal/normalize"
)

// Dataset is one loaded dataset: a flat table of rows plus the
// metadata the prompt builder needs to describe it to the model.
type Dataset struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	SourceURL   string            `json:"source_url"`
	Fields      map[string]string `json:"fields"`
	Data        []map[string]any  `json:"data"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Message is one persisted chat turn. Citations and Visualizations
// carry the normalized assistant payload; for user messages both are
// empty.
type Message struct {
	ID             string               `json:"id"`
	SessionID      string               `json:"session_id"`
	Role           string               `json:"role"`
	Content        string               `json:"content"`
	Citations      []normalize.Citation `json:"citations"`
	Visualizations any                  `json:"visualizations,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
