package models

// ChatMessage is one line of the office chat, persisted to the chat history
// collection and broadcast to every open socket.
type ChatMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// AuditEntry records one sensitive action for the audit trail.
type AuditEntry struct {
	ID        string         `json:"id"`
	User      string         `json:"user"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// PhotoEntry records an image uploaded through the hosting proxy.
type PhotoEntry struct {
	Link string `json:"link"`
	User string `json:"user"`
	Date string `json:"date"`
}
