package approval

import "time"

// Request represents a request for confirmation
type Request struct {
	ID        string    `json:"id"`                  // unique per request
	SessionID string    `json:"sessionId,omitempty"` // owning shell session
	Action    string    `json:"action"`              // "service.method"
	Path      string    `json:"path,omitempty"`      // affected path
	Question  string    `json:"question"`            // prompt shown to the user
	CreatedAt time.Time `json:"createdAt"`
}

// Decision represents confirmation decision
type Decision struct {
	ID        string    `json:"id"` // same as request.ID
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}
