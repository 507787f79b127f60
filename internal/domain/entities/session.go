package entities

import "time"

// ViewState is the state of the single-page view.
type ViewState string

const (
	ViewStateEditing   ViewState = "editing"
	ViewStateSubmitted ViewState = "submitted"
)

// Session is a visitor's draft: the record being edited plus the view state.
//
// Storage model:
//   - memory: keyed by ID, invisible once ExpiresAt has passed
//   - DynamoDB: PK id, expires_at (epoch seconds) as the table TTL attribute
//
// Version is bumped on every write and guards DynamoDB conditional puts.
type Session struct {
	ID        string       `json:"id"`
	Form      QuoteRequest `json:"form"`
	State     ViewState    `json:"state"`
	Version   int64        `json:"version"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Submit flips the view to the confirmation screen. Submitting again from the
// confirmation screen is allowed; the record is never touched.
func (s *Session) Submit() {
	s.State = ViewStateSubmitted
}

// Restart returns to the editable form keeping every field value.
func (s *Session) Restart() {
	s.State = ViewStateEditing
}

// Touch records a write and extends the idle lifetime.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.Version++
	s.UpdatedAt = now
	if ttl > 0 {
		s.ExpiresAt = now.Add(ttl)
	}
}
