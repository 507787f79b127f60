package response

import (
	"time"

	"fabar_drinks/internal/domain/entities"
	"fabar_drinks/internal/usecase"
)

type SessionResponse struct {
	ID        string                `json:"id"`
	State     string                `json:"state"`
	Version   int64                 `json:"version"`
	Form      entities.QuoteRequest `json:"form"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	ExpiresAt time.Time             `json:"expires_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		State:     string(s.State),
		Version:   s.Version,
		Form:      s.Form.Clone(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

// SubmissionResponse is returned by submit and preview. Clients open Link in a
// new browsing context; delivery is not tracked.
type SubmissionResponse struct {
	Session *SessionResponse `json:"session,omitempty"`
	Message string           `json:"message"`
	Link    string           `json:"whatsapp_url"`
}

func FromSubmission(sub usecase.Submission) SubmissionResponse {
	res := SubmissionResponse{Message: sub.Message, Link: sub.Link}
	if sub.Session.ID != "" {
		s := FromSession(sub.Session)
		res.Session = &s
	}
	return res
}

type CatalogResponse struct {
	entities.Catalog
	WhatsAppPhone string `json:"whatsapp_phone"`
}

func FromCatalog(c entities.Catalog, phone string) CatalogResponse {
	return CatalogResponse{Catalog: c, WhatsAppPhone: phone}
}
