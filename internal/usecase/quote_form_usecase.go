package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fabar_drinks/internal/domain/entities"
	"fabar_drinks/internal/domain/message"
	"fabar_drinks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrIncompleteForm   = errors.New("required fields are missing")
)

// FormCheck inspects the record about to be submitted. A non-nil error stops
// the submit before anything is formatted.
type FormCheck func(entities.QuoteRequest) error

// Submission is the outcome of a submit action: the text that was formatted
// and the deep link handed to the browser. Nothing confirms the handoff.
type Submission struct {
	Session entities.Session
	Message string
	Link    string
}

// IQuoteFormUseCase exposes the quote form operations.
//
//   - field-level edits => SetField / ToggleSetMember / SelectSingle
//   - whole-form post from the HTML page => ReplaceForm
//   - "Enviar via WhatsApp" => Submit
//   - "Nova Solicitação" => Restart
type IQuoteFormUseCase interface {
	StartSession(ctx context.Context) (entities.Session, error)
	GetSession(ctx context.Context, id string) (entities.Session, error)
	SetField(ctx context.Context, id, field, value string) (entities.Session, error)
	ToggleSetMember(ctx context.Context, id, field, value string) (entities.Session, error)
	SelectSingle(ctx context.Context, id, field, value string) (entities.Session, error)
	ReplaceForm(ctx context.Context, id string, form entities.QuoteRequest) (entities.Session, error)
	Submit(ctx context.Context, id string, check FormCheck) (Submission, error)
	Restart(ctx context.Context, id string) (entities.Session, error)
	Preview(form entities.QuoteRequest) Submission
}

type QuoteFormUseCase struct {
	repo    interfaces.IDraftRepository
	gateway interfaces.IMessageGateway
	ttl     time.Duration
	now     func() time.Time
	log     *zap.Logger
}

var _ IQuoteFormUseCase = (*QuoteFormUseCase)(nil)

func NewQuoteFormUseCase(repo interfaces.IDraftRepository, gateway interfaces.IMessageGateway, ttl time.Duration, log *zap.Logger) *QuoteFormUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteFormUseCase{
		repo:    repo,
		gateway: gateway,
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
	}
}

func (u *QuoteFormUseCase) StartSession(ctx context.Context) (entities.Session, error) {
	now := u.now()
	s := entities.Session{
		ID:        uuid.NewString(),
		Form:      entities.NewQuoteRequest(),
		State:     entities.ViewStateEditing,
		CreatedAt: now,
	}
	s.Touch(now, u.ttl)

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		u.log.Error("session create failed", zap.String("session_id", s.ID), zap.Error(err))
		return entities.Session{}, err
	}
	u.log.Debug("session started", zap.String("session_id", created.ID))
	return created, nil
}

func (u *QuoteFormUseCase) GetSession(ctx context.Context, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *QuoteFormUseCase) SetField(ctx context.Context, id, field, value string) (entities.Session, error) {
	return u.editForm(ctx, id, func(q entities.QuoteRequest) (entities.QuoteRequest, error) {
		return q.SetField(field, value)
	})
}

func (u *QuoteFormUseCase) ToggleSetMember(ctx context.Context, id, field, value string) (entities.Session, error) {
	return u.editForm(ctx, id, func(q entities.QuoteRequest) (entities.QuoteRequest, error) {
		return q.ToggleSetMember(field, value)
	})
}

func (u *QuoteFormUseCase) SelectSingle(ctx context.Context, id, field, value string) (entities.Session, error) {
	return u.editForm(ctx, id, func(q entities.QuoteRequest) (entities.QuoteRequest, error) {
		return q.SelectSingle(field, value)
	})
}

func (u *QuoteFormUseCase) ReplaceForm(ctx context.Context, id string, form entities.QuoteRequest) (entities.Session, error) {
	return u.editForm(ctx, id, func(entities.QuoteRequest) (entities.QuoteRequest, error) {
		return form.Clone(), nil
	})
}

// Submit formats the current record once, builds the deep link and flips the
// view to the confirmation screen. check runs on the stored record inside the
// same update, so an edit racing the submit cannot slip past it.
func (u *QuoteFormUseCase) Submit(ctx context.Context, id string, check FormCheck) (Submission, error) {
	var sub Submission
	s, err := u.update(ctx, id, func(s *entities.Session) error {
		if check != nil {
			if err := check(s.Form); err != nil {
				return err
			}
		}
		sub = u.Preview(s.Form)
		s.Submit()
		return nil
	})
	if err != nil {
		return Submission{}, err
	}
	sub.Session = s
	u.log.Info("quote request submitted",
		zap.String("session_id", s.ID),
		zap.String("event_type", s.Form.EventType),
		zap.Int("message_len", len(sub.Message)),
	)
	return sub, nil
}

// Restart goes back to the editable form. Field values are kept.
func (u *QuoteFormUseCase) Restart(ctx context.Context, id string) (entities.Session, error) {
	return u.update(ctx, id, func(s *entities.Session) error {
		s.Restart()
		return nil
	})
}

// Preview formats a record without touching any session.
func (u *QuoteFormUseCase) Preview(form entities.QuoteRequest) Submission {
	text := message.Format(form)
	return Submission{Message: text, Link: u.gateway.DeepLink(text)}
}

func (u *QuoteFormUseCase) editForm(ctx context.Context, id string, edit func(entities.QuoteRequest) (entities.QuoteRequest, error)) (entities.Session, error) {
	return u.update(ctx, id, func(s *entities.Session) error {
		form, err := edit(s.Form)
		if err != nil {
			return err
		}
		s.Form = form
		return nil
	})
}

func (u *QuoteFormUseCase) update(ctx context.Context, id string, fn func(s *entities.Session) error) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}

	now := u.now()
	updated, err := u.repo.Update(ctx, id, func(s *entities.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		s.Touch(now, u.ttl)
		return nil
	})
	if err != nil {
		u.log.Debug("session update failed", zap.String("session_id", id), zap.Error(err))
		return entities.Session{}, err
	}
	if updated.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return updated, nil
}
