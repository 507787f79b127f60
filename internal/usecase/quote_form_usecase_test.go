package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fabar_drinks/internal/adapter/persistence/repository"
	"fabar_drinks/internal/domain/entities"
	mock_interfaces "fabar_drinks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fakeGateway struct {
	texts []string
}

func (g *fakeGateway) DeepLink(text string) string {
	g.texts = append(g.texts, text)
	return "https://wa.test/send?text=" + text
}

var fixedNow = time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mock_interfaces.MockIDraftRepository, gw *fakeGateway) *QuoteFormUseCase {
	uc := NewQuoteFormUseCase(repo, gw, time.Hour, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// applyUpdate makes the mocked Update behave like a store holding s.
func applyUpdate(s entities.Session) func(context.Context, string, func(*entities.Session) error) (entities.Session, error) {
	return func(_ context.Context, _ string, fn func(*entities.Session) error) (entities.Session, error) {
		work := s
		work.Form = s.Form.Clone()
		if err := fn(&work); err != nil {
			return entities.Session{}, err
		}
		return work, nil
	}
}

func editingSession() entities.Session {
	return entities.Session{
		ID:        "s-1",
		Form:      entities.NewQuoteRequest(),
		State:     entities.ViewStateEditing,
		Version:   1,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
		ExpiresAt: fixedNow.Add(time.Hour),
	}
}

func TestQuoteFormUseCase_StartSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Session{})).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.ID == "" || s.State != entities.ViewStateEditing || s.Version != 1 {
					t.Fatalf("unexpected session: %+v", s)
				}
				if !s.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
					t.Fatalf("unexpected expiry: %v", s.ExpiresAt)
				}
				if s.Form.BeverageTypes == nil || s.Form.Services == nil {
					t.Fatalf("expected empty sets, got %+v", s.Form)
				}
				return s, nil
			},
		)

		s, err := uc.StartSession(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Session{}, errors.New("db"))

		if _, err := uc.StartSession(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteFormUseCase_GetSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newTestUseCase(nil, &fakeGateway{})
		if _, err := uc.GetSession(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Session{}, nil)

		if _, err := uc.GetSession(context.Background(), " s-1 "); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(editingSession(), nil)

		s, err := uc.GetSession(context.Background(), "s-1")
		if err != nil || s.ID != "s-1" {
			t.Fatalf("unexpected result: %+v %v", s, err)
		}
	})
}

func TestQuoteFormUseCase_FieldOperations(t *testing.T) {
	t.Run("set field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(editingSession()))

		s, err := uc.SetField(context.Background(), "s-1", entities.FieldLocation, "Salão Jardim")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Form.Location != "Salão Jardim" || s.Version != 2 {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("toggle set member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		start := editingSession()
		start.Form.Services = []string{entities.ServiceBarCompleto}
		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(start))

		s, err := uc.ToggleSetMember(context.Background(), "s-1", entities.FieldServices, entities.ServiceBarCompleto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Form.Services) != 0 {
			t.Fatalf("expected service removed, got %v", s.Form.Services)
		}
	})

	t.Run("select single", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		start := editingSession()
		start.Form.PaymentMethod = entities.PaymentMethodPIX
		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(start))

		s, err := uc.SelectSingle(context.Background(), "s-1", entities.FieldPaymentMethod, entities.PaymentMethodCartaoComTaxa)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Form.PaymentMethod != entities.PaymentMethodCartaoComTaxa {
			t.Fatalf("unexpected payment method: %q", s.Form.PaymentMethod)
		}
	})

	t.Run("unknown field propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(editingSession()))

		if _, err := uc.SetField(context.Background(), "s-1", "nickname", "x"); !errors.Is(err, entities.ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().Update(gomock.Any(), "gone", gomock.Any()).Return(entities.Session{}, nil)

		if _, err := uc.SetField(context.Background(), "gone", entities.FieldTime, "19:00"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := newTestUseCase(nil, &fakeGateway{})
		if _, err := uc.ToggleSetMember(context.Background(), "", entities.FieldServices, "x"); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("replace form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(editingSession()))

		form := entities.QuoteRequest{FullName: "Ana Silva", BeverageTypes: []string{entities.BeverageVinho}}
		s, err := uc.ReplaceForm(context.Background(), "s-1", form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		form.BeverageTypes[0] = "mutated"
		if s.Form.FullName != "Ana Silva" || s.Form.BeverageTypes[0] != entities.BeverageVinho {
			t.Fatalf("unexpected form: %+v", s.Form)
		}
	})
}

func TestQuoteFormUseCase_SubmitAndRestart(t *testing.T) {
	filled := editingSession()
	filled.Form = entities.QuoteRequest{
		FullName:         "Ana Silva",
		WhatsApp:         "61999998888",
		EventType:        entities.EventTypeCasamento,
		BeverageTypes:    []string{entities.BeverageVinho},
		Date:             "2024-12-20",
		Time:             "19:00",
		Location:         "Salão Jardim",
		GuestCount:       "80",
		Services:         []string{entities.ServiceBarCompleto},
		DrinkPreferences: "Clássicos",
		PaymentMethod:    entities.PaymentMethodPIX,
	}

	t.Run("submit formats once and flips state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gw := &fakeGateway{}
		uc := newTestUseCase(repo, gw)

		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(filled))

		checked := 0
		sub, err := uc.Submit(context.Background(), "s-1", func(q entities.QuoteRequest) error {
			checked++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Session.State != entities.ViewStateSubmitted {
			t.Fatalf("expected submitted state, got %s", sub.Session.State)
		}
		if len(gw.texts) != 1 || checked != 1 {
			t.Fatalf("expected exactly one check and one handoff, got %d/%d", checked, len(gw.texts))
		}
		for _, want := range []string{"Data: 20/12/2024", "Número de convidados: 80", "Nenhuma personalização solicitada"} {
			if !strings.Contains(sub.Message, want) {
				t.Fatalf("message missing %q:\n%s", want, sub.Message)
			}
		}
		if sub.Link != "https://wa.test/send?text="+sub.Message {
			t.Fatalf("unexpected link: %s", sub.Link)
		}
		if sub.Session.Form.FullName != "Ana Silva" {
			t.Fatalf("submit must not clear the record")
		}
	})

	t.Run("submit repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).Return(entities.Session{}, repository.ErrDraftConflict)

		if _, err := uc.Submit(context.Background(), "s-1", nil); !errors.Is(err, repository.ErrDraftConflict) {
			t.Fatalf("expected ErrDraftConflict, got %v", err)
		}
	})

	t.Run("check runs against the stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gw := &fakeGateway{}
		uc := newTestUseCase(repo, gw)

		// The caller saw a complete record, but the location was cleared
		// before the submit reached the store.
		cleared := filled
		cleared.Form = filled.Form.Clone()
		cleared.Form.Location = ""
		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(cleared))

		requireLocation := func(q entities.QuoteRequest) error {
			if q.Location == "" {
				return ErrIncompleteForm
			}
			return nil
		}
		_, err := uc.Submit(context.Background(), "s-1", requireLocation)
		if !errors.Is(err, ErrIncompleteForm) {
			t.Fatalf("expected ErrIncompleteForm, got %v", err)
		}
		if len(gw.texts) != 0 {
			t.Fatalf("incomplete record must not be formatted, got %d handoffs", len(gw.texts))
		}
	})

	t.Run("restart keeps values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := newTestUseCase(repo, &fakeGateway{})

		submitted := filled
		submitted.State = entities.ViewStateSubmitted
		repo.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(applyUpdate(submitted))

		s, err := uc.Restart(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State != entities.ViewStateEditing {
			t.Fatalf("expected editing, got %s", s.State)
		}
		if s.Form.Location != "Salão Jardim" || s.Form.GuestCount != "80" {
			t.Fatalf("restart must keep values, got %+v", s.Form)
		}
	})
}

func TestQuoteFormUseCase_Preview(t *testing.T) {
	gw := &fakeGateway{}
	uc := newTestUseCase(nil, gw)

	sub := uc.Preview(entities.QuoteRequest{FullName: "Ana"})
	if !strings.Contains(sub.Message, "Nome: Ana\n") {
		t.Fatalf("unexpected message: %s", sub.Message)
	}
	if sub.Session.ID != "" {
		t.Fatalf("preview must not involve a session")
	}
	if len(gw.texts) != 1 {
		t.Fatalf("expected one link built")
	}
}
