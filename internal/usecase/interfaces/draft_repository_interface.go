package interfaces

import (
	"context"

	"fabar_drinks/internal/domain/entities"
)

// IDraftRepository stores visitor draft sessions.
//
// Missing and expired sessions read as the zero Session (empty ID), the same
// convention the use case applies to every lookup.
//
// Update loads the session, runs fn on it and stores the result atomically
// with respect to other writers of the same store. When fn returns an error
// nothing is written and the error is returned as is.
type IDraftRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	Update(ctx context.Context, id string, fn func(s *entities.Session) error) (entities.Session, error)
}
