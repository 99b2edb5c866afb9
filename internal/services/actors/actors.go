package actors

import (
	"context"
	"errors"
	"log/slog"

	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"
)

var ErrActorNotFound = errors.New("actor not found")

type ActorsStorage interface {
	GetByName(ctx context.Context, name string) (*models.Actor, error)
}

type ActorService struct {
	log     *slog.Logger
	storage ActorsStorage
}

func New(log *slog.Logger, storage ActorsStorage) *ActorService {
	return &ActorService{
		log:     log,
		storage: storage,
	}
}

// GetByName resolves an actor page. Actor names double as their URL slugs.
func (s *ActorService) GetByName(ctx context.Context, name string) (*models.Actor, error) {
	const op = "actors.ActorService.GetByName"
	log := s.log.With("op", op, "name", name)
	actor, err := s.storage.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("actor not found")
			return nil, ErrActorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return actor, nil
}
