package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbrennan/fitlog/internal/db"
	"github.com/mbrennan/fitlog/internal/domain"
	"github.com/mbrennan/fitlog/internal/repository"
)

type typeService struct {
	types    repository.WorkoutTypeRepo
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewTypeService(types repository.WorkoutTypeRepo, sessions repository.SessionRepo, uow db.UnitOfWork) TypeService {
	return &typeService{types: types, sessions: sessions, uow: uow}
}

func (s *typeService) Create(ctx context.Context, name string) (*domain.WorkoutType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("workout type name must not be empty")
	}

	wt := &domain.WorkoutType{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.types.Create(ctx, wt); err != nil {
		return nil, err
	}
	return wt, nil
}

func (s *typeService) GetByID(ctx context.Context, id string) (*domain.WorkoutType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *typeService) List(ctx context.Context) ([]*domain.WorkoutType, error) {
	return s.types.List(ctx)
}

func (s *typeService) Delete(ctx context.Context, id string) error {
	if _, err := s.types.GetByID(ctx, id); err != nil {
		return err
	}
	return s.types.Delete(ctx, id)
}

// Purge deletes the type and all of its sessions atomically.
func (s *typeService) Purge(ctx context.Context, id string) error {
	if _, err := s.types.GetByID(ctx, id); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txTypes := repository.NewSQLiteWorkoutTypeRepo(tx)

		if err := txSessions.DeleteByType(ctx, id); err != nil {
			return err
		}
		return txTypes.Delete(ctx, id)
	})
}
