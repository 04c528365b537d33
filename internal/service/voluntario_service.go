package service

import (
	"context"
	"errors"

	"github.com/conectavoluntarios/api/internal/repo"
)

// VoluntarioService expõe consultas de voluntários.
type VoluntarioService struct {
	store Store
}

func NewVoluntarioService(store Store) *VoluntarioService {
	return &VoluntarioService{store: store}
}

func (s *VoluntarioService) List(ctx context.Context) ([]repo.Voluntario, error) {
	return s.store.ListVoluntarios(ctx)
}

func (s *VoluntarioService) Get(ctx context.Context, id int64) (repo.Voluntario, error) {
	v, err := s.store.GetVoluntario(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return v, newError(ErrNotFound, "Voluntário não encontrado")
	}
	return v, err
}
