package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/conectavoluntarios/api/internal/cache"
	"github.com/conectavoluntarios/api/internal/repo"
)

// OportunidadeService publica e lista oportunidades e ONGs.
type OportunidadeService struct {
	store Store
	cache listCache
}

// NewOportunidadeService cria o serviço; c pode ser nil.
func NewOportunidadeService(store Store, c *cache.JSONCache) *OportunidadeService {
	s := &OportunidadeService{store: store, cache: noCache{}}
	if c != nil {
		s.cache = c
	}
	return s
}

// CreateOportunidadeInput agrupa os campos enviados pela ONG.
type CreateOportunidadeInput struct {
	Titulo    string
	Descricao string
	OngNome   string
	Endereco  string
}

// Create garante a ONG pelo nome e insere a oportunidade na mesma transação.
func (s *OportunidadeService) Create(ctx context.Context, in CreateOportunidadeInput) (int64, error) {
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.OngNome = strings.TrimSpace(in.OngNome)
	in.Endereco = strings.TrimSpace(in.Endereco)
	if in.Titulo == "" || in.OngNome == "" {
		return 0, newError(ErrValidation, "titulo e ong_nome são obrigatórios")
	}

	var id int64
	err := s.store.InTx(ctx, func(q repo.Querier) error {
		ongID, err := q.UpsertOng(ctx, in.OngNome, in.Endereco)
		if err != nil {
			return err
		}
		id, err = q.CreateOportunidade(ctx, repo.CreateOportunidadeParams{
			Titulo:    in.Titulo,
			Descricao: in.Descricao,
			OngID:     ongID,
			OngNome:   in.OngNome,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx, cache.KeyOportunidades, cache.KeyOngs)
	log.Info().Int64("oportunidade_id", id).Str("ong", in.OngNome).Msg("oportunidade criada")
	return id, nil
}

func (s *OportunidadeService) List(ctx context.Context) ([]repo.Oportunidade, error) {
	var cached []repo.Oportunidade
	if s.cache.GetJSON(ctx, cache.KeyOportunidades, &cached) {
		return cached, nil
	}

	items, err := s.store.ListOportunidades(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.KeyOportunidades, items)
	return items, nil
}

func (s *OportunidadeService) Get(ctx context.Context, id int64) (repo.Oportunidade, error) {
	o, err := s.store.GetOportunidade(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return o, newError(ErrNotFound, "Oportunidade não encontrada")
	}
	return o, err
}

// ListOngs lista as ONGs já cadastradas por publicações.
func (s *OportunidadeService) ListOngs(ctx context.Context) ([]repo.Ong, error) {
	var cached []repo.Ong
	if s.cache.GetJSON(ctx, cache.KeyOngs, &cached) {
		return cached, nil
	}

	items, err := s.store.ListOngs(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.KeyOngs, items)
	return items, nil
}
