package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/conectavoluntarios/api/internal/repo"
)

const (
	cpfLength   = 11
	cpfSentinel = "00000000000"
	// tentativas de inscrição: a primeira mais uma após conflito de CPF.
	submitAttempts = 2
)

// NormalizeCPF remove pontos e hífens. Valores que passam de 11 caracteres
// viram o CPF sentinela em vez de serem rejeitados.
func NormalizeCPF(raw string) string {
	cpf := strings.TrimSpace(raw)
	cpf = strings.NewReplacer(".", "", "-", "").Replace(cpf)
	if len(cpf) > cpfLength {
		return cpfSentinel
	}
	return cpf
}

// InscricaoService trata candidaturas de voluntários.
type InscricaoService struct {
	store Store
}

func NewInscricaoService(store Store) *InscricaoService {
	return &InscricaoService{store: store}
}

// SubmitInput são os dados do formulário de inscrição.
type SubmitInput struct {
	Nome           string
	Nascimento     string
	CPF            string
	Mensagem       string
	OportunidadeID int64
}

// Submit reaproveita ou cria o voluntário pelo CPF e registra a inscrição como pendente.
// Se outro pedido criar o mesmo CPF entre a busca e o insert, a transação é refeita uma vez.
func (s *InscricaoService) Submit(ctx context.Context, in SubmitInput) (int64, error) {
	nascimento, err := time.Parse("2006-01-02", strings.TrimSpace(in.Nascimento))
	if err != nil {
		return 0, newError(ErrValidation, "nascimento inválido (use AAAA-MM-DD)")
	}
	if strings.TrimSpace(in.Nome) == "" {
		return 0, newError(ErrValidation, "nome obrigatório")
	}
	if in.OportunidadeID <= 0 {
		return 0, newError(ErrValidation, "oportunidade_id inválido")
	}

	cpf := NormalizeCPF(in.CPF)
	voluntario := repo.CreateVoluntarioParams{
		Nome:       strings.TrimSpace(in.Nome),
		Nascimento: nascimento,
		CPF:        cpf,
		Mensagem:   in.Mensagem,
	}

	var inscricaoID int64
	for attempt := 1; attempt <= submitAttempts; attempt++ {
		err = s.store.InTx(ctx, func(q repo.Querier) error {
			if _, err := q.GetOportunidade(ctx, in.OportunidadeID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return newError(ErrNotFound, "Oportunidade não encontrada")
				}
				return err
			}

			voluntarioID, err := q.GetVoluntarioIDByCPF(ctx, cpf)
			if errors.Is(err, repo.ErrNotFound) {
				voluntarioID, err = q.CreateVoluntario(ctx, voluntario)
			}
			if err != nil {
				return err
			}

			inscricaoID, err = q.CreateInscricao(ctx, voluntarioID, in.OportunidadeID, repo.StatusPendente)
			return err
		})
		if err == nil {
			return inscricaoID, nil
		}
		if !repo.IsDuplicateOn(err, repo.ConstraintVoluntarioCPF) {
			return 0, err
		}
		log.Warn().Int("attempt", attempt).Msg("inscrição: CPF criado concorrentemente, refazendo")
	}

	return 0, err
}

// UpdateStatus altera o status de uma inscrição existente. O valor precisa ser
// exatamente um dos status aceitos; não há normalização de caixa ou espaços.
func (s *InscricaoService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !repo.ValidStatus(status) {
		return newError(ErrValidation, "Status inválido")
	}

	err := s.store.InTx(ctx, func(q repo.Querier) error {
		return q.UpdateInscricaoStatus(ctx, id, status)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return newError(ErrNotFound, "Inscrição não encontrada")
	}
	return err
}

func (s *InscricaoService) List(ctx context.Context) ([]repo.Inscricao, error) {
	return s.store.ListInscricoes(ctx)
}

func (s *InscricaoService) ListByOng(ctx context.Context, ongID int64) ([]repo.Inscricao, error) {
	return s.store.ListInscricoesByOng(ctx, ongID)
}

func (s *InscricaoService) ListByVoluntario(ctx context.Context, voluntarioID int64) ([]repo.Inscricao, error) {
	return s.store.ListInscricoesByVoluntario(ctx, voluntarioID)
}
