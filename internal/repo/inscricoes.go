package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (q *Queries) CreateInscricao(ctx context.Context, voluntarioID, oportunidadeID int64, status string) (int64, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO inscricoes (voluntario_id, oportunidade_id, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, voluntarioID, oportunidadeID, status).Scan(&id)
	return id, translateError(err)
}

// ListInscricoes lista todas as inscrições com o nome do voluntário, mais recentes primeiro.
func (q *Queries) ListInscricoes(ctx context.Context) ([]Inscricao, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	rows, err := q.db.Query(ctx, `
		SELECT i.id, i.voluntario_id, v.nome, i.oportunidade_id, i.data_inscricao, i.status
		FROM inscricoes i
		JOIN voluntarios v ON v.id = i.voluntario_id
		ORDER BY i.data_inscricao DESC, i.id DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectInscricoes(rows, func(row pgx.Rows, i *Inscricao) error {
		return row.Scan(&i.ID, &i.VoluntarioID, &i.VoluntarioNome, &i.OportunidadeID, &i.DataInscricao, &i.Status)
	})
}

// ListInscricoesByOng lista candidatos das oportunidades da ONG.
func (q *Queries) ListInscricoesByOng(ctx context.Context, ongID int64) ([]Inscricao, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	rows, err := q.db.Query(ctx, `
		SELECT i.id, i.voluntario_id, v.nome, i.oportunidade_id, o.titulo, i.data_inscricao, i.status
		FROM inscricoes i
		JOIN oportunidades o ON o.id = i.oportunidade_id
		JOIN voluntarios v ON v.id = i.voluntario_id
		WHERE o.ong_id = $1
		ORDER BY i.data_inscricao DESC, i.id DESC
	`, ongID)
	if err != nil {
		return nil, err
	}
	return collectInscricoes(rows, func(row pgx.Rows, i *Inscricao) error {
		return row.Scan(&i.ID, &i.VoluntarioID, &i.VoluntarioNome, &i.OportunidadeID, &i.OportunidadeTitulo, &i.DataInscricao, &i.Status)
	})
}

// ListInscricoesByVoluntario lista as inscrições de um voluntário.
func (q *Queries) ListInscricoesByVoluntario(ctx context.Context, voluntarioID int64) ([]Inscricao, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	rows, err := q.db.Query(ctx, `
		SELECT i.id, i.oportunidade_id, o.titulo, i.data_inscricao, i.status
		FROM inscricoes i
		JOIN oportunidades o ON o.id = i.oportunidade_id
		WHERE i.voluntario_id = $1
		ORDER BY i.data_inscricao DESC, i.id DESC
	`, voluntarioID)
	if err != nil {
		return nil, err
	}
	return collectInscricoes(rows, func(row pgx.Rows, i *Inscricao) error {
		return row.Scan(&i.ID, &i.OportunidadeID, &i.OportunidadeTitulo, &i.DataInscricao, &i.Status)
	})
}

// UpdateInscricaoStatus altera o status; ErrNotFound quando nenhuma linha é afetada.
func (q *Queries) UpdateInscricaoStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	tag, err := q.db.Exec(ctx, `UPDATE inscricoes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectInscricoes(rows pgx.Rows, scan func(pgx.Rows, *Inscricao) error) ([]Inscricao, error) {
	defer rows.Close()

	items := []Inscricao{}
	for rows.Next() {
		var i Inscricao
		if err := scan(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
