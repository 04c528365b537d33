package repo

import "context"

// UpsertOng insere a ONG ou reaproveita o id existente quando o nome já está cadastrado.
func (q *Queries) UpsertOng(ctx context.Context, nome, endereco string) (int64, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO ongs (nome, endereco)
		VALUES ($1, $2)
		ON CONFLICT (nome) DO UPDATE SET nome = EXCLUDED.nome
		RETURNING id
	`, nome, endereco).Scan(&id)
	return id, translateError(err)
}

func (q *Queries) ListOngs(ctx context.Context) ([]Ong, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	rows, err := q.db.Query(ctx, `SELECT id, nome, endereco FROM ongs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ongs := []Ong{}
	for rows.Next() {
		var o Ong
		if err := rows.Scan(&o.ID, &o.Nome, &o.Endereco); err != nil {
			return nil, err
		}
		ongs = append(ongs, o)
	}
	return ongs, rows.Err()
}

// CreateOportunidade insere a vaga com cópia do nome da ONG.
func (q *Queries) CreateOportunidade(ctx context.Context, arg CreateOportunidadeParams) (int64, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO oportunidades (titulo, descricao, ong_id, ong_nome)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, arg.Titulo, arg.Descricao, arg.OngID, arg.OngNome).Scan(&id)
	return id, translateError(err)
}

func (q *Queries) ListOportunidades(ctx context.Context) ([]Oportunidade, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	rows, err := q.db.Query(ctx, `
		SELECT id, titulo, descricao, ong_id, ong_nome
		FROM oportunidades
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Oportunidade{}
	for rows.Next() {
		var o Oportunidade
		if err := rows.Scan(&o.ID, &o.Titulo, &o.Descricao, &o.OngID, &o.OngNome); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (q *Queries) GetOportunidade(ctx context.Context, id int64) (Oportunidade, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var o Oportunidade
	err := q.db.QueryRow(ctx, `
		SELECT id, titulo, descricao, ong_id, ong_nome
		FROM oportunidades
		WHERE id = $1
	`, id).Scan(&o.ID, &o.Titulo, &o.Descricao, &o.OngID, &o.OngNome)
	return o, translateError(err)
}
