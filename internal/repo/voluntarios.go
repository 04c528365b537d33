package repo

import "context"

// GetVoluntarioIDByCPF devolve o id do voluntário com o CPF normalizado.
func (q *Queries) GetVoluntarioIDByCPF(ctx context.Context, cpf string) (int64, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var id int64
	err := q.db.QueryRow(ctx, `SELECT id FROM voluntarios WHERE cpf = $1`, cpf).Scan(&id)
	return id, translateError(err)
}

func (q *Queries) CreateVoluntario(ctx context.Context, arg CreateVoluntarioParams) (int64, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO voluntarios (nome, nascimento, cpf, mensagem)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, arg.Nome, arg.Nascimento, arg.CPF, arg.Mensagem).Scan(&id)
	return id, translateError(err)
}

func (q *Queries) ListVoluntarios(ctx context.Context) ([]Voluntario, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	rows, err := q.db.Query(ctx, `
		SELECT id, nome, to_char(nascimento, 'YYYY-MM-DD'), cpf, mensagem
		FROM voluntarios
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Voluntario{}
	for rows.Next() {
		var v Voluntario
		if err := rows.Scan(&v.ID, &v.Nome, &v.Nascimento, &v.CPF, &v.Mensagem); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (q *Queries) GetVoluntario(ctx context.Context, id int64) (Voluntario, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var v Voluntario
	err := q.db.QueryRow(ctx, `
		SELECT id, nome, to_char(nascimento, 'YYYY-MM-DD'), cpf, mensagem
		FROM voluntarios
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Nome, &v.Nascimento, &v.CPF, &v.Mensagem)
	return v, translateError(err)
}
