package repo

import "context"

// CreateUsuario insere a conta e devolve o id gerado.
func (q *Queries) CreateUsuario(ctx context.Context, arg CreateUsuarioParams) (int64, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO usuarios (nome, email, senha_hash, role, cnpj)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, arg.Nome, arg.Email, arg.SenhaHash, arg.Role, arg.CNPJ).Scan(&id)
	return id, translateError(err)
}

// GetUsuarioByEmail busca conta pelo e-mail (já normalizado).
func (q *Queries) GetUsuarioByEmail(ctx context.Context, email string) (Usuario, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var u Usuario
	err := q.db.QueryRow(ctx, `
		SELECT id, nome, email, senha_hash, role, cnpj, criado_em
		FROM usuarios
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Role, &u.CNPJ, &u.CriadoEm)
	return u, translateError(err)
}

// GetUsuarioByID busca conta pelo id.
func (q *Queries) GetUsuarioByID(ctx context.Context, id int64) (Usuario, error) {
	ctx, cancel := q.ctx(ctx)
	defer cancel()

	var u Usuario
	err := q.db.QueryRow(ctx, `
		SELECT id, nome, email, senha_hash, role, cnpj, criado_em
		FROM usuarios
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Role, &u.CNPJ, &u.CriadoEm)
	return u, translateError(err)
}
