package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/conectavoluntarios/api/internal/db"
)

const defaultTimeout = 5 * time.Second

// DBTX é satisfeito tanto pelo pool quanto por uma transação aberta.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier lista as operações de dados usadas pelos serviços.
type Querier interface {
	CreateUsuario(ctx context.Context, arg CreateUsuarioParams) (int64, error)
	GetUsuarioByEmail(ctx context.Context, email string) (Usuario, error)
	GetUsuarioByID(ctx context.Context, id int64) (Usuario, error)

	UpsertOng(ctx context.Context, nome, endereco string) (int64, error)
	ListOngs(ctx context.Context) ([]Ong, error)

	CreateOportunidade(ctx context.Context, arg CreateOportunidadeParams) (int64, error)
	ListOportunidades(ctx context.Context) ([]Oportunidade, error)
	GetOportunidade(ctx context.Context, id int64) (Oportunidade, error)

	GetVoluntarioIDByCPF(ctx context.Context, cpf string) (int64, error)
	CreateVoluntario(ctx context.Context, arg CreateVoluntarioParams) (int64, error)
	ListVoluntarios(ctx context.Context) ([]Voluntario, error)
	GetVoluntario(ctx context.Context, id int64) (Voluntario, error)

	CreateInscricao(ctx context.Context, voluntarioID, oportunidadeID int64, status string) (int64, error)
	ListInscricoes(ctx context.Context) ([]Inscricao, error)
	ListInscricoesByOng(ctx context.Context, ongID int64) ([]Inscricao, error)
	ListInscricoesByVoluntario(ctx context.Context, voluntarioID int64) ([]Inscricao, error)
	UpdateInscricaoStatus(ctx context.Context, id int64, status string) error
}

// Queries executa SQL parametrizado sobre um DBTX.
type Queries struct {
	db      DBTX
	timeout time.Duration
}

// New cria Queries com timeout padrão por comando.
func New(conn DBTX) *Queries {
	return &Queries{db: conn, timeout: defaultTimeout}
}

// WithTimeout devolve cópia com outro limite por comando.
func (q *Queries) WithTimeout(timeout time.Duration) *Queries {
	clone := *q
	if timeout > 0 {
		clone.timeout = timeout
	}
	return &clone
}

func (q *Queries) withTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx, timeout: q.timeout}
}

func (q *Queries) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, q.timeout)
}

// Store combina consultas avulsas no pool com transações explícitas.
type Store struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore cria o Store sobre o pool informado.
func NewStore(pool *pgxpool.Pool, statementTimeout time.Duration) *Store {
	return &Store{Queries: New(pool).WithTimeout(statementTimeout), pool: pool}
}

// InTx executa fn numa transação: commit se fn retornar nil, rollback caso contrário.
func (s *Store) InTx(ctx context.Context, fn func(Querier) error) error {
	return db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(s.Queries.withTx(tx))
	})
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if constraint, ok := db.UniqueViolation(err); ok {
		return &DuplicateError{Constraint: constraint, Err: err}
	}
	return err
}
