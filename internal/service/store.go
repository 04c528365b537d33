package service

import (
	"context"

	"github.com/conectavoluntarios/api/internal/repo"
)

// Store é o acesso a dados usado pelos serviços de domínio: consultas avulsas
// mais transações explícitas (satisfeito por *repo.Store).
type Store interface {
	repo.Querier
	InTx(ctx context.Context, fn func(repo.Querier) error) error
}

type listCache interface {
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, value any)
	Invalidate(ctx context.Context, keys ...string)
}

type noCache struct{}

func (noCache) GetJSON(context.Context, string, any) bool { return false }
func (noCache) SetJSON(context.Context, string, any)      {}
func (noCache) Invalidate(context.Context, ...string)     {}
