// Package cache guarda listagens públicas em JSON no Redis.
// Um *JSONCache nil é válido e nunca encontra nada.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "voluntariado:"

// Chaves das listagens cacheadas.
const (
	KeyOportunidades = keyPrefix + "oportunidades"
	KeyOngs          = keyPrefix + "ongs"
)

type redisCommander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// JSONCache serializa valores em JSON com TTL fixo.
type JSONCache struct {
	client redisCommander
	ttl    time.Duration
}

// New devolve nil quando client é nil, desligando o cache.
func New(client *redis.Client, ttl time.Duration) *JSONCache {
	if client == nil {
		return nil
	}
	return newWithCommander(client, ttl)
}

func newWithCommander(client redisCommander, ttl time.Duration) *JSONCache {
	return &JSONCache{client: client, ttl: ttl}
}

// GetJSON preenche dst e devolve true em caso de acerto.
func (c *JSONCache) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache: leitura falhou")
		}
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetJSON grava value; falhas só são registradas.
func (c *JSONCache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: escrita falhou")
	}
}

// Invalidate remove as chaves informadas.
func (c *JSONCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache: invalidação falhou")
	}
}
