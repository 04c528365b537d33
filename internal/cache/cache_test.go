package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type stubRedis struct {
	store   map[string]string
	failGet bool
	ttls    map[string]time.Duration
}

func newStubRedis() *stubRedis {
	return &stubRedis{store: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if s.failGet {
		cmd.SetErr(errors.New("conexão recusada"))
		return cmd
	}
	val, ok := s.store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (s *stubRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		s.store[key] = string(v)
	case string:
		s.store[key] = v
	}
	s.ttls[key] = expiration
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := s.store[k]; ok {
			delete(s.store, k)
			n++
		}
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(n)
	return cmd
}

type item struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

func TestJSONCacheRoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	backend := newStubRedis()
	c := newWithCommander(backend, time.Minute)

	var got []item
	assert.False(t, c.GetJSON(ctx, KeyOngs, &got))

	c.SetJSON(ctx, KeyOngs, []item{{ID: 1, Nome: "GreenLeaf"}})
	assert.Equal(t, time.Minute, backend.ttls[KeyOngs])

	assert.True(t, c.GetJSON(ctx, KeyOngs, &got))
	assert.Equal(t, []item{{ID: 1, Nome: "GreenLeaf"}}, got)

	c.Invalidate(ctx, KeyOngs, KeyOportunidades)
	assert.False(t, c.GetJSON(ctx, KeyOngs, &got))
}

func TestJSONCacheToleratesFailuresAndNil(t *testing.T) {
	ctx := context.Background()
	backend := newStubRedis()
	backend.failGet = true
	c := newWithCommander(backend, time.Minute)

	var got []item
	assert.False(t, c.GetJSON(ctx, KeyOportunidades, &got))

	var disabled *JSONCache
	assert.Nil(t, New(nil, time.Minute))
	assert.False(t, disabled.GetJSON(ctx, KeyOportunidades, &got))
	disabled.SetJSON(ctx, KeyOportunidades, got)
	disabled.Invalidate(ctx, KeyOportunidades)
}
