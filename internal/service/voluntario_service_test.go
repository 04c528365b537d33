package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVoluntarioNotFound(t *testing.T) {
	_, err := NewVoluntarioService(newFakeStore()).Get(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Voluntário não encontrado", PublicMessage(err, "erro interno"))
}
