package auth

import (
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
)

// ErrEmptyPassword impede gerar hash de senha vazia.
var ErrEmptyPassword = errors.New("senha vazia")

// passwordParams: 64 MiB, 3 passadas, 1 thread.
var passwordParams = &argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Hash devolve o hash argon2id em formato PHC; salt e parâmetros vão no próprio texto.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := argon2id.CreateHash(password, passwordParams)
	if err != nil {
		return "", fmt.Errorf("argon2id: %w", err)
	}
	return hash, nil
}

// Verify confere a senha contra um hash gerado por Hash. Hash ilegível devolve
// erro; senha errada devolve apenas false.
func Verify(password, encodedHash string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(password, encodedHash)
	if err != nil {
		return false, fmt.Errorf("argon2id: %w", err)
	}
	return ok, nil
}
