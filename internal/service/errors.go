package service

import "errors"

var (
	// ErrValidation indica entrada malformada.
	ErrValidation = errors.New("dados inválidos")
	// ErrInvalidCredentials indica falha na autenticação por e-mail e senha.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	// ErrUnauthorized indica token ausente, inválido ou expirado, ou conta removida.
	ErrUnauthorized = errors.New("não autenticado")
	// ErrForbidden indica papel incompatível com o recurso.
	ErrForbidden = errors.New("permissão negada")
	// ErrNotFound indica que o registro pedido não existe.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrConflict indica violação de unicidade exposta como conflito de domínio.
	ErrConflict = errors.New("conflito")
)

// Error associa uma mensagem pública a um dos erros sentinela acima.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// PublicMessage devolve a mensagem segura para o cliente, ou fallback quando err não é de domínio.
func PublicMessage(err error, fallback string) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return fallback
}
