package repo

import "errors"

var (
	// ErrNotFound é retornado quando nenhum registro é encontrado.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrDuplicate é retornado quando uma constraint de unicidade é violada.
	ErrDuplicate = errors.New("registro duplicado")
)

// DuplicateError carrega a constraint violada junto com ErrDuplicate.
type DuplicateError struct {
	Constraint string
	Err        error
}

func (e *DuplicateError) Error() string {
	return "registro duplicado (" + e.Constraint + ")"
}

func (e *DuplicateError) Unwrap() []error {
	return []error{ErrDuplicate, e.Err}
}

// IsDuplicateOn informa se err é violação da constraint indicada.
func IsDuplicateOn(err error, constraint string) bool {
	var dup *DuplicateError
	return errors.As(err, &dup) && dup.Constraint == constraint
}
