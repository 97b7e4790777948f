package stores

import (
	"errors"
	"fmt"
)

var (
	ErrStoreNotFound     = errors.New("loja não encontrada")
	ErrAlreadyInState    = errors.New("a loja já está no estado solicitado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// StoreError carrega o contexto da operação administrativa que falhou
type StoreError struct {
	Err     error
	Code    string
	StoreID string
	Details string
}

func (e *StoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(err error, code, storeID, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}
