package ledger

import (
	"errors"
	"fmt"
)

// Erros específicos do livro-caixa
var (
	// Erros de validação
	ErrInvalidAmount      = errors.New("valor do lançamento deve ser maior que zero")
	ErrInvalidType        = errors.New("tipo de lançamento inválido")
	ErrInvalidCategory    = errors.New("categoria de lançamento inválida")
	ErrMissingDescription = errors.New("descrição do lançamento é obrigatória")

	// ErrEntryNotFound cobre tanto lançamento inexistente quanto lançamento
	// de outra loja: os dois casos são indistinguíveis de propósito, para
	// não confirmar a existência do recurso a quem não é dono
	ErrEntryNotFound = errors.New("lançamento não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// LedgerError é um erro com contexto adicional do livro-caixa
type LedgerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	StoreID string // Loja envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError cria um novo erro do livro-caixa
func NewLedgerError(baseErr error, code string, details string) *LedgerError {
	return &LedgerError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
