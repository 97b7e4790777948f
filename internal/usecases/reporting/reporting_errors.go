package reporting

import "errors"

// Erros específicos do motor de relatórios
var (
	ErrInvalidDateRange   = errors.New("a data de início não pode ser posterior à data de fim")
	ErrInvalidBucketCount = errors.New("quantidade de períodos inválida")
	ErrInvalidPeriodType  = errors.New("tipo de período não suportado para tendências")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)
