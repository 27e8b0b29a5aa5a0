package automation

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de automação
var (
	// Erros de validação
	ErrListingNotFound = errors.New("listing not found")

	// Erros de serviços externos
	ErrTradingOperation = errors.New("trading API operation error")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// AutomationError é um erro com contexto adicional para automação
type AutomationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ItemID  string // ID do anúncio envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AutomationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AutomationError) Unwrap() error {
	return e.Err
}

// NewAutomationError cria um novo AutomationError
func NewAutomationError(err error, code string, details string) *AutomationError {
	return &AutomationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAutomationErrorWithItem cria um novo AutomationError com ID do anúncio
func NewAutomationErrorWithItem(err error, code string, itemID string, details string) *AutomationError {
	return &AutomationError{
		Err:     err,
		Code:    code,
		ItemID:  itemID,
		Details: details,
	}
}
