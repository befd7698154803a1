package connecting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conexão OAuth
var (
	// Erros de validação
	ErrInvalidState       = errors.New("state do OAuth inválido ou expirado")
	ErrCodeRequired       = errors.New("código de autorização é obrigatório")
	ErrCredentialNotFound = errors.New("credencial não encontrada para o usuário")

	// Erros de serviços externos
	ErrTokenExchange       = errors.New("erro ao trocar o código de autorização por tokens")
	ErrAccessibleCustomers = errors.New("erro ao listar contas acessíveis pela credencial")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
)

// ConnectError é um erro com contexto adicional para o fluxo de conexão
type ConnectError struct {
	Err     error
	Code    string
	Details string
}

func (e *ConnectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func NewConnectError(err error, code string, details string) *ConnectError {
	return &ConnectError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
