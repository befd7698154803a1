package syncing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de sincronização
var (
	// ErrSyncInProgress indica que já existe uma execução em andamento para a conta.
	ErrSyncInProgress = errors.New("sincronização já em andamento para esta conta")

	// ErrNoCredentialForAccount indica que nenhuma credencial ativa cobre a conta pedida.
	ErrNoCredentialForAccount = errors.New("nenhuma credencial ativa para a conta informada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
)

// SyncAbortedError indica que a execução inteira falhou antes de qualquer
// reconciliação (falha de autenticação ou de auditoria), distinta das falhas
// parciais registradas no resumo.
type SyncAbortedError struct {
	Scope string
	Err   error
}

func (e *SyncAbortedError) Error() string {
	return fmt.Sprintf("sincronização de %s abortada: %v", e.Scope, e.Err)
}

func (e *SyncAbortedError) Unwrap() error {
	return e.Err
}
