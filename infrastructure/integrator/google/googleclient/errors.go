package googleclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredential indica que o usuário não possui credencial ativa para o provedor.
	ErrNoCredential = errors.New("nenhuma credencial ativa encontrada para o usuário")

	// ErrReauthRequired indica refresh token revogado ou expirado; só o fluxo OAuth resolve.
	ErrReauthRequired = errors.New("credencial revogada, é necessário reautorizar via OAuth")

	// ErrTransientAuth indica falha temporária na renovação do token (rede, 5xx do provedor).
	ErrTransientAuth = errors.New("falha temporária ao renovar o token de acesso")
)

// RefreshError envolve a falha de renovação preservando se ela é terminal
// (invalid_grant) ou transitória (rede/5xx).
type RefreshError struct {
	Terminal bool
	Err      error
}

func (e *RefreshError) Error() string {
	if e.Terminal {
		return fmt.Sprintf("renovação de token falhou de forma terminal: %v", e.Err)
	}
	return fmt.Sprintf("renovação de token falhou de forma transitória: %v", e.Err)
}

func (e *RefreshError) Unwrap() error {
	if e.Terminal {
		return ErrReauthRequired
	}
	return ErrTransientAuth
}
