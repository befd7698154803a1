package repository

import "errors"

var (
	// ErrRefreshTokenRequired indica primeira inserção de credencial sem refresh token.
	ErrRefreshTokenRequired = errors.New("refresh token é obrigatório na primeira conexão")

	ErrAccountNotFound = errors.New("account not found")
)
