package domain

import (
	"time"
)

const ProviderGoogle = "google"

// Credential representa a autorização OAuth de um usuário para uma conta externa.
// Existe no máximo uma credencial ativa por par (usuário, conta externa).
type Credential struct {
	ID                  string     `json:"id"`
	UserID              int        `json:"user_id"`
	Provider            string     `json:"provider"`
	ExternalAccountID   string     `json:"external_account_id"`
	AccessToken         string     `json:"-"`
	RefreshToken        string     `json:"-"`
	TokenExpiry         time.Time  `json:"token_expiry"`
	Scopes              []string   `json:"scopes"`
	AccessibleCustomers []string   `json:"accessible_customers"`
	Active              bool       `json:"active"`
	ErrorCount          int        `json:"error_count"`
	LastError           *string    `json:"last_error,omitempty"`
	LastUsedAt          *time.Time `json:"last_used_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TokenBundle é o resultado de uma troca ou renovação de token junto ao provedor.
// RefreshToken pode vir vazio em renovações (o provedor não reenvia o refresh token).
type TokenBundle struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
	Scopes       []string
}

type CredentialResponse struct {
	ID                  string     `json:"id"`
	Provider            string     `json:"provider"`
	ExternalAccountID   string     `json:"external_account_id"`
	TokenExpiry         time.Time  `json:"token_expiry"`
	AccessibleCustomers []string   `json:"accessible_customers"`
	Active              bool       `json:"active"`
	LastUsedAt          *time.Time `json:"last_used_at,omitempty"`
}

func (c *Credential) ToResponse() *CredentialResponse {
	return &CredentialResponse{
		ID:                  c.ID,
		Provider:            c.Provider,
		ExternalAccountID:   c.ExternalAccountID,
		TokenExpiry:         c.TokenExpiry,
		AccessibleCustomers: c.AccessibleCustomers,
		Active:              c.Active,
		LastUsedAt:          c.LastUsedAt,
	}
}
