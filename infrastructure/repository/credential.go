package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

const credentialsTable = "credentials c"

const credentialColumns = "c.id, c.user_id, c.provider, c.external_account_id, c.access_token, " +
	"c.refresh_token, c.token_expiry, c.scopes, c.accessible_customers, c.active, " +
	"c.error_count, c.last_error, c.last_used_at, c.created_at, c.updated_at"

type CredentialRepository interface {
	SaveOrUpdate(userID int, provider, externalAccountID string, bundle *domain.TokenBundle) (*domain.Credential, error)
	GetActiveByUserID(userID int, provider string) (*domain.Credential, error)
	GetActiveByExternalAccountID(externalAccountID string) (*domain.Credential, error)
	ListActive() ([]*domain.Credential, error)
	UpdateToken(credentialID string, bundle *domain.TokenBundle) error
	RecordError(credentialID string, message string) error
	UpdateLastUsed(credentialID string) error
	UpdateAccessibleCustomers(credentialID string, customers []string) error
	Deactivate(credentialID string) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou atualiza a credencial do par (user_id, external_account_id).
// Na atualização os campos de token são sobrescritos e os contadores de erro zerados.
// Na primeira inserção o refresh token é obrigatório.
func (r *credentialRepository) SaveOrUpdate(userID int, provider, externalAccountID string, bundle *domain.TokenBundle) (*domain.Credential, error) {
	existing, err := r.getByUserAndExternalID(userID, externalAccountID)
	if err != nil {
		return nil, err
	}

	if existing == nil && bundle.RefreshToken == "" {
		return nil, ErrRefreshTokenRequired
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da credencial: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("credentials").
		Columns("id", "user_id", "provider", "external_account_id", "access_token", "refresh_token", "token_expiry", "scopes", "active").
		Values(
			id,
			userID,
			provider,
			externalAccountID,
			bundle.AccessToken,
			bundle.RefreshToken,
			bundle.Expiry,
			pq.Array(bundle.Scopes),
			true,
		).
		Suffix(`
			ON CONFLICT (user_id, external_account_id) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), credentials.refresh_token),
				token_expiry = EXCLUDED.token_expiry,
				scopes = EXCLUDED.scopes,
				active = TRUE,
				error_count = 0,
				last_error = NULL,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var savedID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&savedID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return r.getByID(savedID)
}

func (r *credentialRepository) GetActiveByUserID(userID int, provider string) (*domain.Credential, error) {
	return r.getCredential(squirrel.Eq{"c.user_id": userID, "c.provider": provider, "c.active": true})
}

func (r *credentialRepository) GetActiveByExternalAccountID(externalAccountID string) (*domain.Credential, error) {
	return r.getCredential(squirrel.Eq{"c.external_account_id": externalAccountID, "c.active": true})
}

func (r *credentialRepository) getByID(id string) (*domain.Credential, error) {
	return r.getCredential(squirrel.Eq{"c.id": id})
}

func (r *credentialRepository) getByUserAndExternalID(userID int, externalAccountID string) (*domain.Credential, error) {
	return r.getCredential(squirrel.Eq{"c.user_id": userID, "c.external_account_id": externalAccountID})
}

func (r *credentialRepository) getCredential(whereClause map[string]interface{}) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select(credentialColumns).
		From(credentialsTable).
		Where(whereClause).
		OrderBy("c.updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	cred, err := r.scanCredential(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return cred, nil
}

func (r *credentialRepository) ListActive() ([]*domain.Credential, error) {
	query, args, err := squirrel.
		Select(credentialColumns).
		From(credentialsTable).
		Where(squirrel.Eq{"c.active": true}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	credentials := make([]*domain.Credential, 0)
	for rows.Next() {
		cred, err := r.scanCredentialRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar credencial: %w", err)
		}
		credentials = append(credentials, cred)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return credentials, nil
}

// UpdateToken persiste um novo access token após a renovação. O refresh token só
// é trocado quando o provedor enviar um novo; token_expiry é sempre substituído.
func (r *credentialRepository) UpdateToken(credentialID string, bundle *domain.TokenBundle) error {
	queryBuilder := squirrel.
		Update("credentials").
		Set("access_token", bundle.AccessToken).
		Set("token_expiry", bundle.Expiry).
		Set("error_count", 0).
		Set("last_error", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": credentialID}).
		PlaceholderFormat(squirrel.Dollar)

	if bundle.RefreshToken != "" {
		queryBuilder = queryBuilder.Set("refresh_token", bundle.RefreshToken)
	}

	return r.exec(queryBuilder)
}

// RecordError incrementa o contador de erros; a desativação é decisão do chamador.
func (r *credentialRepository) RecordError(credentialID string, message string) error {
	queryBuilder := squirrel.
		Update("credentials").
		Set("error_count", squirrel.Expr("error_count + 1")).
		Set("last_error", message).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": credentialID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(queryBuilder)
}

// UpdateLastUsed marca o uso bem-sucedido da credencial e zera o contador de erros.
func (r *credentialRepository) UpdateLastUsed(credentialID string) error {
	queryBuilder := squirrel.
		Update("credentials").
		Set("last_used_at", time.Now()).
		Set("error_count", 0).
		Set("last_error", nil).
		Where(squirrel.Eq{"id": credentialID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(queryBuilder)
}

func (r *credentialRepository) UpdateAccessibleCustomers(credentialID string, customers []string) error {
	queryBuilder := squirrel.
		Update("credentials").
		Set("accessible_customers", pq.Array(customers)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": credentialID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(queryBuilder)
}

// Deactivate desliga a credencial (soft delete); idempotente.
func (r *credentialRepository) Deactivate(credentialID string) error {
	queryBuilder := squirrel.
		Update("credentials").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": credentialID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(queryBuilder)
}

func (r *credentialRepository) exec(queryBuilder squirrel.UpdateBuilder) error {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *credentialRepository) scanCredential(row *sql.Row) (*domain.Credential, error) {
	cred := &domain.Credential{}
	var scopes, customers pq.StringArray

	if err := row.Scan(
		&cred.ID,
		&cred.UserID,
		&cred.Provider,
		&cred.ExternalAccountID,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.TokenExpiry,
		&scopes,
		&customers,
		&cred.Active,
		&cred.ErrorCount,
		&cred.LastError,
		&cred.LastUsedAt,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	); err != nil {
		return nil, err
	}

	cred.Scopes = scopes
	cred.AccessibleCustomers = customers

	return cred, nil
}

func (r *credentialRepository) scanCredentialRows(rows *sql.Rows) (*domain.Credential, error) {
	cred := &domain.Credential{}
	var scopes, customers pq.StringArray

	if err := rows.Scan(
		&cred.ID,
		&cred.UserID,
		&cred.Provider,
		&cred.ExternalAccountID,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.TokenExpiry,
		&scopes,
		&customers,
		&cred.Active,
		&cred.ErrorCount,
		&cred.LastError,
		&cred.LastUsedAt,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	); err != nil {
		return nil, err
	}

	cred.Scopes = scopes
	cred.AccessibleCustomers = customers

	return cred, nil
}
