package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const accountsTable = "accounts a"

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	SaveOrUpdate(account *domain.AdAccount) (string, bool, error)
	UpdateAccount(account *domain.UpdateAdAccountRequest) error
	SetSyncStatus(accountID string, status domain.SyncStatus, syncedAt *time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.external_id": accountExternalID})
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.external_id, a.user_id, a.name, a.nickname, a.currency_code, a.timezone, a.is_manager, a.status, a.sync_status, a.last_synced_at").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.UserID,
		&acc.Name,
		&acc.Nickname,
		&acc.CurrencyCode,
		&acc.Timezone,
		&acc.IsManager,
		&acc.Status,
		&acc.SyncStatus,
		&acc.LastSyncedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.external_id, a.user_id, a.name, a.nickname, a.currency_code, a.timezone, a.is_manager, a.status, a.sync_status, a.last_synced_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)

	for rows.Next() {
		acc := &domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.ExternalID,
			&acc.UserID,
			&acc.Name,
			&acc.Nickname,
			&acc.CurrencyCode,
			&acc.Timezone,
			&acc.IsManager,
			&acc.Status,
			&acc.SyncStatus,
			&acc.LastSyncedAt,
		); err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// SaveOrUpdate faz o upsert da conta pela chave natural external_id. Retorna o
// id local e se a linha foi criada (xmax = 0 indica inserção no Postgres).
func (r *accountRepository) SaveOrUpdate(account *domain.AdAccount) (string, bool, error) {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "external_id", "user_id", "name", "nickname", "currency_code", "timezone", "is_manager", "status", "sync_status").
		Values(
			account.ID,
			account.ExternalID,
			account.UserID,
			account.Name,
			account.Nickname,
			account.CurrencyCode,
			account.Timezone,
			account.IsManager,
			account.Status,
			account.SyncStatus,
		).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				currency_code = EXCLUDED.currency_code,
				timezone = EXCLUDED.timezone,
				is_manager = EXCLUDED.is_manager,
				status = EXCLUDED.status,
				nickname = COALESCE(accounts.nickname, EXCLUDED.nickname),
				updated_at = NOW()
			RETURNING id, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", false, fmt.Errorf("failed to build query: %w", err)
	}

	var id string
	var inserted bool
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&id, &inserted); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", false, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", false, fmt.Errorf("failed to execute query: %w", err)
	}

	return id, inserted, nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAdAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (a *accountRepository) SetSyncStatus(accountID string, status domain.SyncStatus, syncedAt *time.Time) error {
	queryBuilder := squirrel.
		Update("accounts").
		Set("sync_status", status).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	if syncedAt != nil {
		queryBuilder = queryBuilder.Set("last_synced_at", *syncedAt)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
