package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const campaignsTable = "campaigns cp"

type CampaignRepository interface {
	SaveOrUpdate(campaign *domain.Campaign) (string, bool, error)
	ListByAccountID(accountID string) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert pela chave natural (external_id, account_id).
// A chave natural nunca muda em atualização; só os campos mutáveis são trocados.
func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) (string, bool, error) {
	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "account_id", "external_id", "name", "status", "channel_type", "daily_budget_micros").
		Values(
			campaign.ID,
			campaign.AccountID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.ChannelType,
			campaign.DailyBudgetMicros,
		).
		Suffix(`
			ON CONFLICT (external_id, account_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				channel_type = EXCLUDED.channel_type,
				daily_budget_micros = EXCLUDED.daily_budget_micros,
				updated_at = NOW()
			RETURNING id, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id string
	var inserted bool
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&id, &inserted); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return "", false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return id, inserted, nil
}

func (r *campaignRepository) ListByAccountID(accountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("cp.id, cp.account_id, cp.external_id, cp.name, cp.status, cp.channel_type, cp.daily_budget_micros").
		From(campaignsTable).
		Where(squirrel.Eq{"cp.account_id": accountID}).
		OrderBy("cp.name ASC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		c := &domain.Campaign{}
		if err := rows.Scan(
			&c.ID,
			&c.AccountID,
			&c.ExternalID,
			&c.Name,
			&c.Status,
			&c.ChannelType,
			&c.DailyBudgetMicros,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar campanha: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
