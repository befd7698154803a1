package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const adGroupsTable = "ad_groups ag"

type AdGroupRepository interface {
	SaveOrUpdate(adGroup *domain.AdGroup) (string, bool, error)
	ListByCampaignID(campaignID string) ([]*domain.AdGroup, error)
}

type adGroupRepository struct {
	conn *postgres.Connection
}

func NewAdGroupRepository(conn *postgres.Connection) AdGroupRepository {
	return &adGroupRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert pela chave natural (external_id, campaign_id).
func (r *adGroupRepository) SaveOrUpdate(adGroup *domain.AdGroup) (string, bool, error) {
	query := squirrel.StatementBuilder.
		Insert("ad_groups").
		Columns("id", "campaign_id", "external_id", "name", "status", "cpc_bid_micros").
		Values(
			adGroup.ID,
			adGroup.CampaignID,
			adGroup.ExternalID,
			adGroup.Name,
			adGroup.Status,
			adGroup.CpcBidMicros,
		).
		Suffix(`
			ON CONFLICT (external_id, campaign_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				cpc_bid_micros = EXCLUDED.cpc_bid_micros,
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

func (r *adGroupRepository) ListByCampaignID(campaignID string) ([]*domain.AdGroup, error) {
	query, args, err := squirrel.
		Select("ag.id, ag.campaign_id, ag.external_id, ag.name, ag.status, ag.cpc_bid_micros").
		From(adGroupsTable).
		Where(squirrel.Eq{"ag.campaign_id": campaignID}).
		OrderBy("ag.name ASC").
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

	adGroups := make([]*domain.AdGroup, 0)
	for rows.Next() {
		g := &domain.AdGroup{}
		if err := rows.Scan(
			&g.ID,
			&g.CampaignID,
			&g.ExternalID,
			&g.Name,
			&g.Status,
			&g.CpcBidMicros,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar grupo de anúncios: %w", err)
		}
		adGroups = append(adGroups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adGroups, nil
}
