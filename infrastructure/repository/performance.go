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

const performanceTable = "performance_records pr"

type PerformanceRepository interface {
	SaveOrUpdate(record *domain.PerformanceRecord) (bool, error)
	ListByAccountAndRange(accountID string, startDate, endDate time.Time) ([]*domain.PerformanceRecord, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert de uma linha da tabela fato. A chave de unicidade é
// (account_id, campaign_id, ad_group_id, keyword_id, date), com COALESCE nos
// campos nuláveis para que níveis de agregação diferentes não colidam.
// O custo é gravado como NUMERIC exato a partir dos micros (sem passar por float).
func (r *performanceRepository) SaveOrUpdate(record *domain.PerformanceRecord) (bool, error) {
	query := squirrel.StatementBuilder.
		Insert("performance_records").
		Columns("id", "account_id", "campaign_id", "ad_group_id", "keyword_id", "date",
			"impressions", "clicks", "cost_micros", "cost", "conversions", "conversion_value").
		Values(
			record.ID,
			record.AccountID,
			record.CampaignID,
			record.AdGroupID,
			record.KeywordID,
			record.Date.Format(time.DateOnly),
			record.Impressions,
			record.Clicks,
			record.CostMicros,
			utils.MicrosToDecimalString(record.CostMicros),
			record.Conversions,
			record.ConversionValue,
		).
		Suffix(`
			ON CONFLICT (account_id, COALESCE(campaign_id, ''), COALESCE(ad_group_id, ''), COALESCE(keyword_id, ''), date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				cost_micros = EXCLUDED.cost_micros,
				cost = EXCLUDED.cost,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				updated_at = NOW()
			RETURNING (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var inserted bool
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&inserted); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return inserted, nil
}

func (r *performanceRepository) ListByAccountAndRange(accountID string, startDate, endDate time.Time) ([]*domain.PerformanceRecord, error) {
	query, args, err := squirrel.
		Select("pr.id, pr.account_id, pr.campaign_id, pr.ad_group_id, pr.keyword_id, pr.date, pr.impressions, pr.clicks, pr.cost_micros, pr.conversions, pr.conversion_value").
		From(performanceTable).
		Where(squirrel.Eq{"pr.account_id": accountID}).
		Where(squirrel.GtOrEq{"pr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"pr.date": endDate.Format(time.DateOnly)}).
		OrderBy("pr.date ASC").
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

	records := make([]*domain.PerformanceRecord, 0)
	for rows.Next() {
		rec := &domain.PerformanceRecord{}
		if err := rows.Scan(
			&rec.ID,
			&rec.AccountID,
			&rec.CampaignID,
			&rec.AdGroupID,
			&rec.KeywordID,
			&rec.Date,
			&rec.Impressions,
			&rec.Clicks,
			&rec.CostMicros,
			&rec.Conversions,
			&rec.ConversionValue,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar registro de performance: %w", err)
		}

		rec.Cost = utils.MicrosToCurrency(rec.CostMicros)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
