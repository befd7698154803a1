package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const keywordsTable = "keywords k"

type KeywordRepository interface {
	SaveOrUpdate(keyword *domain.Keyword) (string, bool, error)
	ListByAdGroupID(adGroupID string) ([]*domain.Keyword, error)
}

type keywordRepository struct {
	conn *postgres.Connection
}

func NewKeywordRepository(conn *postgres.Connection) KeywordRepository {
	return &keywordRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert pela chave natural (external_id, ad_group_id).
func (r *keywordRepository) SaveOrUpdate(keyword *domain.Keyword) (string, bool, error) {
	query := squirrel.StatementBuilder.
		Insert("keywords").
		Columns("id", "ad_group_id", "external_id", "text", "match_type", "status").
		Values(
			keyword.ID,
			keyword.AdGroupID,
			keyword.ExternalID,
			keyword.Text,
			keyword.MatchType,
			keyword.Status,
		).
		Suffix(`
			ON CONFLICT (external_id, ad_group_id) DO UPDATE SET
				text = EXCLUDED.text,
				match_type = EXCLUDED.match_type,
				status = EXCLUDED.status,
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

func (r *keywordRepository) ListByAdGroupID(adGroupID string) ([]*domain.Keyword, error) {
	query, args, err := squirrel.
		Select("k.id, k.ad_group_id, k.external_id, k.text, k.match_type, k.status").
		From(keywordsTable).
		Where(squirrel.Eq{"k.ad_group_id": adGroupID}).
		OrderBy("k.text ASC").
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

	keywords := make([]*domain.Keyword, 0)
	for rows.Next() {
		k := &domain.Keyword{}
		if err := rows.Scan(
			&k.ID,
			&k.AdGroupID,
			&k.ExternalID,
			&k.Text,
			&k.MatchType,
			&k.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar palavra-chave: %w", err)
		}
		keywords = append(keywords, k)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keywords, nil
}
