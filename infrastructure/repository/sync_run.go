package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const syncRunsTable = "sync_runs sr"

// SyncRunRepository persiste o registro de auditoria de cada execução de
// sincronização. A tabela é append-only: Create abre a execução e Finish
// grava o desfecho, nunca há remoção.
type SyncRunRepository interface {
	Create(run *domain.SyncRun) error
	Finish(run *domain.SyncRun) error
	ListRecent(limit uint64) ([]*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn *postgres.Connection
}

func NewSyncRunRepository(conn *postgres.Connection) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) Create(run *domain.SyncRun) error {
	countsJSON, errorsJSON, err := serializeRun(run)
	if err != nil {
		return err
	}

	query := squirrel.StatementBuilder.
		Insert("sync_runs").
		Columns("id", "scope", "status", "started_at", "counts", "errors").
		Values(
			run.ID,
			run.Scope,
			run.Status,
			run.StartedAt,
			countsJSON,
			errorsJSON,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *syncRunRepository) Finish(run *domain.SyncRun) error {
	countsJSON, errorsJSON, err := serializeRun(run)
	if err != nil {
		return err
	}

	query := squirrel.
		Update("sync_runs").
		Set("status", run.Status).
		Set("finished_at", run.FinishedAt).
		Set("counts", countsJSON).
		Set("errors", errorsJSON).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *syncRunRepository) ListRecent(limit uint64) ([]*domain.SyncRun, error) {
	if limit == 0 {
		limit = 20
	}

	query, args, err := squirrel.
		Select("sr.id, sr.scope, sr.status, sr.started_at, sr.finished_at, sr.counts, sr.errors").
		From(syncRunsTable).
		OrderBy("sr.started_at DESC").
		Limit(limit).
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

	runs := make([]*domain.SyncRun, 0)
	for rows.Next() {
		run := &domain.SyncRun{}
		var countsJSON, errorsJSON []byte

		if err := rows.Scan(
			&run.ID,
			&run.Scope,
			&run.Status,
			&run.StartedAt,
			&run.FinishedAt,
			&countsJSON,
			&errorsJSON,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar execução de sincronização: %w", err)
		}

		if countsJSON != nil {
			if err := json.Unmarshal(countsJSON, &run.Counts); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de counts: %w", err)
			}
		}

		if errorsJSON != nil {
			if err := json.Unmarshal(errorsJSON, &run.Errors); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de errors: %w", err)
			}
		}

		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func serializeRun(run *domain.SyncRun) ([]byte, []byte, error) {
	countsJSON, err := json.Marshal(run.Counts)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar counts para JSON: %w", err)
	}

	errorsJSON, err := json.Marshal(run.Errors)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar errors para JSON: %w", err)
	}

	return countsJSON, errorsJSON, nil
}
