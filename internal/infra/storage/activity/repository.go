package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	"github.com/moonbarber/MB-SiteService/pkg/dbmetrics"
	"github.com/moonbarber/MB-SiteService/pkg/psqlbuilder"
)

// Repository репозиторий для журнала действий админки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает событие в журнал
func (r *Repository) Create(ctx context.Context, description string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("activities").
		Columns("description").
		Values(description).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListRecent возвращает последние события журнала
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "description", "created_at").
		From("activities").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		var act domain.Activity
		var createdAt sql.NullTime

		if err := rows.Scan(&act.ID, &act.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}
		act.CreatedAt = createdAt.Time
		activities = append(activities, &act)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - rows error: %v", ErrScanRow, err)
	}

	return activities, nil
}
