package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	"github.com/moonbarber/MB-SiteService/pkg/dbmetrics"
	"github.com/moonbarber/MB-SiteService/pkg/psqlbuilder"
)

var reviewColumns = []string{
	"id",
	"customer_name",
	"rating",
	"text",
	"approved",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает отзывы, новые первыми.
// approvedOnly ограничивает выборку одобренными отзывами (публичный сайт).
func (r *Repository) List(ctx context.Context, approvedOnly bool) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at DESC")

	if approvedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"approved": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(&rev.ID, &rev.CustomerName, &rev.Rating, &rev.Text, &rev.Approved, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		rev.CreatedAt = createdAt.Time
		rev.UpdatedAt = updatedAt.Time
		reviews = append(reviews, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// UpdateApproval меняет флаг публикации отзыва
func (r *Repository) UpdateApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reviews").
		Set("approved", approved).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, customer_name, rating, text, approved, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateApproval - build update query: %v", ErrBuildQuery, err)
	}

	var rev domain.Review
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&rev.ID, &rev.CustomerName, &rev.Rating, &rev.Text, &rev.Approved, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateApproval - scan review: %v", ErrScanRow, err)
	}

	rev.CreatedAt = createdAt.Time
	rev.UpdatedAt = updatedAt.Time

	return &rev, nil
}

// Delete удаляет отзыв
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
