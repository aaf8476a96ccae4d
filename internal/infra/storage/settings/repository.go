package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	"github.com/moonbarber/MB-SiteService/pkg/dbmetrics"
	"github.com/moonbarber/MB-SiteService/pkg/psqlbuilder"
)

// Настройки хранятся одной строкой с фиксированным id.
const settingsRowID = 1

// Repository репозиторий для работы с настройками сайта
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает единственную строку настроек
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_hours", "notifications", "contact", "social", "updated_at").
		From("settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	var hoursRaw, notificationsRaw, contactRaw, socialRaw []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &hoursRaw, &notificationsRaw, &contactRaw, &socialRaw, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(hoursRaw, &s.BusinessHours); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal business hours: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(notificationsRaw, &s.Notifications); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal notifications: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(contactRaw, &s.Contact); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal contact: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(socialRaw, &s.Social); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal social: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert сохраняет настройки целиком, создавая строку при первом обращении
func (r *Repository) Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursRaw, err := json.Marshal(s.BusinessHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal business hours: %v", ErrMarshal, err)
	}
	notificationsRaw, err := json.Marshal(s.Notifications)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal notifications: %v", ErrMarshal, err)
	}
	contactRaw, err := json.Marshal(s.Contact)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal contact: %v", ErrMarshal, err)
	}
	socialRaw, err := json.Marshal(s.Social)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal social: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "business_hours", "notifications", "contact", "social").
		Values(settingsRowID, hoursRaw, notificationsRaw, contactRaw, socialRaw).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			business_hours = EXCLUDED.business_hours,
			notifications = EXCLUDED.notifications,
			contact = EXCLUDED.contact,
			social = EXCLUDED.social,
			updated_at = NOW()
			RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.ID = settingsRowID
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
