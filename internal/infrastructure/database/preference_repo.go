package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"playpalace-i18n/internal/domain"
	"playpalace-i18n/internal/domain/entities"
	"playpalace-i18n/internal/ports/output"
)

// querier is the subset of pgxpool.Pool the repository needs; pgxmock
// implements it for tests.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ output.LocalePreferenceRepository = (*LocalePreferenceRepository)(nil)

type LocalePreferenceRepository struct {
	db querier
}

func NewLocalePreferenceRepository(db querier) *LocalePreferenceRepository {
	return &LocalePreferenceRepository{db: db}
}

func (r *LocalePreferenceRepository) Get(ctx context.Context, userID string) (*entities.LocalePreference, error) {
	pref := &entities.LocalePreference{}
	err := r.db.QueryRow(ctx,
		`SELECT user_id, locale, updated_at FROM locale_preferences WHERE user_id = $1`,
		userID,
	).Scan(&pref.UserID, &pref.Locale, &pref.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get locale preference: %w", err)
	}
	return pref, nil
}

func (r *LocalePreferenceRepository) Set(ctx context.Context, pref *entities.LocalePreference) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO locale_preferences (user_id, locale, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET locale = EXCLUDED.locale, updated_at = EXCLUDED.updated_at`,
		pref.UserID, pref.Locale, pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("set locale preference: %w", err)
	}
	return nil
}

func (r *LocalePreferenceRepository) CountByLocale(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT locale, COUNT(*) FROM locale_preferences GROUP BY locale`,
	)
	if err != nil {
		return nil, fmt.Errorf("count locale preferences: %w", err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var locale string
		var count int64
		if err := rows.Scan(&locale, &count); err != nil {
			return nil, fmt.Errorf("scan locale count: %w", err)
		}
		out[locale] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count locale preferences: %w", err)
	}
	return out, nil
}
