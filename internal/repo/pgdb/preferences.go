package pgdb

import (
	"context"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const preferencesTable = "user_preferences"

var preferencesColumns = []string{
	"user_id", "dark_mode", "compact_view", "refresh_interval", "items_per_page", "timezone",
	"email_anomalies", "email_critical", "email_reports", "email_updates",
	"browser_notifications", "created_at", "updated_at",
}

type PreferencesRepo struct {
	*postgres.Postgres
}

func NewPreferencesRepo(pg *postgres.Postgres) *PreferencesRepo {
	return &PreferencesRepo{pg}
}

func (r *PreferencesRepo) CreatePreferences(ctx context.Context, p *domain.UserPreferences) error {
	query := r.Builder.
		Insert(preferencesTable).
		Columns("user_id", "dark_mode", "compact_view", "refresh_interval", "items_per_page", "timezone",
			"email_anomalies", "email_critical", "email_reports", "email_updates", "browser_notifications").
		Values(p.UserId, p.DarkMode, p.CompactView, p.RefreshInterval, p.ItemsPerPage, p.Timezone,
			p.EmailAnomalies, p.EmailCritical, p.EmailReports, p.EmailUpdates, p.BrowserNotifications).
		Suffix("ON CONFLICT (user_id) DO NOTHING")

	_, err := execAffected(ctx, r.Postgres, query)
	return err
}

func (r *PreferencesRepo) GetPreferences(ctx context.Context, userID int) (domain.UserPreferences, error) {
	query := r.Builder.
		Select(preferencesColumns...).
		From(preferencesTable).
		Where(sq.Eq{"user_id": userID})

	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.UserPreferences])
}

func (r *PreferencesRepo) UpdateDisplay(ctx context.Context, userID int, d domain.DisplayPreferences) error {
	query := r.Builder.
		Update(preferencesTable).
		Set("dark_mode", d.DarkMode).
		Set("compact_view", d.CompactView).
		Set("refresh_interval", d.RefreshInterval).
		Set("items_per_page", d.ItemsPerPage).
		Set("timezone", d.Timezone).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID})

	return execOne(ctx, r.Postgres, query)
}

func (r *PreferencesRepo) UpdateNotifications(ctx context.Context, userID int, n domain.NotificationPreferences) error {
	query := r.Builder.
		Update(preferencesTable).
		Set("email_anomalies", n.EmailAnomalies).
		Set("email_critical", n.EmailCritical).
		Set("email_reports", n.EmailReports).
		Set("email_updates", n.EmailUpdates).
		Set("browser_notifications", n.BrowserNotifications).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID})

	return execOne(ctx, r.Postgres, query)
}
