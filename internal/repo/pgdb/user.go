package pgdb

import (
	"context"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const userTable = "users"

var userColumns = []string{
	"id", "username", "email", "first_name", "last_name", "password_hash",
	"is_active", "is_admin", "last_login_ip", "login_attempts", "locked_until", "created_at",
}

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pg *postgres.Postgres) *UserRepo {
	return &UserRepo{pg}
}

func (r *UserRepo) CreateUser(ctx context.Context, u *domain.User) (int, error) {
	query := r.Builder.
		Insert(userTable).
		Columns("username", "email", "first_name", "last_name", "password_hash", "is_active", "is_admin").
		Values(u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.IsActive, u.IsAdmin)

	return insertReturningID(ctx, r.Postgres, query)
}

func (r *UserRepo) GetUserByID(ctx context.Context, id int) (domain.User, error) {
	query := r.Builder.
		Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"id": id})

	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.User])
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	query := r.Builder.
		Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"username": username})

	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.User])
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id int, p domain.ProfileUpdate) error {
	query := r.Builder.
		Update(userTable).
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("email", p.Email).
		Where(sq.Eq{"id": id})

	return execOne(ctx, r.Postgres, query)
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int, hash string) error {
	query := r.Builder.
		Update(userTable).
		Set("password_hash", hash).
		Where(sq.Eq{"id": id})

	return execOne(ctx, r.Postgres, query)
}

// RecordLoginFailure stores the attempt counter and lock deadline; nil lockUntil clears the lock.
func (r *UserRepo) RecordLoginFailure(ctx context.Context, id, attempts int, lockUntil *time.Time) error {
	query := r.Builder.
		Update(userTable).
		Set("login_attempts", attempts).
		Set("locked_until", lockUntil).
		Where(sq.Eq{"id": id})

	return execOne(ctx, r.Postgres, query)
}

func (r *UserRepo) RecordLoginSuccess(ctx context.Context, id int, ip string) error {
	query := r.Builder.
		Update(userTable).
		Set("login_attempts", 0).
		Set("locked_until", nil).
		Set("last_login_ip", ip).
		Set("last_login", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return execOne(ctx, r.Postgres, query)
}

func (r *UserRepo) CountUsers(ctx context.Context) (int, error) {
	return scanInt(ctx, r.Postgres, r.Builder.Select("COUNT(*)").From(userTable))
}
