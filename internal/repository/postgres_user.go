package repository

import (
	"context"
	"errors"

	"github.com/TejaBandari20/moviemagic/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := p.db.QueryRow(ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.Password.Hash).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateEmail
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, first_name, last_name, mobile, birthday,
			gender, married, is_admin, created_at
		FROM users
		WHERE email = $1`

	var user domain.User

	err := p.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password.Hash,
		&user.FirstName,
		&user.LastName,
		&user.Mobile,
		&user.Birthday,
		&user.Gender,
		&user.Married,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (p *PostgresUserRepository) UpdateProfile(ctx context.Context, email, name string, update domain.ProfileUpdate) error {
	query := `UPDATE users
		SET name = $1, first_name = $2, last_name = $3, mobile = $4, birthday = $5,
			gender = $6, married = $7
		WHERE email = $8`

	result, err := p.db.Exec(ctx, query,
		name,
		update.FirstName,
		update.LastName,
		update.Mobile,
		update.Birthday,
		update.Gender,
		update.Married,
		email,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresUserRepository) SetAdmin(ctx context.Context, email string) error {
	query := `UPDATE users SET is_admin = TRUE WHERE email = $1`

	result, err := p.db.Exec(ctx, query, email)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
