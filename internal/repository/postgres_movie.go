package repository

import (
	"context"
	"errors"

	"github.com/TejaBandari20/moviemagic/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT movie_id, title, genre, language, duration, image, trailer, price,
			rating, theater, address, description
		FROM movies`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Language,
			&movie.Duration,
			&movie.Image,
			&movie.Trailer,
			&movie.Price,
			&movie.Rating,
			&movie.Theater,
			&movie.Address,
			&movie.Description,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	query := `SELECT movie_id, title, genre, language, duration, image, trailer, price,
			rating, theater, address, description
		FROM movies
		WHERE movie_id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Language,
		&movie.Duration,
		&movie.Image,
		&movie.Trailer,
		&movie.Price,
		&movie.Rating,
		&movie.Theater,
		&movie.Address,
		&movie.Description,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (movie_id, title, genre, language, duration, image, trailer,
			price, rating, theater, address, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := p.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.Language,
		movie.Duration,
		movie.Image,
		movie.Trailer,
		movie.Price,
		movie.Rating,
		movie.Theater,
		movie.Address,
		movie.Description,
	)

	return err
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, genre = $2, language = $3, duration = $4, image = $5, trailer = $6,
			price = $7, rating = $8, theater = $9, address = $10, description = $11
		WHERE movie_id = $12`

	result, err := p.db.Exec(ctx, query,
		movie.Title,
		movie.Genre,
		movie.Language,
		movie.Duration,
		movie.Image,
		movie.Trailer,
		movie.Price,
		movie.Rating,
		movie.Theater,
		movie.Address,
		movie.Description,
		movie.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM movies WHERE movie_id = $1`

	// Deleting a nonexistent id succeeds: the ledger of movies treats delete
	// as idempotent, so RowsAffected is deliberately not checked.
	_, err := p.db.Exec(ctx, query, id)

	return err
}
