package repository

import (
	"context"
	"errors"

	"github.com/TejaBandari20/moviemagic/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `INSERT INTO bookings (booking_id, movie_name, theater, show_date, show_time,
			seats, amount_paid, address, booked_by, user_name, payment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	err := p.db.QueryRow(ctx, query,
		booking.ID,
		booking.MovieName,
		booking.Theater,
		booking.Date,
		booking.Time,
		booking.Seats,
		booking.AmountPaid,
		booking.Address,
		booking.BookedBy,
		booking.UserName,
		booking.PaymentID).Scan(&booking.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateBooking
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetByPurchaser(ctx context.Context, email string) ([]*domain.Booking, error) {
	// bookings carries an index on booked_by, so this is a keyed lookup
	// rather than a full scan.
	query := `SELECT booking_id, movie_name, theater, show_date, show_time, seats,
			amount_paid, address, booked_by, user_name, payment_id, created_at
		FROM bookings
		WHERE booked_by = $1
		ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.Booking{}

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.MovieName,
			&booking.Theater,
			&booking.Date,
			&booking.Time,
			&booking.Seats,
			&booking.AmountPaid,
			&booking.Address,
			&booking.BookedBy,
			&booking.UserName,
			&booking.PaymentID,
			&booking.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		bookings = append(bookings, &booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
