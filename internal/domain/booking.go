package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is an immutable ledger record. Once persisted it is never updated
// or deleted.
type Booking struct {
	ID         string
	MovieName  string
	Theater    string
	Date       string
	Time       string
	Seats      string
	AmountPaid decimal.Decimal
	Address    string
	BookedBy   string
	UserName   string
	PaymentID  string
	CreatedAt  time.Time
}

// NewBookingID returns an identifier of the form MM-YYYYMMDD-XXXXXXXX, where
// the suffix is eight uppercase hex characters drawn from a random UUID. The
// suffix alone is too narrow to guarantee uniqueness at scale, so the ledger
// enforces it with a primary key and callers regenerate on collision.
func NewBookingID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("MM-%s-%s", now.Format("20060102"), suffix)
}

// NewPaymentID returns a simulated payment reference. No settlement happens
// anywhere in the system.
func NewPaymentID() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:12]
	return fmt.Sprintf("PAY-%s", ref)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByPurchaser(ctx context.Context, email string) ([]*Booking, error)
}
