package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TejaBandari20/moviemagic/internal/domain"
	"github.com/TejaBandari20/moviemagic/internal/notifier"
)

// maxBookingIDAttempts bounds how often a colliding booking id is
// regenerated before the whole booking is reported as failed.
const maxBookingIDAttempts = 3

// bookingSubmission is the full set of fields posted by the payment form.
type bookingSubmission struct {
	Movie   string `validate:"required"`
	Date    string
	Time    string
	Theater string
	Seats   string
	Amount  string `validate:"required,numeric_amount"`
	Address string
}

func readBookingSubmission(r *http.Request) bookingSubmission {
	return bookingSubmission{
		Movie:   r.PostFormValue("movie"),
		Date:    r.PostFormValue("date"),
		Time:    r.PostFormValue("time"),
		Theater: r.PostFormValue("theater"),
		Seats:   r.PostFormValue("seats"),
		Amount:  r.PostFormValue("amount"),
		Address: r.PostFormValue("address"),
	}
}

// confirmBooking assembles a booking record from the submitted form and the
// session identity, persists it and publishes a confirmation notification.
// Every submission creates a new booking; resubmitting the form books again.
func (app *application) confirmBooking(w http.ResponseWriter, r *http.Request) {
	user := app.sessionUser(r)
	submission := readBookingSubmission(r)

	err := app.validator.Struct(submission)
	if err != nil {
		app.logError(r, err)
		app.flashAndRedirect(w, r, "Booking failed.", "/dashboard")
		return
	}

	amount, err := decimal.NewFromString(submission.Amount)
	if err != nil {
		app.logError(r, err)
		app.flashAndRedirect(w, r, "Booking failed.", "/dashboard")
		return
	}

	booking := &domain.Booking{
		ID:         domain.NewBookingID(time.Now()),
		MovieName:  submission.Movie,
		Theater:    submission.Theater,
		Date:       submission.Date,
		Time:       submission.Time,
		Seats:      submission.Seats,
		AmountPaid: amount,
		Address:    submission.Address,
		BookedBy:   user.Email,
		UserName:   user.Name,
		PaymentID:  domain.NewPaymentID(),
	}

	// The ledger's primary key is the real uniqueness guarantee for the
	// short booking id; regenerate and retry on collision.
	for attempt := 0; attempt < maxBookingIDAttempts; attempt++ {
		err = app.bookingRepo.Create(r.Context(), booking)
		if !errors.Is(err, domain.ErrDuplicateBooking) {
			break
		}

		booking.ID = domain.NewBookingID(time.Now())
	}

	if err != nil {
		app.logError(r, err)
		app.flashAndRedirect(w, r, "Booking failed.", "/dashboard")
		return
	}

	notification := notifier.Notification{
		Subject:   "MovieMagic Ticket Confirmed",
		Body:      confirmationMessage(booking),
		Recipient: booking.BookedBy,
	}

	// Best effort: the booking stands whether or not the notification
	// makes it out.
	err = app.notifier.Notify(r.Context(), notification)
	if err != nil {
		app.logger.Error("failed to publish booking notification", "error", err, "bookingId", booking.ID)
	}

	// The receipt is rendered from the persisted record so the confirmation
	// reflects exactly what was stored.
	app.render(w, r, http.StatusOK, "confirmation.tmpl", templateData{Booking: booking})
}

func confirmationMessage(booking *domain.Booking) string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour booking for %s is confirmed!\nBooking ID: %s\nSeats: %s\nAmount Paid: Rs. %s\n\nEnjoy the show!",
		booking.UserName,
		booking.MovieName,
		booking.ID,
		booking.Seats,
		booking.AmountPaid.String(),
	)
}
