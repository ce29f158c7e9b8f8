package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TejaBandari20/moviemagic/internal/domain"
)

func (app *application) dashboard(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		// The dashboard still renders when the catalog store is down; the
		// caller just sees an empty listing.
		app.logError(r, err)
		movies = []*domain.Movie{}
	}

	app.render(w, r, http.StatusOK, "dashboard.tmpl", templateData{Movies: movies})
}

func (app *application) movieDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.flashAndRedirect(w, r, "Movie not found", "/dashboard")
		default:
			app.logError(r, err)
			app.flashAndRedirect(w, r, "Error loading movie", "/dashboard")
		}

		return
	}

	app.render(w, r, http.StatusOK, "movie_details.tmpl", templateData{Movie: movie})
}

// bookingSelection is the movie/theater choice carried between the catalog
// and the seat-selection page as query parameters. Nothing is persisted
// until the booking is confirmed.
type bookingSelection struct {
	Movie   string
	Theater string
	Address string
	Price   string
}

func (app *application) bookingPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	selection := bookingSelection{
		Movie:   query.Get("movie"),
		Theater: query.Get("theater"),
		Address: query.Get("address"),
		Price:   query.Get("price"),
	}

	app.render(w, r, http.StatusOK, "booking.tmpl", templateData{Selection: selection})
}

func (app *application) paymentPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "payment.tmpl", templateData{Payment: readBookingSubmission(r)})
}
