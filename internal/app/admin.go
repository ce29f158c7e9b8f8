package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TejaBandari20/moviemagic/internal/domain"
)

type movieForm struct {
	Title       string `validate:"required,max=200"`
	Genre       string `validate:"required"`
	Language    string `validate:"required"`
	Duration    string `validate:"required"`
	Image       string `validate:"required"`
	Trailer     string `validate:"required"`
	Price       string `validate:"required,numeric_amount"`
	Rating      string `validate:"required,numeric_amount"`
	Theater     string `validate:"required"`
	Address     string `validate:"required"`
	Description string `validate:"required"`
}

func readMovieForm(r *http.Request) movieForm {
	return movieForm{
		Title:       r.PostFormValue("title"),
		Genre:       r.PostFormValue("genre"),
		Language:    r.PostFormValue("language"),
		Duration:    r.PostFormValue("duration"),
		Image:       r.PostFormValue("image"),
		Trailer:     r.PostFormValue("trailer"),
		Price:       r.PostFormValue("price"),
		Rating:      r.PostFormValue("rating"),
		Theater:     r.PostFormValue("theater"),
		Address:     r.PostFormValue("address"),
		Description: r.PostFormValue("description"),
	}
}

// toMovie converts the validated form into a catalog record. Price and
// rating are coerced to decimals here and nowhere else.
func (f movieForm) toMovie(id string) *domain.Movie {
	price, _ := decimal.NewFromString(f.Price)
	rating, _ := decimal.NewFromString(f.Rating)

	return &domain.Movie{
		ID:          id,
		Title:       f.Title,
		Genre:       f.Genre,
		Language:    f.Language,
		Duration:    f.Duration,
		Image:       f.Image,
		Trailer:     f.Trailer,
		Price:       price,
		Rating:      rating,
		Theater:     f.Theater,
		Address:     f.Address,
		Description: f.Description,
	}
}

func (app *application) adminDashboard(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.logError(r, err)
		movies = []*domain.Movie{}
	}

	app.render(w, r, http.StatusOK, "admin.tmpl", templateData{Movies: movies})
}

func (app *application) addMovie(w http.ResponseWriter, r *http.Request) {
	form := readMovieForm(r)

	err := app.validator.Struct(form)
	if err != nil {
		app.flashValidationError(w, r, err, "/admin")
		return
	}

	err = app.movieRepo.Create(r.Context(), form.toMovie(uuid.New().String()))
	if err != nil {
		app.logError(r, err)
		app.flashAndRedirect(w, r, "Error adding movie", "/admin")
		return
	}

	app.flashAndRedirect(w, r, "Movie added successfully!", "/admin")
}

// editMovie replaces every field of the stored record with the submitted
// values. The form has to resend the full field set.
func (app *application) editMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := readMovieForm(r)

	err := app.validator.Struct(form)
	if err != nil {
		app.flashValidationError(w, r, err, "/admin")
		return
	}

	err = app.movieRepo.Update(r.Context(), form.toMovie(id))
	if err != nil {
		app.logError(r, err)
		app.flashAndRedirect(w, r, "Error updating movie", "/admin")
		return
	}

	app.flashAndRedirect(w, r, "Movie updated successfully!", "/admin")
}

func (app *application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		app.logError(r, err)
		app.flashAndRedirect(w, r, "Error deleting movie", "/admin")
		return
	}

	app.flashAndRedirect(w, r, "Movie deleted", "/admin")
}
