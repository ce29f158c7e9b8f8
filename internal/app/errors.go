package app

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	appvalidator "github.com/TejaBandari20/moviemagic/internal/validator"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	http.Error(w, "The server encountered a problem and could not process your request", http.StatusInternalServerError)
}

// flashAndRedirect converts a failure into the flash-message-plus-redirect
// shape every store error takes in this application. Nothing is retried.
func (app *application) flashAndRedirect(w http.ResponseWriter, r *http.Request, message, url string) {
	app.putFlash(r, message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashValidationError flashes the first human-readable validation message
// and sends the caller back to the submitting page.
func (app *application) flashValidationError(w http.ResponseWriter, r *http.Request, err error, url string) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldErr := validationErrors[0]
		app.flashAndRedirect(w, r, fieldErr.Field()+" "+appvalidator.ValidationMessage(fieldErr), url)
		return
	}

	app.flashAndRedirect(w, r, "Invalid input", url)
}
