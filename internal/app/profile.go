package app

import (
	"net/http"

	"github.com/TejaBandari20/moviemagic/internal/domain"
)

func (app *application) profile(w http.ResponseWriter, r *http.Request) {
	sess := app.sessionUser(r)

	user, err := app.userRepo.GetByEmail(r.Context(), sess.Email)
	if err != nil {
		// Fall back to the session-held identity so the page still renders
		// when the credential store is momentarily unavailable.
		app.logError(r, err)
		user = &domain.User{Name: sess.Name, Email: sess.Email}
	}

	bookings, err := app.bookingRepo.GetByPurchaser(r.Context(), sess.Email)
	if err != nil {
		app.logError(r, err)
		bookings = []*domain.Booking{}
	}

	app.render(w, r, http.StatusOK, "profile.tmpl", templateData{User: user, Bookings: bookings})
}

// updateProfile overwrites the full profile field set. Fields left out of
// the form become empty strings; there is no patch semantics here.
func (app *application) updateProfile(w http.ResponseWriter, r *http.Request) {
	sess := app.sessionUser(r)

	update := domain.ProfileUpdate{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Mobile:    r.PostFormValue("mobile"),
		Birthday:  r.PostFormValue("birthday"),
		Gender:    r.PostFormValue("gender"),
		Married:   r.PostFormValue("married"),
	}

	name := update.DisplayName(sess.Name)

	err := app.userRepo.UpdateProfile(r.Context(), sess.Email, name, update)
	if err != nil {
		app.logError(r, err)
		app.flashAndRedirect(w, r, "Error updating profile", "/profile")
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserName.String(), name)

	app.flashAndRedirect(w, r, "Profile updated successfully!", "/profile")
}
