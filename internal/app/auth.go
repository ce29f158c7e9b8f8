package app

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/TejaBandari20/moviemagic/internal/domain"
)

type signupForm struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (app *application) index(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "index.tmpl", templateData{})
}

func (app *application) signupForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "signup.tmpl", templateData{})
}

func (app *application) signup(w http.ResponseWriter, r *http.Request) {
	form := signupForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	err := app.validator.Struct(form)
	if err != nil {
		app.flashValidationError(w, r, err, "/signup")
		return
	}

	user := &domain.User{
		ID:    uuid.New().String(),
		Name:  form.Name,
		Email: form.Email,
	}

	err = user.Password.Set(form.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			app.flashAndRedirect(w, r, "Email already registered", "/signup")
		default:
			app.logError(r, err)
			app.flashAndRedirect(w, r, "Error creating account", "/signup")
		}

		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic occurred during sending welcome mail", "panic", err)
			}
		}()

		data := map[string]any{
			"name": user.Name,
		}

		err := app.mailer.Send(user.Email, "user_welcome.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send welcome email", "error", err)
		}
	}()

	app.flashAndRedirect(w, r, "Account created! Please login.", "/login")
}

func (app *application) loginForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "login.tmpl", templateData{})
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	err := app.validator.Struct(form)
	if err != nil {
		app.flashAndRedirect(w, r, "Invalid credentials", "/login")
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), form.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.flashAndRedirect(w, r, "Invalid credentials", "/login")
		default:
			app.logError(r, err)
			app.flashAndRedirect(w, r, "Login error", "/login")
		}

		return
	}

	matches, err := user.Password.Matches(form.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !matches {
		app.flashAndRedirect(w, r, "Invalid credentials", "/login")
		return
	}

	// Renew the session token after the privilege level change.
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserEmail.String(), user.Email)
	app.sessionManager.Put(r.Context(), SessionKeyUserName.String(), user.Name)
	app.sessionManager.Put(r.Context(), SessionKeyIsAdmin.String(), user.IsAdmin)

	if user.IsAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
