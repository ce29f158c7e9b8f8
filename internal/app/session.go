package app

import "net/http"

type sessionKey string

const (
	SessionKeyUserEmail = sessionKey("userEmail")
	SessionKeyUserName  = sessionKey("userName")
	SessionKeyIsAdmin   = sessionKey("isAdmin")
	SessionKeyFlash     = sessionKey("flash")
)

func (s sessionKey) String() string {
	return string(s)
}

// sessionUser is the transient identity established at login. An empty Email
// means the caller is unauthenticated.
type sessionUser struct {
	Email   string
	Name    string
	IsAdmin bool
}

func (app *application) sessionUser(r *http.Request) sessionUser {
	return sessionUser{
		Email:   app.sessionManager.GetString(r.Context(), SessionKeyUserEmail.String()),
		Name:    app.sessionManager.GetString(r.Context(), SessionKeyUserName.String()),
		IsAdmin: app.sessionManager.GetBool(r.Context(), SessionKeyIsAdmin.String()),
	}
}

func (app *application) putFlash(r *http.Request, message string) {
	app.sessionManager.Put(r.Context(), SessionKeyFlash.String(), message)
}

func (app *application) popFlash(r *http.Request) string {
	return app.sessionManager.PopString(r.Context(), SessionKeyFlash.String())
}
