package app

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/TejaBandari20/moviemagic/internal/domain"
)

//go:embed templates
var templateFS embed.FS

type templateCache map[string]*template.Template

// templateData carries everything a page can render. Flash and the session
// fields are filled in by render; handlers only set the page-specific parts.
type templateData struct {
	Flash     string
	UserName  string
	LoggedIn  bool
	IsAdmin   bool
	Movies    []*domain.Movie
	Movie     *domain.Movie
	User      *domain.User
	Bookings  []*domain.Booking
	Booking   *domain.Booking
	Selection bookingSelection
	Payment   bookingSubmission
}

func newTemplateCache() (templateCache, error) {
	cache := templateCache{}

	pages, err := fs.Glob(templateFS, "templates/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).ParseFS(templateFS, "templates/base.tmpl", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.serverErrorResponse(w, r, fmt.Errorf("template %s does not exist", page))
		return
	}

	user := app.sessionUser(r)
	data.Flash = app.popFlash(r)
	data.UserName = user.Name
	data.LoggedIn = user.Email != ""
	data.IsAdmin = user.IsAdmin

	// Render to a buffer first so a template failure never sends half a page.
	buf := new(bytes.Buffer)

	err := ts.ExecuteTemplate(buf, "base", data)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}
