package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/TejaBandari20/moviemagic/internal/mailer"
	"github.com/TejaBandari20/moviemagic/internal/mocks"
	"github.com/TejaBandari20/moviemagic/internal/notifier"
	appvalidator "github.com/TejaBandari20/moviemagic/internal/validator"
)

func newTestApplication(t *testing.T, opts ...func(*application)) *application {
	t.Helper()

	templateCache, err := newTemplateCache()
	if err != nil {
		t.Fatal(err)
	}

	app := &application{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:      appvalidator.NewValidator(),
		sessionManager: scs.New(),
		templateCache:  templateCache,
		userRepo:       &mocks.MockUserRepo{},
		movieRepo:      &mocks.MockMovieRepo{},
		bookingRepo:    &mocks.MockBookingRepo{},
		mailer:         mailer.NewMockMailer(),
		notifier:       notifier.NewMockNotifier(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// executeRequest builds a form request with a freshly loaded session, so
// handlers can read and write session state the same way they do behind the
// LoadAndSave middleware.
func executeRequest(t *testing.T, app *application, method, target string, form url.Values) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	r := httptest.NewRequest(method, target, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatal(err)
	}

	return httptest.NewRecorder(), r.WithContext(ctx)
}

func signIn(t *testing.T, app *application, r *http.Request, email, name string, isAdmin bool) {
	t.Helper()

	app.sessionManager.Put(r.Context(), SessionKeyUserEmail.String(), email)
	app.sessionManager.Put(r.Context(), SessionKeyUserName.String(), name)
	app.sessionManager.Put(r.Context(), SessionKeyIsAdmin.String(), isAdmin)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, wantLocation string) {
	t.Helper()

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}

	if got := w.Header().Get("Location"); got != wantLocation {
		t.Errorf("redirect location = %q, want %q", got, wantLocation)
	}
}

func assertFlash(t *testing.T, app *application, r *http.Request, want string) {
	t.Helper()

	if got := app.sessionManager.GetString(r.Context(), SessionKeyFlash.String()); got != want {
		t.Errorf("flash = %q, want %q", got, want)
	}
}
