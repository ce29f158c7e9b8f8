package app

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TejaBandari20/moviemagic/internal/domain"
	"github.com/TejaBandari20/moviemagic/internal/mocks"
)

func TestProfile(t *testing.T) {
	t.Run("renders stored profile and bookings", func(t *testing.T) {
		app := newTestApplication(t, func(a *application) {
			a.userRepo = &mocks.MockUserRepo{
				GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{Name: "Alice Smith", Email: email, Mobile: "5550100"}, nil
				},
			}
			a.bookingRepo = &mocks.MockBookingRepo{
				GetByPurchaserFunc: func(ctx context.Context, email string) ([]*domain.Booking, error) {
					return []*domain.Booking{{ID: "MM-20250701-AB12CD34", MovieName: "RRR", BookedBy: email}}, nil
				},
			}
		})

		w, r := executeRequest(t, app, http.MethodGet, "/profile", nil)
		signIn(t, app, r, "alice@example.com", "Alice", false)

		app.profile(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		body := w.Body.String()
		if !strings.Contains(body, "Alice Smith") {
			t.Error("body does not show the stored profile name")
		}
		if !strings.Contains(body, "MM-20250701-AB12CD34") {
			t.Error("body does not list the user's booking")
		}
	})

	t.Run("falls back to session identity when the credential store is down", func(t *testing.T) {
		app := newTestApplication(t, func(a *application) {
			a.userRepo = &mocks.MockUserRepo{
				GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return nil, errors.New("store down")
				},
			}
			a.bookingRepo = &mocks.MockBookingRepo{
				GetByPurchaserFunc: func(ctx context.Context, email string) ([]*domain.Booking, error) {
					return nil, errors.New("store down")
				},
			}
		})

		w, r := executeRequest(t, app, http.MethodGet, "/profile", nil)
		signIn(t, app, r, "alice@example.com", "Alice", false)

		app.profile(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		if !strings.Contains(w.Body.String(), "alice@example.com") {
			t.Error("body does not fall back to the session email")
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("overwrites the full field set", func(t *testing.T) {
		var (
			gotName   string
			gotUpdate domain.ProfileUpdate
		)

		app := newTestApplication(t, func(a *application) {
			a.userRepo = &mocks.MockUserRepo{
				UpdateProfileFunc: func(ctx context.Context, email, name string, update domain.ProfileUpdate) error {
					gotName = name
					gotUpdate = update
					return nil
				},
			}
		})

		// Only the names are submitted; every other field must be blanked.
		form := url.Values{
			"first_name": {"Alice"},
			"last_name":  {"Smith"},
		}

		w, r := executeRequest(t, app, http.MethodPost, "/update_profile", form)
		signIn(t, app, r, "alice@example.com", "Alice", false)

		app.updateProfile(w, r)

		assertRedirect(t, w, "/profile")
		assertFlash(t, app, r, "Profile updated successfully!")

		want := domain.ProfileUpdate{FirstName: "Alice", LastName: "Smith"}
		if diff := cmp.Diff(want, gotUpdate); diff != "" {
			t.Errorf("profile update mismatch (-want +got):\n%s", diff)
		}

		if gotName != "Alice Smith" {
			t.Errorf("display name = %q, want %q", gotName, "Alice Smith")
		}

		if got := app.sessionManager.GetString(r.Context(), SessionKeyUserName.String()); got != "Alice Smith" {
			t.Errorf("session name = %q, want %q", got, "Alice Smith")
		}
	})

	t.Run("keeps the previous name when both name fields are blank", func(t *testing.T) {
		var gotName string

		app := newTestApplication(t, func(a *application) {
			a.userRepo = &mocks.MockUserRepo{
				UpdateProfileFunc: func(ctx context.Context, email, name string, update domain.ProfileUpdate) error {
					gotName = name
					return nil
				},
			}
		})

		form := url.Values{"mobile": {"5550100"}}

		w, r := executeRequest(t, app, http.MethodPost, "/update_profile", form)
		signIn(t, app, r, "alice@example.com", "Alice", false)

		app.updateProfile(w, r)

		assertRedirect(t, w, "/profile")

		if gotName != "Alice" {
			t.Errorf("display name = %q, want previous name %q", gotName, "Alice")
		}
	})

	t.Run("store failure", func(t *testing.T) {
		app := newTestApplication(t, func(a *application) {
			a.userRepo = &mocks.MockUserRepo{
				UpdateProfileFunc: func(ctx context.Context, email, name string, update domain.ProfileUpdate) error {
					return errors.New("store down")
				},
			}
		})

		w, r := executeRequest(t, app, http.MethodPost, "/update_profile", url.Values{"first_name": {"Alice"}})
		signIn(t, app, r, "alice@example.com", "Alice", false)

		app.updateProfile(w, r)

		assertRedirect(t, w, "/profile")
		assertFlash(t, app, r, "Error updating profile")
	})
}
