package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/service"
)

type stubFlashStore struct {
	flashes []domain.Flash
}

func (s *stubFlashStore) Push(_ context.Context, _ string, f domain.Flash) error {
	s.flashes = append(s.flashes, f)
	return nil
}

func (s *stubFlashStore) Drain(_ context.Context, _ string) ([]domain.Flash, error) {
	out := s.flashes
	s.flashes = nil
	return out, nil
}

func gateContext(t *testing.T, sess domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextSessionID, "sid-1")
	c.Set(ContextSession, sess)
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	flashes := &stubFlashStore{}
	mw := RequireRole(service.NewGate(zerolog.Nop()), alert.New(flashes, zerolog.Nop()), domain.AccessAdmin)
	c, rec := gateContext(t, domain.Session{Token: "t", Username: "a", Role: domain.RoleAdmin})

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_RedirectsAnonymousToLogin(t *testing.T) {
	flashes := &stubFlashStore{}
	mw := RequireRole(service.NewGate(zerolog.Nop()), alert.New(flashes, zerolog.Nop()), domain.AccessUser)
	c, rec := gateContext(t, domain.Anonymous)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if len(flashes.flashes) != 1 || flashes.flashes[0].Level != domain.FlashWarning {
		t.Fatalf("expected a warning banner, got %+v", flashes.flashes)
	}
}

func TestRequireRole_DeniesUnknownRoles(t *testing.T) {
	for _, role := range []string{"superuser", "moderator", "ADMIN"} {
		flashes := &stubFlashStore{}
		mw := RequireRole(service.NewGate(zerolog.Nop()), alert.New(flashes, zerolog.Nop()), domain.AccessAdmin)
		c, rec := gateContext(t, domain.Session{Token: "t", Username: "x", Role: role})

		handler := mw(func(c echo.Context) error {
			t.Fatalf("role %q must not reach the view", role)
			return nil
		})

		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
			t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
		}
		if len(flashes.flashes) != 1 || flashes.flashes[0].Level != domain.FlashDanger {
			t.Fatalf("expected a danger banner, got %+v", flashes.flashes)
		}
	}
}
