package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/api/middleware"
	"github.com/kate00gas/restaurant-delivery/internal/api/view"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

// stubOrderingAPI implements ports.OrderingAPI with per-method hooks and a
// call counter, so a test can assert that a rejected form never reached the
// remote API.
type stubOrderingAPI struct {
	calls int

	loginFn        func(ctx context.Context, username, password string) (string, error)
	registerFn     func(ctx context.Context, input ports.RegisterInput) error
	listFn         func(ctx context.Context) ([]domain.Restaurant, error)
	getFn          func(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
	createOrderFn  func(ctx context.Context, token string, input ports.CreateOrderInput) (*domain.Order, error)
	listOrdersFn   func(ctx context.Context, token string) ([]domain.Order, error)
	adminOrdersFn  func(ctx context.Context, token string) ([]domain.Order, error)
	adminGetFn     func(ctx context.Context, token, orderID string) (*domain.Order, error)
	updateStatusFn func(ctx context.Context, token, orderID string, status domain.OrderStatus) error
	createRestFn   func(ctx context.Context, token string, input ports.CreateRestaurantInput) error
}

func (s *stubOrderingAPI) Login(ctx context.Context, username, password string) (string, error) {
	s.calls++
	return s.loginFn(ctx, username, password)
}

func (s *stubOrderingAPI) Register(ctx context.Context, input ports.RegisterInput) error {
	s.calls++
	return s.registerFn(ctx, input)
}

func (s *stubOrderingAPI) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	s.calls++
	return s.listFn(ctx)
}

func (s *stubOrderingAPI) GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	s.calls++
	return s.getFn(ctx, restaurantID)
}

func (s *stubOrderingAPI) CreateOrder(ctx context.Context, token string, input ports.CreateOrderInput) (*domain.Order, error) {
	s.calls++
	return s.createOrderFn(ctx, token, input)
}

func (s *stubOrderingAPI) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	s.calls++
	return s.listOrdersFn(ctx, token)
}

func (s *stubOrderingAPI) AdminListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	s.calls++
	return s.adminOrdersFn(ctx, token)
}

func (s *stubOrderingAPI) AdminGetOrder(ctx context.Context, token, orderID string) (*domain.Order, error) {
	s.calls++
	return s.adminGetFn(ctx, token, orderID)
}

func (s *stubOrderingAPI) AdminUpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	s.calls++
	return s.updateStatusFn(ctx, token, orderID, status)
}

func (s *stubOrderingAPI) AdminListRestaurants(ctx context.Context, token string) ([]domain.Restaurant, error) {
	s.calls++
	return nil, nil
}

func (s *stubOrderingAPI) AdminCreateRestaurant(ctx context.Context, token string, input ports.CreateRestaurantInput) error {
	s.calls++
	return s.createRestFn(ctx, token, input)
}

func (s *stubOrderingAPI) AdminDeleteRestaurant(ctx context.Context, token, restaurantID string) error {
	s.calls++
	return nil
}

func (s *stubOrderingAPI) AdminListMenu(ctx context.Context, token, restaurantID string) ([]domain.MenuItem, error) {
	s.calls++
	return nil, nil
}

func (s *stubOrderingAPI) AdminCreateMenuItem(ctx context.Context, token string, input ports.CreateMenuItemInput) error {
	s.calls++
	return nil
}

func (s *stubOrderingAPI) AdminDeleteMenuItem(ctx context.Context, token, itemID string) error {
	s.calls++
	return nil
}

func (s *stubOrderingAPI) AdminListUsers(ctx context.Context, token string) ([]domain.User, error) {
	s.calls++
	return nil, nil
}

// memFlashStore keeps queued banners in memory.
type memFlashStore struct {
	queues map[string][]domain.Flash
}

func newMemFlashStore() *memFlashStore {
	return &memFlashStore{queues: map[string][]domain.Flash{}}
}

func (m *memFlashStore) Push(_ context.Context, sid string, f domain.Flash) error {
	m.queues[sid] = append(m.queues[sid], f)
	return nil
}

func (m *memFlashStore) Drain(_ context.Context, sid string) ([]domain.Flash, error) {
	flashes := m.queues[sid]
	delete(m.queues, sid)
	return flashes, nil
}

// memSessionStore keeps sessions in memory.
type memSessionStore struct {
	sessions map[string]domain.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]domain.Session{}}
}

func (m *memSessionStore) Load(_ context.Context, sid string) (domain.Session, error) {
	sess, ok := m.sessions[sid]
	if !ok {
		return domain.Anonymous, nil
	}
	return sess, nil
}

func (m *memSessionStore) Save(_ context.Context, sid string, sess domain.Session) error {
	m.sessions[sid] = sess
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, sid string) error {
	delete(m.sessions, sid)
	return nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	return e
}

func newTestAlerts(store *memFlashStore) *alert.Alerts {
	return alert.New(store, zerolog.Nop())
}

// newFormContext builds an echo context for a posted form with the given
// session already in place, the way the session middleware would leave it.
func newFormContext(e *echo.Echo, target string, form url.Values, sess domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSessionID, "sid-test")
	c.Set(middleware.ContextSession, sess)
	return c, rec
}

func newGetContext(e *echo.Echo, target string, sess domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSessionID, "sid-test")
	c.Set(middleware.ContextSession, sess)
	return c, rec
}

func lastFlash(t *testing.T, store *memFlashStore) domain.Flash {
	t.Helper()
	flashes := store.queues["sid-test"]
	if len(flashes) == 0 {
		t.Fatalf("expected a queued banner")
	}
	return flashes[len(flashes)-1]
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}
