package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

func TestClient_LoginSendsFormEncodedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "s3cret" {
			t.Fatalf("credentials not forwarded: %v", r.PostForm)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok123"})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/v1", srv.Client(), zerolog.Nop())
	token, err := c.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "tok123" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestClient_BearerHeaderAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		_ = json.NewEncoder(w).Encode([]domain.Order{})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	if _, err := c.ListOrders(context.Background(), "tok123"); err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
}

func TestClient_CreateOrderDecodesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RestaurantID    string            `json:"restaurant_id"`
			DeliveryAddress string            `json:"delivery_address"`
			Items           []ports.OrderLine `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.RestaurantID != "r-1" || len(body.Items) != 2 {
			t.Fatalf("unexpected payload: %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order_id":     "o-42",
			"status":       "pending_confirmation",
			"total_amount": 37.5,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	order, err := c.CreateOrder(context.Background(), "tok", ports.CreateOrderInput{
		RestaurantID:    "r-1",
		DeliveryAddress: "Baker Street 221b",
		Items: []ports.OrderLine{
			{ItemID: "i-1", Quantity: 2},
			{ItemID: "i-2", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if order.OrderID != "o-42" || order.Status != domain.StatusPendingConfirmation {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestClient_APIErrorWithStringDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "username already taken"})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	err := c.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "pw"})

	var remote *domain.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.StatusCode != http.StatusConflict || remote.Detail != "username already taken" {
		t.Fatalf("unexpected remote error: %+v", remote)
	}
}

func TestClient_TransportErrorIsNotRemoteError(t *testing.T) {
	c := New("http://127.0.0.1:1", &http.Client{}, zerolog.Nop())
	err := c.Ping(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		t.Fatalf("transport failure must not decode as RemoteError: %v", err)
	}
}

func TestClient_MenuPriceSurvivesStringAndNumberEncoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"restaurant_id": "r-1",
			"name": "Pelmennaya No.1",
			"address": "Nevsky 12",
			"menu_items": [
				{"item_id": "i-1", "name": "Pelmeni", "price": 12.5, "is_available": true},
				{"item_id": "i-2", "name": "Borscht", "price": "199.90", "is_available": false}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	r, err := c.GetRestaurant(context.Background(), "r-1")
	if err != nil {
		t.Fatalf("GetRestaurant returned error: %v", err)
	}
	if len(r.MenuItems) != 2 {
		t.Fatalf("expected 2 menu items, got %d", len(r.MenuItems))
	}
	if got := domain.FormatPrice(r.MenuItems[0].Price); got != "12.50₽" {
		t.Fatalf("numeric price formatted as %q", got)
	}
	if got := domain.FormatPrice(r.MenuItems[1].Price); got != "199.90₽" {
		t.Fatalf("string price formatted as %q", got)
	}
}
