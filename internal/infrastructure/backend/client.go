// Package backend implements ports.OrderingAPI against the remote
// food-ordering REST API. Every operation is a single request/response
// cycle: no retries, no caching, no local mutation of returned entities.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/metrics"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

// Doer abstracts the HTTP client so tests can inject their own transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the single typed entry point to the ordering API. The bearer
// token travels as an argument on each call, never as ambient state.
type Client struct {
	baseURL string
	http    Doer
	log     zerolog.Logger
}

var _ ports.OrderingAPI = (*Client)(nil)

// New returns a Client for the API rooted at baseURL (origin + path prefix,
// e.g. "http://api.example.com/api/v1"). A default HTTP client is used when
// doer is nil.
func New(baseURL string, doer Doer, log zerolog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		log:     log,
	}
}

// call describes one API round-trip. Exactly one of form/body may be set.
type call struct {
	op     string
	method string
	path   string
	token  string
	form   url.Values
	body   any
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	var rdr io.Reader
	contentType := ""
	switch {
	case cl.form != nil:
		rdr = strings.NewReader(cl.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case cl.body != nil:
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		rdr = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, rdr)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(cl.op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(cl.op, "transport_error").Inc()
		c.log.Error().Err(err).Str("endpoint", cl.op).Msg("ordering api unreachable")
		return fmt.Errorf("%s: %w", cl.op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.BackendRequestsTotal.WithLabelValues(cl.op, "api_error").Inc()
		remoteErr := decodeAPIError(resp)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("endpoint", cl.op).
			Str("detail", remoteErr.Detail).
			Msg("ordering api rejected request")
		return remoteErr
	}

	metrics.BackendRequestsTotal.WithLabelValues(cl.op, "ok").Inc()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", cl.op, err)
	}
	return nil
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	var out loginResponse
	if err := c.do(ctx, call{op: "login", method: http.MethodPost, path: "/auth/login", form: form}, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login: response carried no access token")
	}
	return out.AccessToken, nil
}

type registerRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	PhoneNumber *string `json:"phone_number"`
}

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) error {
	body := registerRequest{
		Username:    input.Username,
		Password:    input.Password,
		Role:        domain.RoleUser,
		PhoneNumber: nullable(input.PhoneNumber),
	}
	return c.do(ctx, call{op: "register", method: http.MethodPost, path: "/auth/users/", body: body}, nil)
}

func (c *Client) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	if err := c.do(ctx, call{op: "list_restaurants", method: http.MethodGet, path: "/restaurants/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	var out domain.Restaurant
	path := "/restaurants/" + url.PathEscape(restaurantID)
	if err := c.do(ctx, call{op: "get_restaurant", method: http.MethodGet, path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type createOrderRequest struct {
	RestaurantID    string            `json:"restaurant_id"`
	DeliveryAddress string            `json:"delivery_address"`
	Items           []ports.OrderLine `json:"items"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, input ports.CreateOrderInput) (*domain.Order, error) {
	body := createOrderRequest{
		RestaurantID:    input.RestaurantID,
		DeliveryAddress: input.DeliveryAddress,
		Items:           input.Items,
	}
	var out domain.Order
	if err := c.do(ctx, call{op: "create_order", method: http.MethodPost, path: "/orders/", token: token, body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, call{op: "list_orders", method: http.MethodGet, path: "/orders/", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, call{op: "admin_list_orders", method: http.MethodGet, path: "/admin/orders/", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminGetOrder(ctx context.Context, token, orderID string) (*domain.Order, error) {
	var out domain.Order
	path := "/admin/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, call{op: "admin_get_order", method: http.MethodGet, path: path, token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (c *Client) AdminUpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	path := "/admin/orders/" + url.PathEscape(orderID)
	return c.do(ctx, call{op: "admin_update_order_status", method: http.MethodPatch, path: path, token: token, body: updateStatusRequest{Status: status}}, nil)
}

func (c *Client) AdminListRestaurants(ctx context.Context, token string) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	if err := c.do(ctx, call{op: "admin_list_restaurants", method: http.MethodGet, path: "/admin/restaurants/", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createRestaurantRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Address     string   `json:"address"`
	PhoneNumber *string  `json:"phone_number"`
	Email       *string  `json:"email"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsActive    bool     `json:"is_active"`
}

func (c *Client) AdminCreateRestaurant(ctx context.Context, token string, input ports.CreateRestaurantInput) error {
	body := createRestaurantRequest{
		Name:        input.Name,
		Description: nullable(input.Description),
		Address:     input.Address,
		PhoneNumber: nullable(input.PhoneNumber),
		Email:       nullable(input.Email),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsActive:    false,
	}
	return c.do(ctx, call{op: "admin_create_restaurant", method: http.MethodPost, path: "/admin/restaurants/", token: token, body: body}, nil)
}

func (c *Client) AdminDeleteRestaurant(ctx context.Context, token, restaurantID string) error {
	path := "/admin/restaurants/" + url.PathEscape(restaurantID)
	return c.do(ctx, call{op: "admin_delete_restaurant", method: http.MethodDelete, path: path, token: token}, nil)
}

func (c *Client) AdminListMenu(ctx context.Context, token, restaurantID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	path := "/admin/restaurants/" + url.PathEscape(restaurantID) + "/menu/"
	if err := c.do(ctx, call{op: "admin_list_menu", method: http.MethodGet, path: path, token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createMenuItemRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	Category     *string `json:"category"`
	IsAvailable  bool    `json:"is_available"`
}

func (c *Client) AdminCreateMenuItem(ctx context.Context, token string, input ports.CreateMenuItemInput) error {
	body := createMenuItemRequest{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  nullable(input.Description),
		Price:        input.Price,
		Category:     nullable(input.Category),
		IsAvailable:  input.IsAvailable,
	}
	return c.do(ctx, call{op: "admin_create_menu_item", method: http.MethodPost, path: "/admin/menu-items/", token: token, body: body}, nil)
}

func (c *Client) AdminDeleteMenuItem(ctx context.Context, token, itemID string) error {
	path := "/admin/menu-items/" + url.PathEscape(itemID)
	return c.do(ctx, call{op: "admin_delete_menu_item", method: http.MethodDelete, path: path, token: token}, nil)
}

func (c *Client) AdminListUsers(ctx context.Context, token string) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, call{op: "admin_list_users", method: http.MethodGet, path: "/admin/users/", token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping reports whether the API answers at all. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, call{op: "ping", method: http.MethodGet, path: "/restaurants/"}, nil)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
