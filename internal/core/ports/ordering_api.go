package ports

import (
	"context"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

// RegisterInput carries a new account registration. Role is fixed to "user"
// by the client; admin accounts are provisioned out of band.
type RegisterInput struct {
	Username    string
	Password    string
	PhoneNumber string
}

// OrderLine is one item selected on the order form.
type OrderLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	RestaurantID    string
	DeliveryAddress string
	Items           []OrderLine
}

// CreateRestaurantInput carries a new restaurant. Latitude and Longitude are
// nil when the form fields were empty or unparseable; they are never zeroed.
type CreateRestaurantInput struct {
	Name        string
	Description string
	Address     string
	PhoneNumber string
	Email       string
	Latitude    *float64
	Longitude   *float64
}

// CreateMenuItemInput carries a new menu item for a restaurant.
type CreateMenuItemInput struct {
	RestaurantID string
	Name         string
	Description  string
	Price        float64
	Category     string
	IsAvailable  bool
}

// OrderingAPI is the full contract with the remote ordering platform. Every
// call is one HTTP round-trip; the bearer token is passed explicitly so the
// client never reads authentication state ambiently.
type OrderingAPI interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, input RegisterInput) error

	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	// GetRestaurant returns one restaurant with its menu items populated.
	GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error)

	CreateOrder(ctx context.Context, token string, input CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)

	AdminListOrders(ctx context.Context, token string) ([]domain.Order, error)
	AdminGetOrder(ctx context.Context, token, orderID string) (*domain.Order, error)
	AdminUpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error
	AdminListRestaurants(ctx context.Context, token string) ([]domain.Restaurant, error)
	AdminCreateRestaurant(ctx context.Context, token string, input CreateRestaurantInput) error
	AdminDeleteRestaurant(ctx context.Context, token, restaurantID string) error
	AdminListMenu(ctx context.Context, token, restaurantID string) ([]domain.MenuItem, error)
	AdminCreateMenuItem(ctx context.Context, token string, input CreateMenuItemInput) error
	AdminDeleteMenuItem(ctx context.Context, token, itemID string) error
	AdminListUsers(ctx context.Context, token string) ([]domain.User, error)
}
