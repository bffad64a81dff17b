package domain

import "encoding/json"

// OrderStatus is the lifecycle state of an order, as defined by the ordering API.
type OrderStatus string

const (
	StatusPendingConfirmation OrderStatus = "pending_confirmation"
	StatusConfirmed           OrderStatus = "confirmed"
	StatusPreparing           OrderStatus = "preparing"
	StatusReadyForPickup      OrderStatus = "ready_for_pickup"
	StatusDelivered           OrderStatus = "delivered"
	StatusCancelled           OrderStatus = "cancelled"
)

// OrderStatuses lists the full status vocabulary in display order.
var OrderStatuses = []OrderStatus{
	StatusPendingConfirmation,
	StatusConfirmed,
	StatusPreparing,
	StatusReadyForPickup,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is part of the known vocabulary.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is one ordered line: the item id, a denormalized item name, the
// quantity, and the price per unit captured at order time.
type OrderItem struct {
	ItemID       string      `json:"item_id"`
	MenuItem     *ItemRef    `json:"menu_item,omitempty"`
	Quantity     int         `json:"quantity"`
	PricePerItem json.Number `json:"price_per_item"`
}

// ItemRef carries the denormalized name of a referenced menu item.
type ItemRef struct {
	Name string `json:"name"`
}

// Name returns the denormalized item name, or "N/A" when absent.
func (i OrderItem) Name() string {
	if i.MenuItem == nil || i.MenuItem.Name == "" {
		return "N/A"
	}
	return i.MenuItem.Name
}

// RestaurantRef carries the denormalized name of the order's restaurant.
type RestaurantRef struct {
	Name string `json:"name"`
}

// Order is the view-local projection of an order returned by the API.
// Nothing here is mutated locally; every change round-trips to the API.
type Order struct {
	OrderID         string         `json:"order_id"`
	UserID          string         `json:"user_id"`
	RestaurantID    string         `json:"restaurant_id"`
	Restaurant      *RestaurantRef `json:"restaurant,omitempty"`
	Status          OrderStatus    `json:"status"`
	TotalAmount     json.Number    `json:"total_amount"`
	DeliveryAddress string         `json:"delivery_address"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
	Items           []OrderItem    `json:"items"`
}

// RestaurantName returns the denormalized restaurant name, or "N/A" when absent.
func (o Order) RestaurantName() string {
	if o.Restaurant == nil || o.Restaurant.Name == "" {
		return "N/A"
	}
	return o.Restaurant.Name
}
