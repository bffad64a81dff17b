package domain

import "encoding/json"

// Restaurant is the view-local projection of a restaurant. The menu_items
// field is populated only by the single-restaurant endpoint.
type Restaurant struct {
	RestaurantID string     `json:"restaurant_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Address      string     `json:"address"`
	PhoneNumber  string     `json:"phone_number"`
	Email        string     `json:"email"`
	IsActive     bool       `json:"is_active"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
	MenuItems    []MenuItem `json:"menu_items,omitempty"`
}

// MenuItem is the view-local projection of a menu item. Price is kept as a
// json.Number so both numeric and string encodings from the API survive
// decoding; formatting is applied at render time.
type MenuItem struct {
	ItemID       string      `json:"item_id"`
	RestaurantID string      `json:"restaurant_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        json.Number `json:"price"`
	Category     string      `json:"category"`
	IsAvailable  bool        `json:"is_available"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}
