package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

// AdminHandler serves the management views. Every route here sits behind the
// admin gate; the handlers only shape data and relay writes to the API.
type AdminHandler struct {
	api    ports.OrderingAPI
	alerts *alert.Alerts
	log    zerolog.Logger
}

func NewAdminHandler(api ports.OrderingAPI, alerts *alert.Alerts, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{api: api, alerts: alerts, log: log}
}

type adminOrdersPage struct {
	Page
	Orders   []domain.Order
	Statuses []domain.OrderStatus
}

type adminOrderDetailPage struct {
	Page
	Order *domain.Order
}

type adminRestaurantsPage struct {
	Page
	Restaurants []domain.Restaurant
	ShowCreate  bool
}

type adminMenuPage struct {
	Page
	Restaurant *domain.Restaurant
	Items      []domain.MenuItem
	ShowCreate bool
}

type adminUsersPage struct {
	Page
	Users []domain.User
}

// Panel renders the management landing page.
func (h *AdminHandler) Panel(c echo.Context) error {
	return render(c, "admin.html", struct {
		Page
	}{newPage(c, "Administration", h.alerts)})
}

// Orders renders every order on the platform with inline status controls.
func (h *AdminHandler) Orders(c echo.Context) error {
	page := newPage(c, "All orders", h.alerts)

	orders, err := h.api.AdminListOrders(c.Request().Context(), currentSession(c).Token)
	if err != nil {
		h.log.Error().Err(err).Msg("admin order listing fetch failed")
		return render(c, "admin_orders.html", adminOrdersPage{
			Page:     page.WithFlash(domain.FlashDanger, errorMessage(err, "Failed to load orders")),
			Statuses: domain.OrderStatuses,
		})
	}

	return render(c, "admin_orders.html", adminOrdersPage{
		Page:     page,
		Orders:   orders,
		Statuses: domain.OrderStatuses,
	})
}

// UpdateStatus moves one order to the selected status. Submitting the
// placeholder option is a no-op; a status outside the vocabulary is rejected
// without touching the API.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)
	orderID := c.Param("id")

	status := domain.OrderStatus(strings.TrimSpace(c.FormValue("status")))
	if status == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/orders")
	}
	if !status.Valid() {
		h.alerts.Danger(ctx, sid, "Unknown order status.")
		return c.Redirect(http.StatusSeeOther, "/admin/orders")
	}

	if err := h.api.AdminUpdateOrderStatus(ctx, currentSession(c).Token, orderID, status); err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to update the order status"))
		return c.Redirect(http.StatusSeeOther, "/admin/orders")
	}

	h.alerts.Success(ctx, sid, "Order "+orderID+" moved to "+string(status)+".")
	return c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// Lookup finds a single order by id. The id is checked for canonical UUID
// shape locally, so a mistyped id costs no API round-trip.
func (h *AdminHandler) Lookup(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	orderID := strings.TrimSpace(c.QueryParam("order_id"))
	if !isCanonicalUUID(orderID) {
		h.alerts.Danger(ctx, sid, "Enter a valid order id.")
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	order, err := h.api.AdminGetOrder(ctx, currentSession(c).Token, orderID)
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Order not found"))
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	return render(c, "admin_order_detail.html", adminOrderDetailPage{
		Page:  newPage(c, "Order details", h.alerts),
		Order: order,
	})
}

// Restaurants renders the management restaurant list; ?create=1 opens the
// inline creation form.
func (h *AdminHandler) Restaurants(c echo.Context) error {
	page := newPage(c, "All restaurants", h.alerts)
	showCreate := c.QueryParam("create") == "1"

	restaurants, err := h.api.AdminListRestaurants(c.Request().Context(), currentSession(c).Token)
	if err != nil {
		h.log.Error().Err(err).Msg("admin restaurant listing fetch failed")
		return render(c, "admin_restaurants.html", adminRestaurantsPage{
			Page:       page.WithFlash(domain.FlashDanger, errorMessage(err, "Failed to load restaurants")),
			ShowCreate: showCreate,
		})
	}

	return render(c, "admin_restaurants.html", adminRestaurantsPage{
		Page:        page,
		Restaurants: restaurants,
		ShowCreate:  showCreate,
	})
}

// CreateRestaurant creates a restaurant from the inline form. Name and
// address are checked locally; coordinates are optional and passed through
// only when they parse.
func (h *AdminHandler) CreateRestaurant(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	name := strings.TrimSpace(c.FormValue("name"))
	address := strings.TrimSpace(c.FormValue("address"))
	if name == "" || address == "" {
		h.alerts.Danger(ctx, sid, "Restaurant name and address are required.")
		return c.Redirect(http.StatusSeeOther, "/admin/restaurants?create=1")
	}

	err := h.api.AdminCreateRestaurant(ctx, currentSession(c).Token, ports.CreateRestaurantInput{
		Name:        name,
		Description: strings.TrimSpace(c.FormValue("description")),
		Address:     address,
		PhoneNumber: strings.TrimSpace(c.FormValue("phone_number")),
		Email:       strings.TrimSpace(c.FormValue("email")),
		Latitude:    parseOptionalFloat(c.FormValue("latitude")),
		Longitude:   parseOptionalFloat(c.FormValue("longitude")),
	})
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to create the restaurant"))
		return c.Redirect(http.StatusSeeOther, "/admin/restaurants?create=1")
	}

	h.alerts.Success(ctx, sid, "Restaurant \""+name+"\" created.")
	return c.Redirect(http.StatusSeeOther, "/admin/restaurants")
}

// DeleteRestaurant removes a restaurant.
func (h *AdminHandler) DeleteRestaurant(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	if err := h.api.AdminDeleteRestaurant(ctx, currentSession(c).Token, c.Param("id")); err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to delete the restaurant"))
		return c.Redirect(http.StatusSeeOther, "/admin/restaurants")
	}

	h.alerts.Success(ctx, sid, "Restaurant deleted.")
	return c.Redirect(http.StatusSeeOther, "/admin/restaurants")
}

// Menu renders one restaurant's menu in the management view. The restaurant
// itself comes from the public endpoint; the item list comes from the
// management endpoint so unavailable items show too.
func (h *AdminHandler) Menu(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)
	restaurantID := c.Param("id")

	restaurant, err := h.api.GetRestaurant(ctx, restaurantID)
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to load the restaurant"))
		return c.Redirect(http.StatusSeeOther, "/admin/restaurants")
	}

	items, err := h.api.AdminListMenu(ctx, currentSession(c).Token, restaurantID)
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to load the menu"))
		return c.Redirect(http.StatusSeeOther, "/admin/restaurants")
	}

	return render(c, "admin_menu.html", adminMenuPage{
		Page:       newPage(c, "Menu management", h.alerts),
		Restaurant: restaurant,
		Items:      items,
		ShowCreate: c.QueryParam("create") == "1",
	})
}

// CreateMenuItem adds an item to a restaurant's menu. Name and a
// non-negative price are required before the API is called.
func (h *AdminHandler) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	restaurantID := c.FormValue("restaurant_id")
	menuURL := "/admin/restaurants/" + restaurantID + "/menu"

	name := strings.TrimSpace(c.FormValue("name"))
	price, priceErr := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	if name == "" || priceErr != nil || price < 0 {
		h.alerts.Danger(ctx, sid, "A menu item needs a name and a non-negative price.")
		return c.Redirect(http.StatusSeeOther, menuURL+"?create=1")
	}

	err := h.api.AdminCreateMenuItem(ctx, currentSession(c).Token, ports.CreateMenuItemInput{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  strings.TrimSpace(c.FormValue("description")),
		Price:        price,
		Category:     strings.TrimSpace(c.FormValue("category")),
		IsAvailable:  c.FormValue("is_available") != "",
	})
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to create the menu item"))
		return c.Redirect(http.StatusSeeOther, menuURL+"?create=1")
	}

	h.alerts.Success(ctx, sid, "Menu item \""+name+"\" created.")
	return c.Redirect(http.StatusSeeOther, menuURL)
}

// DeleteMenuItem removes a menu item and returns to its restaurant's menu.
func (h *AdminHandler) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	back := "/admin/restaurants"
	if restaurantID := c.FormValue("restaurant_id"); restaurantID != "" {
		back = "/admin/restaurants/" + restaurantID + "/menu"
	}

	if err := h.api.AdminDeleteMenuItem(ctx, currentSession(c).Token, c.Param("id")); err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to delete the menu item"))
		return c.Redirect(http.StatusSeeOther, back)
	}

	h.alerts.Success(ctx, sid, "Menu item deleted.")
	return c.Redirect(http.StatusSeeOther, back)
}

// Users renders every platform account.
func (h *AdminHandler) Users(c echo.Context) error {
	page := newPage(c, "All users", h.alerts)

	users, err := h.api.AdminListUsers(c.Request().Context(), currentSession(c).Token)
	if err != nil {
		h.log.Error().Err(err).Msg("admin user listing fetch failed")
		return render(c, "admin_users.html", adminUsersPage{
			Page: page.WithFlash(domain.FlashDanger, errorMessage(err, "Failed to load users")),
		})
	}

	return render(c, "admin_users.html", adminUsersPage{Page: page, Users: users})
}

// isCanonicalUUID accepts only the 36-character hyphenated form; uuid.Parse
// alone also takes braced, URN and bare-hex variants the API would reject.
func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// parseOptionalFloat returns nil for an empty or unparseable form value.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
