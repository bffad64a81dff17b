package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

// RestaurantHandler serves the public restaurant listing and the per
// restaurant menu. Both views are open to anonymous visitors; only the
// order form on the menu is role dependent.
type RestaurantHandler struct {
	api    ports.OrderingAPI
	alerts *alert.Alerts
	log    zerolog.Logger
}

func NewRestaurantHandler(api ports.OrderingAPI, alerts *alert.Alerts, log zerolog.Logger) *RestaurantHandler {
	return &RestaurantHandler{api: api, alerts: alerts, log: log}
}

type listingPage struct {
	Page
	Restaurants []domain.Restaurant
}

type menuPage struct {
	Page
	Restaurant      *domain.Restaurant
	CanOrder        bool
	ShowLoginPrompt bool
}

// Listing renders the restaurant list. A failing fetch still renders the
// page, empty, with a banner explaining what went wrong.
func (h *RestaurantHandler) Listing(c echo.Context) error {
	page := newPage(c, "Restaurants", h.alerts)

	restaurants, err := h.api.ListRestaurants(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("restaurant listing fetch failed")
		return render(c, "restaurants.html", listingPage{
			Page: page.WithFlash(domain.FlashDanger, errorMessage(err, "Failed to load restaurants")),
		})
	}

	return render(c, "restaurants.html", listingPage{Page: page, Restaurants: restaurants})
}

// Menu renders one restaurant's menu. The order form appears only for
// logged-in visitors with the user role; admins browse read-only.
func (h *RestaurantHandler) Menu(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)
	sess := currentSession(c)

	restaurant, err := h.api.GetRestaurant(ctx, c.Param("id"))
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to load the menu"))
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return render(c, "menu.html", menuPage{
		Page:            newPage(c, restaurant.Name, h.alerts),
		Restaurant:      restaurant,
		CanOrder:        sess.IsAuthenticated() && sess.Role == domain.RoleUser,
		ShowLoginPrompt: !sess.IsAuthenticated(),
	})
}
