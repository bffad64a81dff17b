package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

// quantityPrefix names the per-item quantity fields on the menu's order form.
const quantityPrefix = "quantity_"

// OrderHandler serves order placement and the visitor's order history. Both
// routes sit behind the user gate.
type OrderHandler struct {
	api    ports.OrderingAPI
	alerts *alert.Alerts
	log    zerolog.Logger
}

func NewOrderHandler(api ports.OrderingAPI, alerts *alert.Alerts, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{api: api, alerts: alerts, log: log}
}

type orderForm struct {
	RestaurantID    string `form:"restaurant_id" validate:"required"`
	DeliveryAddress string `form:"delivery_address" validate:"required,min=5,max=500"`
}

type historyPage struct {
	Page
	Orders []domain.Order
}

// Create places an order from the menu form. Quantities arrive as one field
// per item; lines with a zero or unparseable quantity are dropped, and a form
// with no positive quantities at all is rejected before any API call.
func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)
	sess := currentSession(c)

	var form orderForm
	if err := c.Bind(&form); err != nil {
		h.alerts.Danger(ctx, sid, "Invalid order form.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := c.Validate(&form); err != nil {
		h.alerts.Danger(ctx, sid, "Order rejected: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/restaurants/"+form.RestaurantID)
	}

	lines := collectOrderLines(c)
	if len(lines) == 0 {
		h.alerts.Danger(ctx, sid, "Select at least one item before placing an order.")
		return c.Redirect(http.StatusSeeOther, "/restaurants/"+form.RestaurantID)
	}

	order, err := h.api.CreateOrder(ctx, sess.Token, ports.CreateOrderInput{
		RestaurantID:    form.RestaurantID,
		DeliveryAddress: form.DeliveryAddress,
		Items:           lines,
	})
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Failed to place the order"))
		return c.Redirect(http.StatusSeeOther, "/restaurants/"+form.RestaurantID)
	}

	h.log.Info().Str("order_id", order.OrderID).Int("lines", len(lines)).Msg("order placed")
	h.alerts.Success(ctx, sid, "Order #"+order.OrderID+" created successfully!")
	return c.Redirect(http.StatusSeeOther, "/orders")
}

// History renders the visitor's own orders.
func (h *OrderHandler) History(c echo.Context) error {
	page := newPage(c, "My orders", h.alerts)

	orders, err := h.api.ListOrders(c.Request().Context(), currentSession(c).Token)
	if err != nil {
		h.log.Error().Err(err).Msg("order history fetch failed")
		return render(c, "orders.html", historyPage{
			Page: page.WithFlash(domain.FlashDanger, errorMessage(err, "Failed to load your orders")),
		})
	}

	return render(c, "orders.html", historyPage{Page: page, Orders: orders})
}

// collectOrderLines walks the posted form for quantity_<item id> fields and
// keeps the ones with a positive integer value.
func collectOrderLines(c echo.Context) []ports.OrderLine {
	values, err := c.FormParams()
	if err != nil {
		return nil
	}

	var lines []ports.OrderLine
	for name, vals := range values {
		if !strings.HasPrefix(name, quantityPrefix) || len(vals) == 0 {
			continue
		}
		itemID := strings.TrimPrefix(name, quantityPrefix)
		if itemID == "" {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(vals[0]))
		if err != nil || qty <= 0 {
			continue
		}
		lines = append(lines, ports.OrderLine{ItemID: itemID, Quantity: qty})
	}
	return lines
}
