package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/api/metrics"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/service"
)

// RequireRole guards a route with the authorization gate. A refused request
// never reaches the view: the visitor is redirected with a banner, so no
// partial render can occur.
func RequireRole(gate *service.Gate, alerts *alert.Alerts, required domain.Access) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(ContextSession).(domain.Session)
			err := gate.Allow(sess, required)
			if err == nil {
				return next(c)
			}

			metrics.AccessDeniedTotal.WithLabelValues(c.Path(), sess.Role).Inc()

			sid, _ := c.Get(ContextSessionID).(string)
			ctx := c.Request().Context()
			if errors.Is(err, domain.ErrLoginRequired) {
				alerts.Warning(ctx, sid, "Please log in to continue.")
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			alerts.Danger(ctx, sid, "Access denied.")
			return c.Redirect(http.StatusSeeOther, "/")
		}
	}
}
