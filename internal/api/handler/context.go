package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apimetrics "github.com/kate00gas/restaurant-delivery/internal/api/metrics"
	"github.com/kate00gas/restaurant-delivery/internal/api/middleware"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

// currentSession returns the session placed in context by the session
// middleware. Absence means the middleware did not run; the visitor is then
// treated as anonymous, which only ever narrows what they can see.
func currentSession(c echo.Context) domain.Session {
	sess, _ := c.Get(middleware.ContextSession).(domain.Session)
	return sess
}

func sessionID(c echo.Context) string {
	sid, _ := c.Get(middleware.ContextSessionID).(string)
	return sid
}

// render draws a full page into the content region and counts it.
func render(c echo.Context, name string, data any) error {
	apimetrics.ViewsRenderedTotal.WithLabelValues(name).Inc()
	return c.Render(http.StatusOK, name, data)
}

// errorMessage maps a failed API call to a banner message: the API's own
// detail when it sent one, the fallback for detail-less rejections, and the
// fallback with the transport error appended when the request never made it.
func errorMessage(err error, fallback string) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		if remote.Detail != "" {
			return remote.Detail
		}
		return fallback
	}
	return fallback + ": " + err.Error()
}
