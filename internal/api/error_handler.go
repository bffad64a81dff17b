package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

// errorPage feeds the standalone error template.
type errorPage struct {
	Code    int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the visitor.
//   - Renders the error page, falling back to plain text when even that fails.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if renderErr := c.Render(code, "error.html", errorPage{Code: code, Message: msg}); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		return http.StatusUnauthorized, "Please log in to continue."
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, "Access denied."
	}

	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		log.Error().
			Int("api_status", remote.StatusCode).
			Str("detail", remote.Detail).
			Str("path", c.Path()).
			Msg("ordering API rejected the request")
		return http.StatusBadGateway, "The ordering service rejected the request."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong."
}
