package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

// Page is the data every rendered page shares: the navbar state and the
// drained banner queue.
type Page struct {
	Title   string
	Session domain.Session
	Flashes []domain.Flash
}

// newPage drains the visitor's queued banners into the page about to render.
func newPage(c echo.Context, title string, alerts *alert.Alerts) Page {
	return Page{
		Title:   title,
		Session: currentSession(c),
		Flashes: alerts.Drain(c.Request().Context(), sessionID(c)),
	}
}

// WithFlash appends a banner produced while rendering this very page (as
// opposed to one queued for a later request).
func (p Page) WithFlash(level, message string) Page {
	p.Flashes = append(p.Flashes, domain.Flash{Level: level, Message: message})
	return p
}
