package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kate00gas/restaurant-delivery/internal/core/service"
)

// Context keys under which the session middleware stores the visitor state.
const (
	ContextSessionID = "session_id"
	ContextSession   = "session"
)

// Session assigns every visitor an opaque session id cookie and loads the
// persisted session into the request context. The cookie carries only the
// id; token, username and role live server-side.
func Session(sessions *service.Sessions, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				sid = cookie.Value
			}
			if sid == "" {
				sid = newSessionID()
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextSessionID, sid)
			c.Set(ContextSession, sessions.Load(c.Request().Context(), sid))
			return next(c)
		}
	}
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: time-based id, still unique enough for a session key
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
