package service

import (
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

// Gate decides whether a session may enter a view with the given access
// requirement. Role values outside the known vocabulary are denied every
// protected view and logged, never silently granted.
type Gate struct {
	log zerolog.Logger
}

func NewGate(log zerolog.Logger) *Gate {
	return &Gate{log: log}
}

// Allow returns nil when the session satisfies the requirement,
// domain.ErrLoginRequired when authentication is missing, and
// domain.ErrAccessDenied otherwise.
func (g *Gate) Allow(sess domain.Session, required domain.Access) error {
	switch required {
	case domain.AccessAnonymous:
		return nil

	case domain.AccessUser:
		if !sess.IsAuthenticated() {
			return domain.ErrLoginRequired
		}
		if sess.Role != domain.RoleUser {
			g.logDenied(sess, required)
			return domain.ErrAccessDenied
		}
		return nil

	case domain.AccessAdmin:
		if sess.Role != domain.RoleAdmin {
			g.logDenied(sess, required)
			return domain.ErrAccessDenied
		}
		return nil

	default:
		g.log.Error().Str("required", string(required)).Msg("unknown access requirement, failing closed")
		return domain.ErrAccessDenied
	}
}

func (g *Gate) logDenied(sess domain.Session, required domain.Access) {
	evt := g.log.Warn().Str("required", string(required)).Str("role", sess.Role)
	if sess.IsAuthenticated() && !sess.IsKnownRole() {
		evt = evt.Bool("unknown_role", true)
	}
	evt.Msg("access denied")
}
