package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

// Sessions owns the visitor session lifecycle: load on each request,
// establish on login, clear on logout.
type Sessions struct {
	store ports.SessionStore
	log   zerolog.Logger
}

func NewSessions(store ports.SessionStore, log zerolog.Logger) *Sessions {
	return &Sessions{store: store, log: log}
}

// Load returns the persisted session for sid, or the anonymous session when
// none exists. A partially written session (token without role, or any other
// torn state) is purged and reported rather than returned: a view must never
// see a different role than was stored.
func (s *Sessions) Load(ctx context.Context, sid string) domain.Session {
	sess, err := s.store.Load(ctx, sid)
	if err != nil {
		s.log.Warn().Err(err).Msg("session load failed, treating visitor as anonymous")
		return domain.Anonymous
	}

	if sess.IsPartial() {
		s.log.Error().Str("sid", sid).Msg("purging partially written session")
		if err := s.store.Delete(ctx, sid); err != nil {
			s.log.Warn().Err(err).Msg("failed to purge partial session")
		}
		return domain.Anonymous
	}

	if sess.IsAuthenticated() && !sess.IsKnownRole() {
		// Kept as-is: the gate denies it everywhere, but the anomaly is worth a trace.
		s.log.Warn().Str("role", sess.Role).Str("username", sess.Username).Msg("session carries unknown role")
	}

	return sess
}

// Establish decodes the role claim from the token and persists the session.
// The decode is unverified: the claim is an advisory hint for view routing
// and the ordering API remains the enforcement point. Establish fails closed:
// when the role cannot be decoded no session is written and the visitor
// stays anonymous, rather than silently defaulting to a role.
func (s *Sessions) Establish(ctx context.Context, sid, token, username string) (domain.Session, error) {
	role, err := decodeRoleClaim(token)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("refusing to establish session")
		return domain.Anonymous, fmt.Errorf("%w: %w", domain.ErrRoleUndecodable, err)
	}

	sess := domain.Session{Token: token, Username: username, Role: role}
	if err := s.store.Save(ctx, sid, sess); err != nil {
		return domain.Anonymous, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info().Str("username", username).Str("role", role).Msg("session established")
	return sess, nil
}

// Clear removes the stored session. Queued banners live under their own key
// and survive, so a logout confirmation can still reach the next page.
func (s *Sessions) Clear(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, sid)
}

// decodeRoleClaim extracts the "role" claim from the token's payload segment
// without verifying the signature.
func decodeRoleClaim(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", err
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token carries no role claim")
	}
	return role, nil
}
