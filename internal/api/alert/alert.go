// Package alert queues transient banners for the visitor's next rendered
// page. Banner delivery is best-effort: a failing store degrades the banner,
// never the view.
package alert

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

type Alerts struct {
	store ports.FlashStore
	log   zerolog.Logger
}

func New(store ports.FlashStore, log zerolog.Logger) *Alerts {
	return &Alerts{store: store, log: log}
}

func (a *Alerts) Success(ctx context.Context, sid, message string) {
	a.push(ctx, sid, domain.Flash{Level: domain.FlashSuccess, Message: message})
}

func (a *Alerts) Warning(ctx context.Context, sid, message string) {
	a.push(ctx, sid, domain.Flash{Level: domain.FlashWarning, Message: message})
}

func (a *Alerts) Danger(ctx context.Context, sid, message string) {
	a.push(ctx, sid, domain.Flash{Level: domain.FlashDanger, Message: message})
}

// Drain returns and clears the queued banners for sid.
func (a *Alerts) Drain(ctx context.Context, sid string) []domain.Flash {
	flashes, err := a.store.Drain(ctx, sid)
	if err != nil {
		a.log.Warn().Err(err).Msg("failed to drain banners")
		return nil
	}
	return flashes
}

func (a *Alerts) push(ctx context.Context, sid string, f domain.Flash) {
	if err := a.store.Push(ctx, sid, f); err != nil {
		a.log.Warn().Err(err).Str("message", f.Message).Msg("failed to queue banner")
	}
}
