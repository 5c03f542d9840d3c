package cli

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/pennywise/pennywise/internal/models"
)

// watchSummary re-renders the summary on a fixed interval until the
// context is cancelled. Only the reference time changes between renders;
// watch mode never mutates persisted state.
func (a *App) watchSummary(ctx context.Context, user *models.User) error {
	ticker := time.NewTicker(a.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fmt.Fprintln(a.stdout)
			a.renderSummary(user)
		}
	}
}
