package profile_refresh

import (
	"context"
	"time"
)

// ProfileRefresh reloads the staff profile so approval and ward changes
// reach the dispatch subscription without a restart.
type ProfileRefresh struct {
	service  Service
	interval time.Duration
}

func New(service Service, interval time.Duration) *ProfileRefresh {
	return &ProfileRefresh{
		service:  service,
		interval: interval,
	}
}

func (p *ProfileRefresh) TTL() time.Duration {
	return p.interval
}

func (p *ProfileRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	return p.service.Refresh(ctxWithTimeout)
}

func (p *ProfileRefresh) Info() string {
	return "profile refresh"
}
