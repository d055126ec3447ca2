package mock

import (
	"context"

	"github.com/eatulrajput/campusgpt"
)

var _ campusgpt.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of campusgpt.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, rawURL string) bool
}

func (p *RobotsPolicy) Allowed(ctx context.Context, rawURL string) bool {
	return p.AllowedFn(ctx, rawURL)
}
