package services

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultInvitationTTL = 7 * 24 * time.Hour
)

type serviceOptions struct {
	now           func() time.Time
	location      *time.Location
	invitationTTL time.Duration
	bcryptCost    int
	logger        *slog.Logger
}

// Option tunes a service. Unused options are ignored by services that
// do not need them.
type Option func(*serviceOptions)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLocation sets the time zone month and year boundaries are computed in.
func WithLocation(loc *time.Location) Option {
	return func(o *serviceOptions) {
		if loc != nil {
			o.location = loc
		}
	}
}

func WithInvitationTTL(ttl time.Duration) Option {
	return func(o *serviceOptions) {
		if ttl > 0 {
			o.invitationTTL = ttl
		}
	}
}

func WithBCryptCost(cost int) Option {
	return func(o *serviceOptions) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			o.bcryptCost = cost
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) serviceOptions {
	o := serviceOptions{
		now:           time.Now,
		location:      time.UTC,
		invitationTTL: defaultInvitationTTL,
		bcryptCost:    bcrypt.DefaultCost,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
