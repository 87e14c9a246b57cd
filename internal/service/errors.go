package service

import (
	"errors"
)

var (
	// ErrUnauthorized means the caller does not own the referenced entity.
	ErrUnauthorized = errors.New("not authorized for this resource")

	// ErrPremiumRequired gates premium-only features (extra pillars beyond
	// the free tier, legendary companions, analytics, bulk import). Surfaced
	// to clients as an upgrade prompt, never retried.
	ErrPremiumRequired = errors.New("premium subscription required")

	// ErrPillarLimitReached is the free-tier pillar cardinality limit.
	ErrPillarLimitReached = errors.New("free plan pillar limit reached")
)
