package repository

import (
	"context"

	"flora/internal/domain/entity"
)

// BadgeLookup is the by-name read capability for badges. The badge name
// is the business key used when granting.
type BadgeLookup interface {
	// FetchBadgeByName returns the badge with the given name, or
	// domain errors.ErrBadgeNotFound when it does not exist.
	FetchBadgeByName(ctx context.Context, name string) (*entity.Badge, error)
}
