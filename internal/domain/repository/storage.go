// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// Storage is the generic persistence capability shared by the catalog
// entities. Insert, Update, and Delete return the affected entity and
// fail with ErrNilEntity when given nil. FetchByID reports absence with
// the entity's not-found error; FetchAll returns an empty slice, never
// nil, when the collection is empty.
type Storage[E any] interface {
	Insert(ctx context.Context, ent *E) (*E, error)
	Update(ctx context.Context, ent *E) (*E, error)
	Delete(ctx context.Context, ent *E) (*E, error)
	FetchAll(ctx context.Context) ([]*E, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*E, error)
}
