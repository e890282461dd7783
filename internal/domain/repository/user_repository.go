// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"beerhaus/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user document does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations on the users collection.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves the user document keyed by the identity provider's user id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create writes the initial user document. Any existing document under the
	// same id is replaced.
	Create(ctx context.Context, user *entity.User) error

	// Merge writes the non-nil fields of patch into the document, creating it
	// when missing. Fields absent from the patch keep their stored values.
	Merge(ctx context.Context, id string, patch *entity.UserPatch) error

	// List returns every user document in store order.
	List(ctx context.Context) ([]*entity.User, error)
}
