// Package users provides the user directory: lookup, existence checks,
// creation, and the sorted paginated listing consumed by the users query.
package users

import (
	"context"

	"github.com/dmitrijs2005/userbook/internal/server/models"
)

// Repository is the storage contract for user records. Lookups that match no
// row return common.ErrNotFound.
type Repository interface {
	// Create persists a new user and returns it with the assigned id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByID returns the user with the given id, addresses included.
	FindByID(ctx context.Context, id int64) (*models.User, error)

	// FindByEmail returns the user with the given e-mail.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByEmail reports whether a user with the e-mail already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListSortedByName returns one page of users in ascending name order
	// (ties broken by id, so repeated calls against unchanged data return
	// identical ordering) together with the total number of users.
	ListSortedByName(ctx context.Context, skip, take int) ([]models.User, int64, error)
}
