package repository

import (
	"context"

	"pos/internal/domain/checkout"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a table has no checkout session.
var ErrSessionNotFound = errors.New("checkout session not found")

// SessionRepository stores the in-flight checkout session of each table.
// Implementations must return copies; callers own what they load.
type SessionRepository interface {
	// Get returns the session of a table, or ErrSessionNotFound.
	Get(ctx context.Context, tableNumber int) (checkout.Session, error)

	// Save stores the session, replacing any previous one for the table.
	Save(ctx context.Context, session checkout.Session) error

	// Delete removes the session of a table. Deleting a missing session is a no-op.
	Delete(ctx context.Context, tableNumber int) error

	// List returns every stored session.
	List(ctx context.Context) ([]checkout.Session, error)
}
