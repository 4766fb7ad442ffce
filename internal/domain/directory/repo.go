package directory

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a doctor does not exist.
var ErrNotFound = errors.New("doctor not found")

// Repository is the persistence interface for the doctor catalog.
type Repository interface {
	// List returns doctors matching the search term against name or
	// specialization, or all doctors when search is empty.
	List(ctx context.Context, search string, limit, offset int) ([]*Doctor, int, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Create(ctx context.Context, d *Doctor) error
	Count(ctx context.Context) (int, error)
}
