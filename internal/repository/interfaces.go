package repository

import (
	"context"

	"github.com/katalystvc/lead-capture-service/internal/domain"
)

// LeadRepository defines the interface for lead storage operations.
// Implementations assign the record identifier and submission time on
// insert; callers never supply either.
type LeadRepository interface {
	// Init initializes the backing store (creates the table or workbook
	// if it doesn't exist). Safe to call repeatedly; existing data is
	// never truncated or altered.
	Init(ctx context.Context) error

	// Insert durably appends a lead, assigning the next identifier and
	// stamping the submission time on the passed record. The assigned
	// identifier is strictly greater than any previously assigned one.
	Insert(ctx context.Context, lead *domain.Lead) (int64, error)

	// ListAll returns every stored lead. The sqlite backend orders by
	// submission time descending; the excel backend returns insertion
	// order.
	ListAll(ctx context.Context) ([]domain.Lead, error)

	// Count returns the total number of stored leads.
	Count(ctx context.Context) (int64, error)

	// Exists reports whether the backing store file has been created.
	Exists() bool

	// Close closes the repository and releases resources
	Close() error
}
