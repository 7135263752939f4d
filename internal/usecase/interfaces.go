package usecase

import (
	"context"
	"time"

	"github.com/iho/finrecords/internal/domain"
)

// PersonRepository defines data access for people.
type PersonRepository interface {
	// ExistsByNaturalKey reports whether a person with the exact natural key
	// (trimmed, case-sensitive names plus date-only birth date) is persisted.
	ExistsByNaturalKey(ctx context.Context, firstName, surname string, dateOfBirth time.Time) (bool, error)
	// FindByNaturalKey returns the matching person, or (nil, nil) when no
	// person matches.
	FindByNaturalKey(ctx context.Context, firstName, surname string, dateOfBirth time.Time) (*domain.Person, error)
	// CreateBatch inserts all staged people in a single bulk write.
	CreateBatch(ctx context.Context, people []*domain.Person) error
}

// FinancialRecordRepository defines data access for financial records.
type FinancialRecordRepository interface {
	// CreateBatch inserts all staged records in a single bulk write.
	CreateBatch(ctx context.Context, records []*domain.FinancialRecord) error
	// ListOpenByPerson returns the person's open records with a transaction
	// date not after asOf, newest first.
	ListOpenByPerson(ctx context.Context, firstName, surname string, asOf time.Time) ([]*domain.FinancialRecord, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
