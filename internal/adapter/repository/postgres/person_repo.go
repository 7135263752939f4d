package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finrecords/internal/domain"
)

// PersonRepository implements usecase.PersonRepository.
type PersonRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewPersonRepository creates a new PersonRepository.
func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// ExistsByNaturalKey reports whether a person with the exact natural key is
// already persisted.
func (r *PersonRepository) ExistsByNaturalKey(ctx context.Context, firstName, surname string, dateOfBirth time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM people
			WHERE first_name = $1 AND surname = $2 AND date_of_birth = $3
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, firstName, surname, timeToPgDate(dateOfBirth)).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// FindByNaturalKey returns the matching person, or (nil, nil) when absent.
func (r *PersonRepository) FindByNaturalKey(ctx context.Context, firstName, surname string, dateOfBirth time.Time) (*domain.Person, error) {
	query := `
		SELECT id, first_name, surname, date_of_birth, address, postcode
		FROM people
		WHERE first_name = $1 AND surname = $2 AND date_of_birth = $3
	`

	var (
		person domain.Person
		dob    pgtype.Date
	)
	err := r.pool.QueryRow(ctx, query, firstName, surname, timeToPgDate(dateOfBirth)).Scan(
		&person.ID,
		&person.FirstName,
		&person.Surname,
		&dob,
		&person.Address,
		&person.Postcode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	person.DateOfBirth = dob.Time
	return &person, nil
}

// CreateBatch inserts all people in a single bulk write using COPY.
func (r *PersonRepository) CreateBatch(ctx context.Context, people []*domain.Person) error {
	if len(people) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(people))
	for _, p := range people {
		rows = append(rows, []any{
			p.FirstName,
			p.Surname,
			timeToPgDate(p.DateOfBirth),
			p.Address,
			p.Postcode,
		})
	}

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.CopyFrom(ctx,
			pgx.Identifier{"people"},
			[]string{"first_name", "surname", "date_of_birth", "address", "postcode"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}
