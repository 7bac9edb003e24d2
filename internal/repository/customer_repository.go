package repository

//go:generate mockgen -source=customer_repository.go -destination=mocks/customer_repository_mock.go -package=mocks CustomerRepositoryInterface

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/unclebandit/customer-records/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	FindByRef(ctx context.Context, ref string) (*model.Customer, error)
	Upsert(ctx context.Context, c *model.Customer) error
}

// CustomerRepository is the concrete implementation. The SQL is shared by the
// postgres and sqlite3 drivers.
type CustomerRepository struct {
	DB *sql.DB
}

// FindByRef fetches a customer by reference. It returns (nil, nil) when no row matches.
func (r *CustomerRepository) FindByRef(ctx context.Context, ref string) (*model.Customer, error) {
	query := `
		SELECT customer_ref, customer_name, address_line1, address_line2, town, county, country, postcode
		FROM customers
		WHERE customer_ref = $1
	`
	row := r.DB.QueryRowContext(ctx, query, ref)

	var c model.Customer
	if err := row.Scan(&c.CustomerRef, &c.CustomerName, &c.AddressLine1, &c.AddressLine2,
		&c.Town, &c.County, &c.Country, &c.Postcode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, fmt.Errorf("find customer: %w", describe(err))
	}
	return &c, nil
}

// Upsert inserts the customer or overwrites every attribute of the existing row with the same reference.
func (r *CustomerRepository) Upsert(ctx context.Context, c *model.Customer) error {
	if c == nil {
		return errors.New("customer is required")
	}
	query := `
		INSERT INTO customers (customer_ref, customer_name, address_line1, address_line2, town, county, country, postcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (customer_ref) DO UPDATE SET
			customer_name = excluded.customer_name,
			address_line1 = excluded.address_line1,
			address_line2 = excluded.address_line2,
			town          = excluded.town,
			county        = excluded.county,
			country       = excluded.country,
			postcode      = excluded.postcode
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.CustomerRef, c.CustomerName, c.AddressLine1, c.AddressLine2,
		c.Town, c.County, c.Country, c.Postcode,
	)
	if err != nil {
		return fmt.Errorf("upsert customer: %w", describe(err))
	}
	return nil
}

// describe prefixes postgres errors with their condition name so logs say what the server rejected.
func describe(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w", pqErr.Code.Name(), err)
	}
	return err
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
