package repository

import (
	"context"
	"database/sql"
	"errors"

	"clinicdesk/internal/domain"
)

const customerColumns = `id, created_at, updated_at, name, phone, email, address, notes`

type CustomerRepository struct {
	db ExtHandle
}

func NewCustomerRepository(db ExtHandle) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (name, phone, email, address, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	return r.db.GetContext(ctx, customer, query,
		customer.Name, customer.Phone, customer.Email, customer.Address, customer.Notes,
	)
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id`

	customers := []*domain.Customer{}
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer := &domain.Customer{}
	err := r.db.GetContext(ctx, customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrCustomerNotFound, "customer", id)
		}
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`

	exists := false
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	var u updateSet
	setOptional(&u, "name", patch.Name)
	setOptional(&u, "phone", patch.Phone)
	setNullable(&u, "email", patch.Email)
	setNullable(&u, "address", patch.Address)
	setNullable(&u, "notes", patch.Notes)
	query, args := u.query("customers", id, customerColumns)

	customer := &domain.Customer{}
	err := r.db.GetContext(ctx, customer, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrCustomerNotFound, "customer", id)
		}
		return nil, err
	}
	return customer, nil
}

// Delete reports whether a row was removed. Appointments of the customer are left in place.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "customers", id)
}
