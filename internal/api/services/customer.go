package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/asaskevich/govalidator"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/logging"
	"clinicdesk/internal/repository"
)

const entityCustomer = "customer"

type CustomerStore interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindAll(ctx context.Context) ([]*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CreateCustomerInput struct {
	Name    string `valid:"required"`
	Phone   string `valid:"required"`
	Email   *string
	Address *string
	Notes   *string
}

type CustomerService struct {
	repo      CustomerStore
	publisher Publisher
	logger    *slog.Logger
}

func NewCustomerService(repo CustomerStore, publisher Publisher, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:      repo,
		publisher: publisherOrNoop(publisher),
		logger:    logging.OrDefault(logger),
	}
}

func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, storeFailure(ctx, s.logger, entityCustomer, "create", 0, err)
	}

	logMutation(ctx, s.logger, entityCustomer, "create", customer.ID)
	s.publisher.Publish(eventType(entityCustomer, EventCreated), customer)
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityCustomer, "list", 0, err)
	}
	return customers, nil
}

// GetByID returns nil without an error when no customer has the id.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, nil
		}
		return nil, storeFailure(ctx, s.logger, entityCustomer, "get", id, err)
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	if err := s.validatePatch(patch); err != nil {
		return nil, err
	}

	customer, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityCustomer, "update", id, err)
	}

	logMutation(ctx, s.logger, entityCustomer, "update", id)
	s.publisher.Publish(eventType(entityCustomer, EventUpdated), customer)
	return customer, nil
}

// Delete leaves the customer's appointments in place.
func (s *CustomerService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storeFailure(ctx, s.logger, entityCustomer, "delete", id, err)
	}

	if deleted {
		logMutation(ctx, s.logger, entityCustomer, "delete", id)
		s.publisher.Publish(eventType(entityCustomer, EventDeleted), DeletedEvent{ID: id})
	}
	return deleted, nil
}

func (s *CustomerService) validateCreateInput(input CreateCustomerInput) error {
	type customerValidator CreateCustomerInput

	if _, err := govalidator.ValidateStruct(customerValidator(input)); err != nil {
		return ErrInvalidInput
	}
	if input.Email != nil && !govalidator.IsEmail(*input.Email) {
		return ErrInvalidInput
	}
	return nil
}

func (s *CustomerService) validatePatch(patch domain.CustomerPatch) error {
	if name, ok := patch.Name.Get(); ok && name == "" {
		return ErrInvalidInput
	}
	if phone, ok := patch.Phone.Get(); ok && phone == "" {
		return ErrInvalidInput
	}
	if patch.Email.Value != nil && !govalidator.IsEmail(*patch.Email.Value) {
		return ErrInvalidInput
	}
	return nil
}
