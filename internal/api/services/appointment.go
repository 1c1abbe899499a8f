package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/logging"
	"clinicdesk/internal/repository"
)

const entityAppointment = "appointment"

type AppointmentStore interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	FindAll(ctx context.Context) ([]*domain.Appointment, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
	FindByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, patch domain.AppointmentPatch) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CustomerLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CreateAppointmentInput.Status defaults to scheduled and ReminderSent to false.
type CreateAppointmentInput struct {
	CustomerID      int64     `valid:"-"`
	AppointmentDate time.Time `valid:"-"`
	AppointmentTime string    `valid:"required"`
	Status          domain.AppointmentStatus
	Notes           *string
	ReminderSent    *bool
}

type AppointmentService struct {
	repo      AppointmentStore
	customers CustomerLookup
	publisher Publisher
	logger    *slog.Logger
}

func NewAppointmentService(repo AppointmentStore, customers CustomerLookup, publisher Publisher, logger *slog.Logger) *AppointmentService {
	return &AppointmentService{
		repo:      repo,
		customers: customers,
		publisher: publisherOrNoop(publisher),
		logger:    logging.OrDefault(logger),
	}
}

// Create refuses to book for a customer id that does not exist at this moment.
// Later deletion of the customer is not prevented.
func (s *AppointmentService) Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error) {
	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	exists, err := s.customers.Exists(ctx, input.CustomerID)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityAppointment, "create", 0, err)
	}
	if !exists {
		return nil, repository.NotFound(repository.ErrCustomerNotFound, "customer", input.CustomerID)
	}

	appointment := &domain.Appointment{
		CustomerID:      input.CustomerID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Status:          domain.AppointmentStatusScheduled,
		Notes:           input.Notes,
	}
	if input.Status != "" {
		appointment.Status = input.Status
	}
	if input.ReminderSent != nil {
		appointment.ReminderSent = *input.ReminderSent
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, storeFailure(ctx, s.logger, entityAppointment, "create", 0, err)
	}

	logMutation(ctx, s.logger, entityAppointment, "create", appointment.ID)
	s.publisher.Publish(eventType(entityAppointment, EventCreated), appointment)
	return appointment, nil
}

// List returns the newest appointments first.
func (s *AppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	appointments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityAppointment, "list", 0, err)
	}
	return appointments, nil
}

// ListByCustomer is empty, not an error, for unknown customers.
func (s *AppointmentService) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	appointments, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityAppointment, "list_by_customer", customerID, err)
	}
	return appointments, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, nil
		}
		return nil, storeFailure(ctx, s.logger, entityAppointment, "get", id, err)
	}
	return appointment, nil
}

// Update accepts any status change. A new customer_id is not checked.
func (s *AppointmentService) Update(ctx context.Context, id int64, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	if err := s.validatePatch(patch); err != nil {
		return nil, err
	}

	appointment, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityAppointment, "update", id, err)
	}

	logMutation(ctx, s.logger, entityAppointment, "update", id)
	s.publisher.Publish(eventType(entityAppointment, EventUpdated), appointment)
	return appointment, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storeFailure(ctx, s.logger, entityAppointment, "delete", id, err)
	}

	if deleted {
		logMutation(ctx, s.logger, entityAppointment, "delete", id)
		s.publisher.Publish(eventType(entityAppointment, EventDeleted), DeletedEvent{ID: id})
	}
	return deleted, nil
}

func (s *AppointmentService) validateCreateInput(input CreateAppointmentInput) error {
	type appointmentValidator CreateAppointmentInput

	if _, err := govalidator.ValidateStruct(appointmentValidator(input)); err != nil {
		return ErrInvalidInput
	}
	if input.AppointmentDate.IsZero() {
		return ErrInvalidInput
	}
	if input.Status != "" && !input.Status.Valid() {
		return ErrInvalidInput
	}
	return nil
}

func (s *AppointmentService) validatePatch(patch domain.AppointmentPatch) error {
	if date, ok := patch.AppointmentDate.Get(); ok && date.IsZero() {
		return ErrInvalidInput
	}
	if t, ok := patch.AppointmentTime.Get(); ok && t == "" {
		return ErrInvalidInput
	}
	if status, ok := patch.Status.Get(); ok && !status.Valid() {
		return ErrInvalidInput
	}
	return nil
}
