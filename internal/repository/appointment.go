package repository

import (
	"context"
	"database/sql"
	"errors"

	"clinicdesk/internal/domain"
)

const appointmentColumns = `id, created_at, updated_at, customer_id, appointment_date, appointment_time,
	status, notes, reminder_sent`

type AppointmentRepository struct {
	db ExtHandle
}

func NewAppointmentRepository(db ExtHandle) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	status := appointment.Status
	if status == "" {
		status = domain.AppointmentStatusScheduled
	}

	query := `
		INSERT INTO appointments (customer_id, appointment_date, appointment_time, status, notes, reminder_sent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + appointmentColumns

	// scanned back: Postgres keeps appointment_date in UTC at microsecond precision
	return r.db.GetContext(ctx, appointment, query,
		appointment.CustomerID, appointment.AppointmentDate, appointment.AppointmentTime,
		status, appointment.Notes, appointment.ReminderSent,
	)
}

func (r *AppointmentRepository) FindAll(ctx context.Context) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY created_at DESC, id DESC`

	appointments := []*domain.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC
	`

	appointments := []*domain.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, customerID); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appointment := &domain.Appointment{}
	err := r.db.GetContext(ctx, appointment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrAppointmentNotFound, "appointment", id)
		}
		return nil, err
	}
	return appointment, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id int64, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	var u updateSet
	setOptional(&u, "customer_id", patch.CustomerID)
	setOptional(&u, "appointment_date", patch.AppointmentDate)
	setOptional(&u, "appointment_time", patch.AppointmentTime)
	setOptional(&u, "status", patch.Status)
	setNullable(&u, "notes", patch.Notes)
	setOptional(&u, "reminder_sent", patch.ReminderSent)
	query, args := u.query("appointments", id, appointmentColumns)

	appointment := &domain.Appointment{}
	err := r.db.GetContext(ctx, appointment, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrAppointmentNotFound, "appointment", id)
		}
		return nil, err
	}
	return appointment, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "appointments", id)
}
