package domain

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
	AppointmentStatusRescheduled,
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// Appointment.CustomerID is checked only when the appointment is created;
// deleting the customer later leaves the reference dangling.
type Appointment struct {
	Model
	CustomerID      int64             `json:"customer_id" db:"customer_id"`
	AppointmentDate time.Time         `json:"appointment_date" db:"appointment_date"`
	AppointmentTime string            `json:"appointment_time" db:"appointment_time"`
	Status          AppointmentStatus `json:"status" db:"status"`
	Notes           *string           `json:"notes" db:"notes"`
	ReminderSent    bool              `json:"reminder_sent" db:"reminder_sent"`
}

// AppointmentPatch places no restriction on status changes.
type AppointmentPatch struct {
	CustomerID      Optional[int64]
	AppointmentDate Optional[time.Time]
	AppointmentTime Optional[string]
	Status          Optional[AppointmentStatus]
	Notes           Nullable[string]
	ReminderSent    Optional[bool]
}
