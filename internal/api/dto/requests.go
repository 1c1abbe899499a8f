package dto

import (
	"time"

	"clinicdesk/internal/api/services"
	"clinicdesk/internal/domain"
)

// IDRequest is accepted as ?id= on GET or {"id": N} on POST.
// Any integer is accepted; an id with no row answers null or false.
type IDRequest struct {
	ID int64 `json:"id" query:"id" example:"1"`
}

type CustomerIDRequest struct {
	CustomerID int64 `json:"customer_id" query:"customer_id" example:"1"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required" example:"John Doe"`
	Phone   string  `json:"phone" validate:"required" example:"+1234567890"`
	Email   *string `json:"email" validate:"omitnil,email" example:"john@example.com"`
	Address *string `json:"address" example:"123 Main St"`
	Notes   *string `json:"notes"`
}

func (r CreateCustomerRequest) Input() services.CreateCustomerInput {
	return services.CreateCustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

// UpdateCustomerRequest changes only the keys present in the body.
// A null email, address or notes clears the column.
type UpdateCustomerRequest struct {
	ID      *int64                  `json:"id" validate:"required"`
	Name    domain.Optional[string] `json:"name" validate:"omitnil,min=1" swaggertype:"string"`
	Phone   domain.Optional[string] `json:"phone" validate:"omitnil,min=1" swaggertype:"string"`
	Email   domain.Nullable[string] `json:"email" validate:"omitnil,email" swaggertype:"string"`
	Address domain.Nullable[string] `json:"address" swaggertype:"string"`
	Notes   domain.Nullable[string] `json:"notes" swaggertype:"string"`
}

func (r UpdateCustomerRequest) Patch() domain.CustomerPatch {
	return domain.CustomerPatch{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

type CreateFAQRequest struct {
	Question string  `json:"question" validate:"required" example:"Do you accept walk-ins?"`
	Answer   string  `json:"answer" validate:"required" example:"Yes, on weekday mornings."`
	Category *string `json:"category" example:"visits"`
	IsActive *bool   `json:"is_active" example:"true"`
}

func (r CreateFAQRequest) Input() services.CreateFAQInput {
	return services.CreateFAQInput{
		Question: r.Question,
		Answer:   r.Answer,
		Category: r.Category,
		IsActive: r.IsActive,
	}
}

type UpdateFAQRequest struct {
	ID       *int64                  `json:"id" validate:"required"`
	Question domain.Optional[string] `json:"question" validate:"omitnil,min=1" swaggertype:"string"`
	Answer   domain.Optional[string] `json:"answer" validate:"omitnil,min=1" swaggertype:"string"`
	Category domain.Nullable[string] `json:"category" swaggertype:"string"`
	IsActive domain.Optional[bool]   `json:"is_active" swaggertype:"boolean"`
}

func (r UpdateFAQRequest) Patch() domain.FAQPatch {
	return domain.FAQPatch{
		Question: r.Question,
		Answer:   r.Answer,
		Category: r.Category,
		IsActive: r.IsActive,
	}
}

type CreateMessageTemplateRequest struct {
	Name         string              `json:"name" validate:"required" example:"Appointment confirmation"`
	Content      string              `json:"content" validate:"required" example:"Hello {customer_name}, see you on {appointment_date}."`
	TemplateType domain.TemplateType `json:"template_type" validate:"required,oneof=confirmation reminder follow_up general" example:"confirmation"`
	IsActive     *bool               `json:"is_active" example:"true"`
}

func (r CreateMessageTemplateRequest) Input() services.CreateMessageTemplateInput {
	return services.CreateMessageTemplateInput{
		Name:         r.Name,
		Content:      r.Content,
		TemplateType: r.TemplateType,
		IsActive:     r.IsActive,
	}
}

type UpdateMessageTemplateRequest struct {
	ID           *int64                               `json:"id" validate:"required"`
	Name         domain.Optional[string]              `json:"name" validate:"omitnil,min=1" swaggertype:"string"`
	Content      domain.Optional[string]              `json:"content" validate:"omitnil,min=1" swaggertype:"string"`
	TemplateType domain.Optional[domain.TemplateType] `json:"template_type" validate:"omitnil,oneof=confirmation reminder follow_up general" swaggertype:"string"`
	IsActive     domain.Optional[bool]                `json:"is_active" swaggertype:"boolean"`
}

func (r UpdateMessageTemplateRequest) Patch() domain.MessageTemplatePatch {
	return domain.MessageTemplatePatch{
		Name:         r.Name,
		Content:      r.Content,
		TemplateType: r.TemplateType,
		IsActive:     r.IsActive,
	}
}

type CreateAppointmentRequest struct {
	CustomerID      *int64                   `json:"customer_id" validate:"required" example:"1"`
	AppointmentDate AppointmentDate          `json:"appointment_date" validate:"required" swaggertype:"string" example:"2024-01-15"`
	AppointmentTime string                   `json:"appointment_time" validate:"required" example:"10:00"`
	Status          domain.AppointmentStatus `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled rescheduled" example:"scheduled"`
	Notes           *string                  `json:"notes"`
	ReminderSent    *bool                    `json:"reminder_sent" example:"false"`
}

func (r CreateAppointmentRequest) Input() services.CreateAppointmentInput {
	return services.CreateAppointmentInput{
		CustomerID:      *r.CustomerID,
		AppointmentDate: r.AppointmentDate.Time,
		AppointmentTime: r.AppointmentTime,
		Status:          r.Status,
		Notes:           r.Notes,
		ReminderSent:    r.ReminderSent,
	}
}

type UpdateAppointmentRequest struct {
	ID              *int64                                    `json:"id" validate:"required"`
	CustomerID      domain.Optional[int64]                    `json:"customer_id" swaggertype:"integer"`
	AppointmentDate domain.Optional[AppointmentDate]          `json:"appointment_date" swaggertype:"string" example:"2024-01-15"`
	AppointmentTime domain.Optional[string]                   `json:"appointment_time" validate:"omitnil,min=1" swaggertype:"string"`
	Status          domain.Optional[domain.AppointmentStatus] `json:"status" validate:"omitnil,oneof=scheduled confirmed completed cancelled rescheduled" swaggertype:"string"`
	Notes           domain.Nullable[string]                   `json:"notes" swaggertype:"string"`
	ReminderSent    domain.Optional[bool]                     `json:"reminder_sent" swaggertype:"boolean"`
}

func (r UpdateAppointmentRequest) Patch() domain.AppointmentPatch {
	return domain.AppointmentPatch{
		CustomerID: r.CustomerID,
		AppointmentDate: domain.Optional[time.Time]{
			Set:   r.AppointmentDate.Set,
			Value: r.AppointmentDate.Value.Time,
		},
		AppointmentTime: r.AppointmentTime,
		Status:          r.Status,
		Notes:           r.Notes,
		ReminderSent:    r.ReminderSent,
	}
}
