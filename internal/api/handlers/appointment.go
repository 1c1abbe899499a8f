package handlers

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"clinicdesk/internal/api/dto"
	"clinicdesk/internal/api/services"
	"clinicdesk/internal/repository"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(db *sqlx.DB, publisher services.Publisher, logger *slog.Logger) *AppointmentHandler {
	appointmentRepo := repository.NewAppointmentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	return &AppointmentHandler{
		appointmentService: services.NewAppointmentService(appointmentRepo, customerRepo, publisher, logger),
	}
}

// CreateAppointment godoc
// @Summary Create appointment
// @Description The customer must exist. status defaults to scheduled, reminder_sent to false.
// @Tags appointments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateAppointmentRequest true "Appointment"
// @Success 200 {object} domain.Appointment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rpc/createAppointment [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	var req dto.CreateAppointmentRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	appointment, err := h.appointmentService.Create(c.Request().Context(), req.Input())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, appointment)
}

// GetAppointments godoc
// @Summary List appointments
// @Description Newest first
// @Tags appointments
// @Produce json
// @Success 200 {array} domain.Appointment
// @Router /rpc/getAppointments [get]
func (h *AppointmentHandler) GetAppointments(c echo.Context) error {
	appointments, err := h.appointmentService.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, appointments)
}

// GetAppointmentByID godoc
// @Summary Get appointment by id
// @Tags appointments
// @Produce json
// @Param id query int true "Appointment ID"
// @Success 200 {object} domain.Appointment
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/getAppointmentById [get]
func (h *AppointmentHandler) GetAppointmentByID(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	appointment, err := h.appointmentService.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, appointment)
}

// GetAppointmentsByCustomer godoc
// @Summary List appointments of a customer
// @Description Newest first; empty for unknown customers
// @Tags appointments
// @Produce json
// @Param customer_id query int true "Customer ID"
// @Success 200 {array} domain.Appointment
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/getAppointmentsByCustomer [get]
func (h *AppointmentHandler) GetAppointmentsByCustomer(c echo.Context) error {
	var req dto.CustomerIDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	appointments, err := h.appointmentService.ListByCustomer(c.Request().Context(), req.CustomerID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, appointments)
}

// UpdateAppointment godoc
// @Summary Update appointment
// @Description Any status may follow any other
// @Tags appointments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpdateAppointmentRequest true "Fields to change"
// @Success 200 {object} domain.Appointment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rpc/updateAppointment [post]
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	var req dto.UpdateAppointmentRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	appointment, err := h.appointmentService.Update(c.Request().Context(), *req.ID, req.Patch())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, appointment)
}

// DeleteAppointment godoc
// @Summary Delete appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.IDRequest true "Appointment ID"
// @Success 200 {boolean} bool
// @Router /rpc/deleteAppointment [post]
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	deleted, err := h.appointmentService.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, deleted)
}
