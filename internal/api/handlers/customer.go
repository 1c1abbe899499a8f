package handlers

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"clinicdesk/internal/api/dto"
	"clinicdesk/internal/api/services"
	"clinicdesk/internal/repository"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(db *sqlx.DB, publisher services.Publisher, logger *slog.Logger) *CustomerHandler {
	customerRepo := repository.NewCustomerRepository(db)

	return &CustomerHandler{
		customerService: services.NewCustomerService(customerRepo, publisher, logger),
	}
}

// CreateCustomer godoc
// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateCustomerRequest true "Customer"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /rpc/createCustomer [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req dto.CreateCustomerRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	customer, err := h.customerService.Create(c.Request().Context(), req.Input())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, customer)
}

// GetCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} domain.Customer
// @Failure 500 {object} dto.ErrorResponse
// @Router /rpc/getCustomers [get]
func (h *CustomerHandler) GetCustomers(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, customers)
}

// GetCustomerByID godoc
// @Summary Get customer by id
// @Description Answers null when no customer has the id
// @Tags customers
// @Produce json
// @Param id query int true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/getCustomerById [get]
func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	customer, err := h.customerService.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, customer)
}

// UpdateCustomer godoc
// @Summary Update customer
// @Description Only the fields present in the body change; null clears email, address or notes
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rpc/updateCustomer [post]
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var req dto.UpdateCustomerRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	customer, err := h.customerService.Update(c.Request().Context(), *req.ID, req.Patch())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, customer)
}

// DeleteCustomer godoc
// @Summary Delete customer
// @Description Answers false when nothing was deleted. Appointments of the customer are kept.
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.IDRequest true "Customer ID"
// @Success 200 {boolean} bool
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/deleteCustomer [post]
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	deleted, err := h.customerService.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, deleted)
}
