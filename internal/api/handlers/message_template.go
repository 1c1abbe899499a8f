package handlers

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"clinicdesk/internal/api/dto"
	"clinicdesk/internal/api/services"
	"clinicdesk/internal/repository"
)

type MessageTemplateHandler struct {
	templateService *services.MessageTemplateService
}

func NewMessageTemplateHandler(db *sqlx.DB, publisher services.Publisher, logger *slog.Logger) *MessageTemplateHandler {
	templateRepo := repository.NewMessageTemplateRepository(db)

	return &MessageTemplateHandler{
		templateService: services.NewMessageTemplateService(templateRepo, publisher, logger),
	}
}

// CreateMessageTemplate godoc
// @Summary Create message template
// @Tags message-templates
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateMessageTemplateRequest true "Template"
// @Success 200 {object} domain.MessageTemplate
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/createMessageTemplate [post]
func (h *MessageTemplateHandler) CreateMessageTemplate(c echo.Context) error {
	var req dto.CreateMessageTemplateRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	template, err := h.templateService.Create(c.Request().Context(), req.Input())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, template)
}

// GetMessageTemplates godoc
// @Summary List message templates
// @Tags message-templates
// @Produce json
// @Success 200 {array} domain.MessageTemplate
// @Router /rpc/getMessageTemplates [get]
func (h *MessageTemplateHandler) GetMessageTemplates(c echo.Context) error {
	templates, err := h.templateService.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, templates)
}

// GetMessageTemplateByID godoc
// @Summary Get message template by id
// @Tags message-templates
// @Produce json
// @Param id query int true "Template ID"
// @Success 200 {object} domain.MessageTemplate
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/getMessageTemplateById [get]
func (h *MessageTemplateHandler) GetMessageTemplateByID(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	template, err := h.templateService.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, template)
}

// UpdateMessageTemplate godoc
// @Summary Update message template
// @Tags message-templates
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpdateMessageTemplateRequest true "Fields to change"
// @Success 200 {object} domain.MessageTemplate
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rpc/updateMessageTemplate [post]
func (h *MessageTemplateHandler) UpdateMessageTemplate(c echo.Context) error {
	var req dto.UpdateMessageTemplateRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	template, err := h.templateService.Update(c.Request().Context(), *req.ID, req.Patch())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, template)
}

// DeleteMessageTemplate godoc
// @Summary Delete message template
// @Tags message-templates
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.IDRequest true "Template ID"
// @Success 200 {boolean} bool
// @Router /rpc/deleteMessageTemplate [post]
func (h *MessageTemplateHandler) DeleteMessageTemplate(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	deleted, err := h.templateService.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, deleted)
}
