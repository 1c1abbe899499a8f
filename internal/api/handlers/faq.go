package handlers

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"clinicdesk/internal/api/dto"
	"clinicdesk/internal/api/services"
	"clinicdesk/internal/repository"
)

type FAQHandler struct {
	faqService *services.FAQService
}

func NewFAQHandler(db *sqlx.DB, publisher services.Publisher, logger *slog.Logger) *FAQHandler {
	faqRepo := repository.NewFAQRepository(db)

	return &FAQHandler{
		faqService: services.NewFAQService(faqRepo, publisher, logger),
	}
}

// CreateFAQ godoc
// @Summary Create FAQ
// @Description is_active defaults to true
// @Tags faqs
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateFAQRequest true "FAQ"
// @Success 200 {object} domain.FAQ
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/createFaq [post]
func (h *FAQHandler) CreateFAQ(c echo.Context) error {
	var req dto.CreateFAQRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	faq, err := h.faqService.Create(c.Request().Context(), req.Input())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, faq)
}

// GetFAQs godoc
// @Summary List FAQs
// @Tags faqs
// @Produce json
// @Success 200 {array} domain.FAQ
// @Router /rpc/getFaqs [get]
func (h *FAQHandler) GetFAQs(c echo.Context) error {
	faqs, err := h.faqService.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, faqs)
}

// GetFAQByID godoc
// @Summary Get FAQ by id
// @Tags faqs
// @Produce json
// @Param id query int true "FAQ ID"
// @Success 200 {object} domain.FAQ
// @Failure 400 {object} dto.ErrorResponse
// @Router /rpc/getFaqById [get]
func (h *FAQHandler) GetFAQByID(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	faq, err := h.faqService.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, faq)
}

// UpdateFAQ godoc
// @Summary Update FAQ
// @Tags faqs
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpdateFAQRequest true "Fields to change"
// @Success 200 {object} domain.FAQ
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /rpc/updateFaq [post]
func (h *FAQHandler) UpdateFAQ(c echo.Context) error {
	var req dto.UpdateFAQRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	faq, err := h.faqService.Update(c.Request().Context(), *req.ID, req.Patch())
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, faq)
}

// DeleteFAQ godoc
// @Summary Delete FAQ
// @Tags faqs
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.IDRequest true "FAQ ID"
// @Success 200 {boolean} bool
// @Router /rpc/deleteFaq [post]
func (h *FAQHandler) DeleteFAQ(c echo.Context) error {
	var req dto.IDRequest
	if err := bindRequest(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	deleted, err := h.faqService.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, deleted)
}
