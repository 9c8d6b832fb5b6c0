package http

import (
	"net/http"

	"lenddesk-backend/internal/usecase/application"
	"lenddesk-backend/internal/usecase/lifecycle"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	uc        *application.Usecase
	lifecycle *lifecycle.Usecase
}

func NewApplicationHandler(uc *application.Usecase, lc *lifecycle.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, lifecycle: lc}
}

type createApplicationReq struct {
	ApplicantID string  `json:"applicant_id" validate:"required,hex32"`
	Amount      int64   `json:"amount"       validate:"required,gt=0"`
	TenorMonths int     `json:"tenor_months" validate:"required,gte=1,lte=120"`
	Rate        float64 `json:"rate"         validate:"gte=0,lte=100"`
}

func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), application.CreateInput{
		ApplicantID: req.ApplicantID,
		Amount:      req.Amount,
		TenorMonths: req.TenorMonths,
		Rate:        req.Rate,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

// GetApplication returns the full lifecycle view model, overdue summary
// included.
func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	dto, err := h.lifecycle.View(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
