package http

import (
	"net/http"

	"lenddesk-backend/internal/usecase/lifecycle"

	"github.com/labstack/echo/v4"
)

type LifecycleHandler struct {
	uc *lifecycle.Usecase

	// OnDecision, when set, is invoked with the decision kind after a
	// successful record (metrics hook).
	OnDecision func(decision string)
}

func NewLifecycleHandler(uc *lifecycle.Usecase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

type routeReq struct {
	PartnerID string `json:"partner_id" validate:"required"`
}

func (h *LifecycleHandler) RouteToPartner(c echo.Context) error {
	var req routeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SubmitToPartner(c.Request().Context(), c.Param("application_id"), req.PartnerID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

type decisionReq struct {
	Decision    string `json:"decision"     validate:"required,decision"`
	Notes       string `json:"notes"`
	Amount      int64  `json:"amount"       validate:"gte=0"`
	TenorMonths int    `json:"tenor_months" validate:"gte=0"`
	MinDeposit  *int64 `json:"min_deposit"  validate:"omitempty,gt=0"`
	MinTenor    *int   `json:"min_tenor"    validate:"omitempty,gt=0"`
}

func (h *LifecycleHandler) RecordDecision(c echo.Context) error {
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordDecision(c.Request().Context(), lifecycle.DecisionInput{
		ApplicationID: c.Param("application_id"),
		Decision:      lifecycle.Decision(req.Decision),
		Notes:         req.Notes,
		Amount:        req.Amount,
		TenorMonths:   req.TenorMonths,
		MinDeposit:    req.MinDeposit,
		MinTenor:      req.MinTenor,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	if h.OnDecision != nil {
		h.OnDecision(req.Decision)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LifecycleHandler) Disburse(c echo.Context) error {
	dto, err := h.uc.Disburse(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

type paymentReq struct {
	InstallmentSeq int `json:"installment_seq" validate:"required,gte=1"`
}

func (h *LifecycleHandler) RecordPayment(c echo.Context) error {
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), c.Param("application_id"), req.InstallmentSeq)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

// GetSchedule returns the schedule section of the view model only.
func (h *LifecycleHandler) GetSchedule(c echo.Context) error {
	dto, err := h.uc.View(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	if dto.Schedule == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not disbursed"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"schedule":        dto.Schedule,
		"overdue_summary": dto.OverdueSummary,
	})
}
