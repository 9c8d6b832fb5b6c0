package http

import (
	"net/http"

	"lenddesk-backend/internal/usecase/application"
	"lenddesk-backend/internal/usecase/credit"

	"github.com/labstack/echo/v4"
)

// CreditHandler exposes the back-office score: upsert and the derived
// loan limit. Like KYC, score data is keyed by applicant and addressed
// through the application.
type CreditHandler struct {
	scoring *credit.Usecase
	apps    *application.Usecase
}

func NewCreditHandler(scoring *credit.Usecase, apps *application.Usecase) *CreditHandler {
	return &CreditHandler{scoring: scoring, apps: apps}
}

type setScoreReq struct {
	Score int `json:"score" validate:"gte=0,lte=100"`
}

func (h *CreditHandler) SetScore(c echo.Context) error {
	app, err := h.apps.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}

	var req setScoreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.scoring.SetScore(c.Request().Context(), app.ApplicantID, req.Score)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CreditHandler) Score(c echo.Context) error {
	app, err := h.apps.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	res, err := h.scoring.Score(c.Request().Context(), app.ApplicantID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
