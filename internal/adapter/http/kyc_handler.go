package http

import (
	"net/http"

	"lenddesk-backend/internal/usecase/application"
	"lenddesk-backend/internal/usecase/kycgate"

	"github.com/labstack/echo/v4"
)

// KYCHandler exposes the identity & document gate: profile submission and
// read-only evaluation. Gate data is keyed by applicant, addressed through
// the application.
type KYCHandler struct {
	gate *kycgate.Usecase
	apps *application.Usecase
}

func NewKYCHandler(gate *kycgate.Usecase, apps *application.Usecase) *KYCHandler {
	return &KYCHandler{gate: gate, apps: apps}
}

type submitProfileReq struct {
	IdentityDocumentRef     string `json:"identity_document_ref"`
	BeneficiaryName         string `json:"beneficiary_name"`
	BeneficiaryRelationship string `json:"beneficiary_relationship"`
	BeneficiaryContact      string `json:"beneficiary_contact"`
	TitleDocumentRef        string `json:"title_document_ref"`
}

func (h *KYCHandler) SubmitProfile(c echo.Context) error {
	app, err := h.apps.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}

	var req submitProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	p, err := h.gate.SubmitProfile(c.Request().Context(), kycgate.SubmitInput{
		ApplicantID:             app.ApplicantID,
		IdentityDocumentRef:     req.IdentityDocumentRef,
		BeneficiaryName:         req.BeneficiaryName,
		BeneficiaryRelationship: req.BeneficiaryRelationship,
		BeneficiaryContact:      req.BeneficiaryContact,
		TitleDocumentRef:        req.TitleDocumentRef,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *KYCHandler) Evaluate(c echo.Context) error {
	app, err := h.apps.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	res, err := h.gate.Evaluate(c.Request().Context(), app.ApplicantID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
