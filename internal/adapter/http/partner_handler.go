package http

import (
	"net/http"

	partnerDomain "lenddesk-backend/internal/domain/partner"
	"lenddesk-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

// PartnerHandler manages funding-partner reference data. Partners are
// immutable once created; there is no update or delete surface.
type PartnerHandler struct{ repo partnerDomain.Repository }

func NewPartnerHandler(repo partnerDomain.Repository) *PartnerHandler {
	return &PartnerHandler{repo: repo}
}

type createPartnerReq struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required,uppercase,min=2,max=16"`
}

func (h *PartnerHandler) CreatePartner(c echo.Context) error {
	var req createPartnerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p := &partnerDomain.Partner{PartnerID: id.NewID32(), Name: req.Name, Code: req.Code}
	if err := h.repo.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PartnerHandler) ListPartners(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
