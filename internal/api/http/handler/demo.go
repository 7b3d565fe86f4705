package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/cvlsoft/aios_backend/internal/service/lead"
)

const submitConfirmation = "Thanks. We will follow up to schedule your demo."

type DemoHandler struct {
	svc lead.Service
}

func NewDemoHandler(svc lead.Service) *DemoHandler {
	return &DemoHandler{svc: svc}
}

type submitDemoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Source    string `json:"source"`
}

// Submit handles one demo-request form post. Validation failures carry
// the field-specific message; everything unexpected, including an
// unparseable body, collapses to the generic 500 envelope.
func (h *DemoHandler) Submit(c fiber.Ctx) error {
	var req submitDemoRequest
	if err := c.Bind().JSON(&req); err != nil {
		slog.Error("demo request body unreadable", "error", err)
		return formServerError(c)
	}

	_, err := h.svc.Submit(c.Context(), lead.Submission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Source:    req.Source,
	})
	if err != nil {
		var verr *lead.ValidationError
		if errors.As(err, &verr) {
			return formBadRequest(c, verr.Message)
		}
		return formServerError(c)
	}

	return formOK(c, submitConfirmation)
}
