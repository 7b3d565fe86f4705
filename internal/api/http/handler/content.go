package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cvlsoft/aios_backend/internal/service/content"
)

type ContentHandler struct {
	svc content.Service
}

func NewContentHandler(svc content.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) Site(c fiber.Ctx) error {
	return ok(c, h.svc.Site())
}
