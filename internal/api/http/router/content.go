package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cvlsoft/aios_backend/internal/api/http/handler"
)

func (r *Router) registerContentRoutes(api fiber.Router, h *handler.ContentHandler) {
	api.Get("/content", h.Site)
}
