package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cvlsoft/aios_backend/internal/api/http/handler"
)

func (r *Router) registerDemoRoutes(api fiber.Router, h *handler.DemoHandler) {
	api.Post("/demo-request", h.Submit)
}
