package handler

import "github.com/gofiber/fiber/v3"

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

// The demo-request form expects a flat {ok, message} envelope on every
// outcome, so those responses bypass the data/error wrapper above.

type formResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func formOK(c fiber.Ctx, msg string) error {
	return c.JSON(formResponse{OK: true, Message: msg})
}

func formBadRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(formResponse{OK: false, Message: msg})
}

func formServerError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(formResponse{
		OK:      false,
		Message: "Unable to process request right now.",
	})
}
