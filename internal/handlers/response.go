package handlers

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope: {success, message, data?}.
// Clients branch on the boolean and show the message as-is.

func successResponse(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
