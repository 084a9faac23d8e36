package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FiberErrorHandler convierte cualquier error devuelto por un handler
// (incluidos los fiber.NewError de los controladores) al envelope estándar.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	return JsonError(c, status, err.Error())
}
