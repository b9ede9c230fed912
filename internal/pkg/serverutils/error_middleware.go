package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"synapsex-be/internal/pkg/apperror"
	"synapsex-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors returned by handlers into the
// response envelope. Services raise typed apperror values; this is the only
// layer that maps them to status codes. 5xx responses always carry a
// generic message so store/internal detail never leaks.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := appErr.Status()
			message := appErr.Message
			if status >= fiber.StatusInternalServerError {
				if log != nil {
					log.Error("HTTP", "Request failed", map[string]interface{}{
						"path":  ctx.Path(),
						"error": appErr.Error(),
					})
				}
				message = "Internal server error"
			}
			return ctx.Status(status).JSON(ErrorResponse(message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		if log != nil {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
