package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/adapter/http/fiber/views"
)

// ErrorHandler renders failures as an HTML page. Store failures surface
// as 500 and are logged.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Não foi possível concluir a operação."

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		c.Status(code)
		if renderErr := c.Render("error", fiber.Map{
			"Title":   "Erro",
			"Code":    code,
			"Message": message,
		}, views.Layout); renderErr != nil {
			log.Error("Failed to render error page", zap.Error(renderErr))
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
