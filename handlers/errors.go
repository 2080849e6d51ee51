package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"videothingy/chapter-viewer/utils"
	"videothingy/chapter-viewer/web"
)

// ErrorHandler is the last stop for errors returned by routes and for
// panics caught by the recover middleware. API paths get the JSON envelope,
// everything else the error page.
func (h *ApplicationHandler) ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := fiber.ErrInternalServerError.Message
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
		message = ferr.Message
	}

	entry := h.Logger.WithFields(logrus.Fields{
		"request_id":  c.Locals("requestid"),
		"uri":         c.OriginalURL(),
		"status_code": code,
	}).WithError(err)
	if code >= fiber.StatusInternalServerError {
		entry.Error("Unhandled error")
	} else {
		entry.Warn("Request rejected")
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return utils.RespondWithError(c, code, message)
	}
	if rerr := c.Status(code).Render("error", web.ErrorPage{
		Title:   "Error",
		Message: message,
	}, web.Layout); rerr != nil {
		h.Logger.WithError(rerr).Error("Failed to render error page")
		return c.Status(code).SendString(message)
	}
	return nil
}
