package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends the {"status":"error","message":...} envelope.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends the {"status":"success","data":...} envelope.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// FormatValidationErrors turns validator/v10 errors into one line per
// field. name maps a struct field to the name the user knows it by; a nil
// name, or one returning "", keeps the struct field name.
func FormatValidationErrors(err error, name func(field string) string) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if name != nil {
			if n := name(field); n != "" {
				field = n
			}
		}
		line := fmt.Sprintf("%s failed on the '%s' tag", field, fe.Tag())
		if fe.Param() != "" {
			line = fmt.Sprintf("%s (param: %s)", line, fe.Param())
		}
		out = append(out, line)
	}
	return out
}

// SanitizeInput trims whitespace from a route or query value.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
