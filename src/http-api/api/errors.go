package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jack-barr3tt/comboios/src/common/upstream"
)

// failure translates a facade error into a response. A request whose own
// deadline expired is handed back to the timeout middleware as a 408.
func (s *APIServer) failure(c *fiber.Ctx, err error, message string) error {
	if errors.Is(c.UserContext().Err(), context.DeadlineExceeded) {
		s.Logger.Errorw("request deadline exceeded", "path", c.Path(), "error", err)
		return fiber.ErrRequestTimeout
	}

	status := http.StatusInternalServerError
	title := "Upstream error"
	switch {
	case upstream.IsClientError(err):
		status = http.StatusBadRequest
		title = "Bad Request"
	case errors.Is(err, upstream.ErrTimeout):
		status = http.StatusGatewayTimeout
		title = "Upstream timeout"
	}

	var statusErr *upstream.HTTPStatusError
	if errors.As(err, &statusErr) {
		s.Logger.Errorw(message, "error", err, "upstream_status", statusErr.StatusCode)
	} else {
		s.Logger.Errorw(message, "error", err)
	}

	if status == http.StatusBadRequest {
		message = err.Error()
	}
	return c.Status(status).JSON(ErrorResponse{
		Error:   title,
		Message: message,
	})
}

// errorHandler renders errors that reach fiber, such as unknown routes and
// request timeouts.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code == fiber.StatusRequestTimeout {
		message = "Request took too long"
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
	})
}
