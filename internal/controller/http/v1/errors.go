package httpv1

import (
	"errors"
	"net/http"

	"github.com/Egor213/LogSentinel/internal/pipeline"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const internalErrorMessage = "internal server error"

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors to HTTP codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrLogNotFound),
		errors.Is(err, service.ErrRecordNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidPageSize),
		errors.Is(err, service.ErrInvalidHours),
		errors.Is(err, service.ErrInvalidChartType),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordTooShort):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountLocked),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, pipeline.ErrAlreadyRunning):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func errorMessage(code int, err error) string {
	if code == http.StatusInternalServerError {
		return internalErrorMessage
	}
	return err.Error()
}

func respondError(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Error(err)
	}
	return c.JSON(code, errorResponse{Error: errorMessage(code, err)})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// bindMessage extracts the decoder message from echo's bind error.
func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			return he.Internal.Error()
		}
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}

// bindAndValidate decodes the body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.New(bindMessage(err))
	}
	return c.Validate(req)
}
