package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"oms/internal/core/domain/model/order"
	"oms/internal/generated/servers"
	"oms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps core errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrObjectConflict),
		errors.Is(err, order.ErrTrackingNumberAlreadyAssigned):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor explains transitions out of a final status in plain words.
func messageFor(err error) string {
	var transition *errs.InvalidTransitionError
	if errors.As(err, &transition) {
		from, parseErr := order.ParseStatus(transition.From)
		if parseErr == nil && from.IsTerminal() {
			return fmt.Sprintf("%s: %s orders can no longer change status", err, from)
		}
	}
	return err.Error()
}

// respondError writes err as an Error body. Server-side failures are logged and their
// details are not sent to the client unless they are computation errors.
func respondError(ctx echo.Context, logger *slog.Logger, err error) error {
	code := statusFor(err)
	message := messageFor(err)

	if code == http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		if !errors.Is(err, errs.ErrComputationFailure) {
			message = http.StatusText(http.StatusInternalServerError)
		}
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// httpErrorHandler renders errors that escape the handlers, such as request
// validation failures and unknown routes, in the same Error body.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled error",
				"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "Writing error response failed", "error", err)
		}
	}
}
