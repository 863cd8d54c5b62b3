package http

import (
	"errors"
	"log/slog"
	"net/http"

	"titipin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates an application error into an HTTP status. This is
// the only place that maps error kinds to status codes; handlers just return
// whatever the use case gave them.
//
// Validation failures are 400, denied capabilities 403, missing objects 404,
// and state conflicts (including duplicate offers and lost accept races) 409.
// Anything unrecognized is a 500 with the detail kept out of the body.
func respondError(ctx echo.Context, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err.Error())

	case errors.Is(err, errs.ErrAccessDenied):
		return respond(ctx, http.StatusForbidden, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicateOperation):
		return respond(ctx, http.StatusConflict, err.Error())

	default:
		logger.ErrorContext(ctx.Request().Context(), "unhandled error",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return respond(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func respond(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
