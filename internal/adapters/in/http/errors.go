package http

import (
	"errors"
	"net/http"

	"lensdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors to HTTP status codes. Anything unrecognized
// is a 500 with the error text withheld from the client.
func writeError(ctx echo.Context, err error) error {
	var (
		notFoundErr   errs.ObjectNotFoundError
		conflictErr   errs.ConflictError
		transitionErr errs.IllegalTransitionError
		integrityErr  errs.IntegrityError
		requiredErr   errs.ValueIsRequiredError
		invalidErr    errs.ValueIsInvalidError
		rangeErr      errs.ValueIsOutOfRangeError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return writeErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.As(err, &conflictErr), errors.As(err, &transitionErr):
		return writeErrorResponse(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &integrityErr):
		return writeErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &requiredErr), errors.As(err, &invalidErr), errors.As(err, &rangeErr):
		return writeErrorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return writeErrorResponse(ctx, http.StatusInternalServerError, "internal error")
	}
}

func writeErrorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
