package http

import (
	"errors"
	"net/http"

	"escrow/internal/adapters/out/postgres/tokenrepo"
	"escrow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps domain errors onto HTTP status codes. Anything unmapped is an
// internal error; its detail stays out of the response.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRefundWindowExpired):
		return http.StatusGone
	case errors.Is(err, errs.ErrRefundWindowStillOpen),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrOrderAlreadyFinalized),
		errors.Is(err, errs.ErrNothingToWithdraw):
		return http.StatusConflict
	case errors.Is(err, tokenrepo.ErrInsufficientFunds),
		errors.Is(err, tokenrepo.ErrInsufficientAllowance):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}
