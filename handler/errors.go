package handler

import (
	"cinema_booking/constants"
	"cinema_booking/service"
	"cinema_booking/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrVenueDoubleBooked),
		errors.Is(err, service.ErrScreeningLocked),
		errors.Is(err, service.ErrCapacityExceeded):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error(), err)
	case errors.Is(err, service.ErrInvalidInterval),
		errors.Is(err, service.ErrPastScheduling),
		errors.Is(err, service.ErrOutsideFilmRun),
		errors.Is(err, service.ErrInvalidRunWindow),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrShowEnded):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}
