package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/service"
	"cinema_booking/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetFilms(c *fiber.Ctx) error {
	films, err := service.ListFilms(database.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, films)
}

func GetFilmById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	film, err := service.GetFilm(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, film)
}

func CreateFilm(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateFilmInput)

	runBegin, err := time.Parse("2006-01-02", input.RunBegin)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	runEnd, err := time.Parse("2006-01-02", input.RunEnd)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	film, err := service.CreateFilm(database.DB, input.Name, runBegin, runEnd)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, film)
}

func EditFilm(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateFilmInput)
	film, err := service.UpdateFilm(database.DB, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, film)
}

func DeleteFilm(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)
	if err := service.DeleteFilms(database.DB, input.IDs); err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
