package handler

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/service"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetScreenings(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.FilterScreeningInput)

	screenings, total, err := service.ListScreenings(database.DB, filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       screenings,
		"totalCount": total,
	})
}

func GetScreeningById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	screening, err := service.GetScreening(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"screening": screening,
		"remaining": screening.Remaining(),
	})
}

func CreateScreening(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateScreeningInput)
	screening, err := service.CreateScreening(database.DB, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, screening)
}

func EditScreening(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateScreeningInput)
	screening, err := service.UpdateScreening(database.DB, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, screening)
}

func DeleteScreening(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)
	if err := service.DeleteScreenings(database.DB, input.IDs); err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
