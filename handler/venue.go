package handler

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/service"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetVenues(c *fiber.Ctx) error {
	venues, err := service.ListVenues(database.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, venues)
}

func GetVenueById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	venue, err := service.GetVenue(database.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func CreateVenue(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateVenueInput)
	venue, err := service.CreateVenue(database.DB, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, venue)
}

func EditVenue(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateVenueInput)
	venue, err := service.UpdateVenue(database.DB, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func DeleteVenue(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)
	if err := service.DeleteVenues(database.DB, input.IDs); err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
