package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/service"
	"cinema_booking/utils"
	"encoding/base64"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

func BookScreening(c *fiber.Ctx) error {
	claim, ok := helper.ClaimsFromCtx(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, errors.New("no claims"))
	}
	screeningId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.BookInput)

	order, remaining, err := service.Reserve(database.DB, screeningId, claim.AccountId, input.Quantity)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, model.BookingResponse{
		Order:     *order,
		Remaining: remaining,
	})
}

func GetMyOrders(c *fiber.Ctx) error {
	claim, ok := helper.ClaimsFromCtx(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, errors.New("no claims"))
	}
	db := database.DB

	orders, err := service.OrdersForAccount(db, claim.AccountId)
	if err != nil {
		return respondServiceError(c, err)
	}
	totalSpent, err := service.TotalSpent(db, claim.AccountId)
	if err != nil {
		return respondServiceError(c, err)
	}

	rows := []fiber.Map{}
	for _, order := range orders {
		qrBase64 := ""
		qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
		if err != nil {
			log.Printf("qr for order %s: %v", order.PublicCode, err)
		} else {
			qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
		}

		rows = append(rows, fiber.Map{
			"orderCode": order.PublicCode,
			"film":      order.Screening.Film.Name,
			"venue":     order.Screening.Venue.Name,
			"start":     order.Screening.StartTime,
			"quantity":  order.Quantity,
			"price":     order.Screening.Price,
			"cost":      order.Quantity * order.Screening.Price,
			"placedAt":  order.CreatedAt,
			"qrCode":    qrBase64,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orders":     rows,
		"totalSpent": totalSpent,
	})
}
