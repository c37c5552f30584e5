package main

import (
	"cinema_booking/config"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
	}))

	database.ConnectDB()
	helper.InitSessionStore()

	helper.StartScreeningScheduler()
	defer helper.StopScreeningScheduler()
	helper.StartReportScheduler()
	defer helper.StopReportScheduler()

	router.SetupRoutes(app)

	addr := ":" + config.Config("PORT")
	if addr == ":" {
		addr = ":8002"
	}
	log.Fatal(app.Listen(addr))
}
