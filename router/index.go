package router

import (
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handler.Logout)

	venue := v1.Group("/venue", logger.New())
	venue.Get("/", middleware.Protected(), handler.GetVenues)
	venue.Get("/:venueId", middleware.Protected(), validate.GetById("venueId"), handler.GetVenueById)
	venue.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateVenue(), handler.CreateVenue)
	venue.Put("/:venueId", middleware.Protected(), middleware.AdminOnly(), validate.EditVenue("venueId"), handler.EditVenue)
	venue.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteVenue)

	film := v1.Group("/film", logger.New())
	film.Get("/", middleware.Protected(), handler.GetFilms)
	film.Get("/:filmId", middleware.Protected(), validate.GetById("filmId"), handler.GetFilmById)
	film.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateFilm(), handler.CreateFilm)
	film.Put("/:filmId", middleware.Protected(), middleware.AdminOnly(), validate.EditFilm("filmId"), handler.EditFilm)
	film.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteFilm)

	screening := v1.Group("/screening", logger.New())
	screening.Get("/", middleware.Protected(), validate.FilterScreening(), handler.GetScreenings)
	screening.Get("/:screeningId", middleware.Protected(), validate.GetById("screeningId"), handler.GetScreeningById)
	screening.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateScreening(), handler.CreateScreening)
	screening.Put("/:screeningId", middleware.Protected(), middleware.AdminOnly(), validate.EditScreening("screeningId"), handler.EditScreening)
	screening.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteScreening)
	screening.Post("/:screeningId/book", middleware.Protected(), validate.Book("screeningId"), handler.BookScreening)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetMyOrders)
}
