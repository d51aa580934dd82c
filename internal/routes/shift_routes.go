package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
)

func SetupShiftRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewShiftRepository(db)
	hdl := handler.NewShiftHandler(repo)

	// Listagem liberada para qualquer autenticado (o filtro do painel usa)
	app.Get("/api/shifts", middleware.Auth, hdl.GetAll)

	api := app.Group("/api/admin/shifts", middleware.Auth, middleware.Role("admin"))
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
