package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
)

func SetupDeviceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDeviceRepository(db)
	hdl := handler.NewDeviceHandler(repo)

	api := app.Group("/api/admin/dispositivos", middleware.Auth, middleware.Role("admin"))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Patch("/:id/toggle", hdl.ToggleAtivo)
	api.Delete("/:id", hdl.Delete)
}
