package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	hdl := handler.NewUserHandler(userRepo, shiftRepo)

	api := app.Group("/api/admin/usuarios", middleware.Auth, middleware.Role("admin"))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Put("/:id/turnos", hdl.AtribuirTurnos)
	api.Delete("/:id", hdl.Delete)
}
