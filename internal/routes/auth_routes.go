package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(userRepo)

	app.Post("/api/login", hdl.Login)
	app.Post("/api/register", hdl.Register)

	api := app.Group("/api/perfil", middleware.Auth)
	api.Get("/", hdl.GetProfile)
	api.Put("/senha", hdl.ChangePassword)
}
