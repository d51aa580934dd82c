package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/mailer"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
)

func SetupNotificacaoRoutes(app *fiber.App, db *gorm.DB) {
	pontoRepo := repository.NewPontoRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewNotificacaoHandler(pontoRepo, userRepo, mailer.New())

	api := app.Group("/api/admin/notificacoes", middleware.Auth, middleware.Role("admin"))
	api.Post("/pendencias", hdl.NotificarPendencias)
}
