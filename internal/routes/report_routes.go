package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	pontoRepo := repository.NewPontoRepository(db)
	hdl := handler.NewReportHandler(pontoRepo)

	api := app.Group("/api/admin/relatorios", middleware.Auth, middleware.Role("admin"))
	api.Get("/mensal", hdl.ExportarMensal)
}
