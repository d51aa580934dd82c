package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
	"ponto-backend/internal/ws"
)

func SetupPontoRoutes(app *fiber.App, db *gorm.DB, hub *ws.Hub) {
	pontoRepo := repository.NewPontoRepository(db)
	userRepo := repository.NewUserRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	hdl := handler.NewPontoHandler(pontoRepo, userRepo, deviceRepo, hub)

	api := app.Group("/api/ponto", middleware.Auth)
	api.Post("/entrada", hdl.RegistrarEntrada)
	api.Post("/saida", hdl.RegistrarSaida)
	api.Get("/hoje", hdl.GetStatusHoje)
	api.Get("/historico", hdl.GetHistorico)

	admin := app.Group("/api/admin/pontos", middleware.Auth, middleware.Role("admin"))
	admin.Patch("/:id/justificar", hdl.JustificarPonto)
}
