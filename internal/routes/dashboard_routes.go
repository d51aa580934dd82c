package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponto-backend/internal/handler"
	"ponto-backend/internal/middleware"
	"ponto-backend/internal/repository"
	"ponto-backend/internal/ws"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, hub *ws.Hub) {
	pontoRepo := repository.NewPontoRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewDashboardHandler(pontoRepo, userRepo)

	api := app.Group("/api/admin/dashboard", middleware.Auth, middleware.Role("admin"))
	api.Get("/", hdl.GetDashboard)

	// Canal de refresh: o painel escuta eventos de marcação e refaz a
	// consulta REST quando algo muda.
	app.Use("/api/admin/dashboard/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/api/admin/dashboard/ws", websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)

		for {
			// Keep alive
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
