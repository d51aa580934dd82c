package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"ponto-backend/config"
	"ponto-backend/internal/routes"
	"ponto-backend/internal/ws"
)

func main() {
	fmt.Println("1. Iniciando aplicação... Carregando .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema.")
	}

	fmt.Println("2. Conectando ao banco de dados...")
	config.ConnectDB()
	fmt.Println("3. Banco conectado! Preparando rotas...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Hub de eventos de marcação (refresh dos painéis abertos)
	hub := ws.NewHub()
	go hub.Run()

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupPontoRoutes(app, config.DB, hub)
	routes.SetupDashboardRoutes(app, config.DB, hub)
	routes.SetupShiftRoutes(app, config.DB)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupDeviceRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)
	routes.SetupNotificacaoRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Servidor pronto! Escutando na porta :" + port)
	app.Listen(":" + port)
}
