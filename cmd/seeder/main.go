package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"ponto-backend/config"
	"ponto-backend/internal/database"
)

func main() {
	fmt.Println("🌱 Iniciando seeding do banco...")

	// Load .env manual porque este é um script separado
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema.")
	}

	config.ConnectDB()

	fmt.Println("🚀 Executando SeedAll...")
	database.SeedAll(config.DB)

	fmt.Println("✅ Seeding concluído!")
}
