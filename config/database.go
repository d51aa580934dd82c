package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ponto-backend/internal/model"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "ponto_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Falha ao conectar no banco de dados!")
	}

	fmt.Println("Conexão com o banco estabelecida!")

	// Auto Migration: cria as tabelas a partir dos structs em internal/model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Shift{})
	db.AutoMigrate(&model.Ponto{})
	db.AutoMigrate(&model.AuthorizedDevice{})

	DB = db
}
