package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ponto-backend/pkg/jwt"
)

func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token não encontrado"})
	}

	// Formato esperado: "Bearer <token>"
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token inválido ou expirado"})
	}

	// Identidade disponível para os handlers
	c.Locals("user_id", claims.UserID)
	c.Locals("nome", claims.Nome)
	c.Locals("role", claims.Role)

	return c.Next()
}
