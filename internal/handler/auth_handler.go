package handler

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/pkg/jwt"
	"ponto-backend/pkg/validator"
)

type AuthHandler struct {
	userRepo repository.UserRepository
}

func NewAuthHandler(userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{userRepo: userRepo}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register cria um usuário comum. Turnos e papel de admin são atribuídos
// depois, pelo painel administrativo.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos", "detalhes": errs})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao cadastrar usuário"})
	}

	user := model.User{
		Nome:     req.Nome,
		Email:    req.Email,
		Password: string(hashed),
		Role:     "user",
	}
	if err := h.userRepo.Create(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "E-mail já cadastrado"})
	}

	return c.JSON(fiber.Map{
		"message": "Cadastro realizado com sucesso",
		"data": fiber.Map{
			"id":    user.ID,
			"nome":  user.Nome,
			"email": user.Email,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}

	user, err := h.userRepo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "E-mail ou senha incorretos"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "E-mail ou senha incorretos"})
	}

	token, err := jwt.GenerateToken(user.ID, user.Nome, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao gerar token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login realizado com sucesso",
		"token":   token,
		"data": fiber.Map{
			"id":     user.ID,
			"nome":   user.Nome,
			"email":  user.Email,
			"role":   user.Role,
			"shifts": user.Shifts,
		},
	})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	return c.JSON(fiber.Map{
		"message": "Perfil carregado",
		"data":    user,
	})
}

type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual"`
	SenhaNova  string `json:"senha_nova"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if len(req.SenhaNova) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A nova senha precisa de pelo menos 6 caracteres"})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.SenhaAtual)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Senha atual incorreta"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao atualizar senha"})
	}

	user.Password = string(hashed)
	if err := h.userRepo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao atualizar senha"})
	}

	return c.JSON(fiber.Map{"message": "Senha atualizada com sucesso"})
}
