package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/pkg/validator"
)

type UserHandler struct {
	userRepo  repository.UserRepository
	shiftRepo repository.ShiftRepository
}

func NewUserHandler(userRepo repository.UserRepository, shiftRepo repository.ShiftRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, shiftRepo: shiftRepo}
}

type CreateUserRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
	ShiftIDs []uint `json:"shift_ids"`
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.userRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar usuários"})
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos", "detalhes": errs})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar usuário"})
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := model.User{
		Nome:     req.Nome,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}

	if len(req.ShiftIDs) > 0 {
		shifts, err := h.shiftRepo.GetByIDs(req.ShiftIDs)
		if err != nil || len(shifts) != len(req.ShiftIDs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Turno informado não existe"})
		}
		user.Shifts = shifts
	}

	if err := h.userRepo.Create(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar usuário (e-mail já cadastrado?)"})
	}

	return c.JSON(fiber.Map{"message": "Usuário criado com sucesso!", "data": user})
}

type UpdateUserRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin user"`
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos", "detalhes": errs})
	}

	user, err := h.userRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	user.Nome = req.Nome
	user.Email = req.Email
	if req.Role != "" {
		user.Role = req.Role
	}

	if err := h.userRepo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao atualizar usuário"})
	}
	return c.JSON(fiber.Map{"message": "Usuário atualizado com sucesso!", "data": user})
}

type AtribuirTurnosRequest struct {
	ShiftIDs []uint `json:"shift_ids"`
}

// AtribuirTurnos substitui os turnos do colaborador. Lista vazia remove
// todos (colaborador sem turno nunca cai em faltou).
func (h *UserHandler) AtribuirTurnos(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req AtribuirTurnosRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}

	user, err := h.userRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	shifts := []model.Shift{}
	if len(req.ShiftIDs) > 0 {
		shifts, err = h.shiftRepo.GetByIDs(req.ShiftIDs)
		if err != nil || len(shifts) != len(req.ShiftIDs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Turno informado não existe"})
		}
	}

	if err := h.userRepo.ReplaceShifts(user, shifts); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao atribuir turnos"})
	}

	return c.JSON(fiber.Map{"message": "Turnos atualizados com sucesso!", "data": shifts})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if uint(id) == c.Locals("user_id").(uint) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Você não pode excluir o próprio usuário"})
	}

	if err := h.userRepo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao excluir usuário"})
	}
	return c.JSON(fiber.Map{"message": "Usuário excluído com sucesso!"})
}
