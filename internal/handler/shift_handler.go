package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/pkg/validator"
)

type ShiftHandler struct {
	repo repository.ShiftRepository
}

func NewShiftHandler(repo repository.ShiftRepository) *ShiftHandler {
	return &ShiftHandler{repo: repo}
}

type ShiftRequest struct {
	Nome       string `json:"nome" validate:"required"`
	HoraInicio string `json:"hora_inicio" validate:"required,hora"`
	HoraFim    string `json:"hora_fim" validate:"required,hora"`
}

func (h *ShiftHandler) GetAll(c *fiber.Ctx) error {
	shifts, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar turnos"})
	}
	return c.JSON(fiber.Map{"data": shifts})
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos", "detalhes": errs})
	}

	shift := model.Shift{Nome: req.Nome, HoraInicio: req.HoraInicio, HoraFim: req.HoraFim}
	if err := h.repo.Create(&shift); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar turno"})
	}
	return c.JSON(fiber.Map{"message": "Turno criado com sucesso!", "data": shift})
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos", "detalhes": errs})
	}

	shift, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Turno não encontrado"})
	}

	shift.Nome = req.Nome
	shift.HoraInicio = req.HoraInicio
	shift.HoraFim = req.HoraFim

	if err := h.repo.Update(shift); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao atualizar turno"})
	}
	return c.JSON(fiber.Map{"message": "Turno atualizado com sucesso!", "data": shift})
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	// Turno referenciado por registros de ponto não pode sumir
	count, err := h.repo.CountPontos(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao verificar uso do turno"})
	}
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Turno em uso por registros de ponto, não pode ser excluído"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao excluir turno"})
	}
	return c.JSON(fiber.Map{"message": "Turno excluído com sucesso!"})
}
