package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/pkg/validator"
)

type DeviceHandler struct {
	repo repository.DeviceRepository
}

func NewDeviceHandler(repo repository.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{repo: repo}
}

type DeviceRequest struct {
	Nome        string `json:"nome" validate:"required"`
	Fingerprint string `json:"fingerprint"` // vazio = gerado pelo servidor
}

func (h *DeviceHandler) GetAll(c *fiber.Ctx) error {
	devices, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar dispositivos"})
	}
	return c.JSON(fiber.Map{"data": devices})
}

func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(uint)

	var req DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos", "detalhes": errs})
	}

	fingerprint := req.Fingerprint
	if fingerprint == "" {
		fingerprint = uuid.NewString()
	}

	device := model.AuthorizedDevice{
		Fingerprint: fingerprint,
		Nome:        req.Nome,
		ApprovedBy:  adminID,
		IsActive:    true,
	}

	if err := h.repo.Create(&device); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fingerprint já cadastrado"})
	}

	return c.JSON(fiber.Map{"message": "Dispositivo autorizado com sucesso!", "data": device})
}

// ToggleAtivo liga/desliga a autorização sem apagar o histórico do aparelho.
func (h *DeviceHandler) ToggleAtivo(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	device, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dispositivo não encontrado"})
	}

	device.IsActive = !device.IsActive
	if err := h.repo.Update(device); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao atualizar dispositivo"})
	}

	msg := "Dispositivo desativado"
	if device.IsActive {
		msg = "Dispositivo ativado"
	}
	return c.JSON(fiber.Map{"message": msg, "data": device})
}

func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao excluir dispositivo"})
	}
	return c.JSON(fiber.Map{"message": "Dispositivo excluído com sucesso!"})
}
