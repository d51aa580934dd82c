package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/internal/service"
)

type DashboardHandler struct {
	pontoRepo repository.PontoRepository
	userRepo  repository.UserRepository
}

func NewDashboardHandler(pontoRepo repository.PontoRepository, userRepo repository.UserRepository) *DashboardHandler {
	return &DashboardHandler{pontoRepo: pontoRepo, userRepo: userRepo}
}

// GetDashboard monta a visão do dia: registros reais + sintéticos
// reconciliados, filtrados pelos parâmetros e acompanhados dos contadores.
//
// Query params: data (YYYY-MM-DD, padrão hoje), busca, status, shift_id.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	agora := time.Now()

	data := c.Query("data")
	if data == "" {
		data = agora.Format("2006-01-02")
	}

	busca := c.Query("busca")
	status := model.StatusPonto(c.Query("status", string(model.StatusTodos)))

	var shiftID *uint
	if raw := c.Query("shift_id"); raw != "" && raw != "todos" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "shift_id inválido"})
		}
		v := uint(id)
		shiftID = &v
	}

	pontos, err := h.pontoRepo.GetByDate(data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar registros do dia"})
	}

	users, err := h.userRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar colaboradores"})
	}

	reconciliados := service.Reconciliar(pontos, service.ColaboradoresDe(users), data, agora)
	filtrados := service.FiltrarRegistros(reconciliados, busca, status, "", shiftID)

	// Cards e métricas consideram o dia inteiro, não o recorte filtrado
	return c.JSON(fiber.Map{
		"message":   "Dashboard carregado",
		"stats":     service.CalcularEstatisticas(reconciliados),
		"metricas":  service.CalcularMetricasStatus(reconciliados),
		"registros": filtrados,
	})
}
