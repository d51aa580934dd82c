package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ponto-backend/internal/mailer"
	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/internal/service"
)

type NotificacaoHandler struct {
	pontoRepo repository.PontoRepository
	userRepo  repository.UserRepository
	mailer    *mailer.Mailer
}

func NewNotificacaoHandler(pontoRepo repository.PontoRepository, userRepo repository.UserRepository, m *mailer.Mailer) *NotificacaoHandler {
	return &NotificacaoHandler{pontoRepo: pontoRepo, userRepo: userRepo, mailer: m}
}

// NotificarPendencias reconcilia o dia atual e envia por e-mail ao admin a
// lista de quem ficou com saída não registrada.
func (h *NotificacaoHandler) NotificarPendencias(c *fiber.Ctx) error {
	agora := time.Now()
	hoje := agora.Format("2006-01-02")

	pontos, err := h.pontoRepo.GetByDate(hoje)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar registros do dia"})
	}
	users, err := h.userRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar colaboradores"})
	}

	registros := service.Reconciliar(pontos, service.ColaboradoresDe(users), hoje, agora)
	pendencias := service.FiltrarRegistros(registros, "", model.StatusSaidaNaoRegistrada, "", nil)

	if len(pendencias) == 0 {
		return c.JSON(fiber.Map{"message": "Nenhuma saída pendente hoje", "total": 0})
	}

	if err := h.mailer.EnviarPendenciasDeSaida(hoje, pendencias); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao enviar o e-mail de pendências"})
	}

	return c.JSON(fiber.Map{
		"message": "Aviso de pendências enviado",
		"total":   len(pendencias),
	})
}
