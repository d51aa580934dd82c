package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/internal/service"
	"ponto-backend/internal/ws"
)

type PontoHandler struct {
	pontoRepo  repository.PontoRepository
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	hub        *ws.Hub
}

func NewPontoHandler(pontoRepo repository.PontoRepository, userRepo repository.UserRepository, deviceRepo repository.DeviceRepository, hub *ws.Hub) *PontoHandler {
	return &PontoHandler{pontoRepo: pontoRepo, userRepo: userRepo, deviceRepo: deviceRepo, hub: hub}
}

type MarcacaoRequest struct {
	Fingerprint string `json:"fingerprint"`
	ShiftID     *uint  `json:"shift_id"`
}

// dispositivoAutorizado valida o fingerprint contra os dispositivos
// aprovados pelo admin. Registrar ponto fora deles é bloqueado.
func (h *PontoHandler) dispositivoAutorizado(fingerprint string) bool {
	if fingerprint == "" {
		return false
	}
	device, err := h.deviceRepo.GetByFingerprint(fingerprint)
	if err != nil {
		return false
	}
	return device.IsActive
}

// turnoEfetivo resolve o turno da marcação: o pedido manda, senão o único
// turno do colaborador. Com vários turnos o turno precisa vir no pedido.
func turnoEfetivo(user *model.User, pedido *uint) (*uint, bool) {
	if pedido != nil {
		for _, s := range user.Shifts {
			if s.ID == *pedido {
				id := s.ID
				return &id, true
			}
		}
		return nil, false
	}
	if len(user.Shifts) == 1 {
		id := user.Shifts[0].ID
		return &id, true
	}
	if len(user.Shifts) == 0 {
		return nil, true
	}
	return nil, false
}

func (h *PontoHandler) RegistrarEntrada(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req MarcacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}

	if !h.dispositivoAutorizado(req.Fingerprint) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Dispositivo não autorizado para registrar ponto"})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	shiftID, ok := turnoEfetivo(user, req.ShiftID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe em qual dos seus turnos está registrando"})
	}

	agora := time.Now()
	hoje := agora.Format("2006-01-02")

	// Guarda contra dupla entrada no mesmo dia/turno
	if existente, err := h.pontoRepo.GetByUserDateAndShift(userID, hoje, shiftID); err == nil && existente != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Entrada já registrada hoje"})
	}

	entrada := agora.Format("15:04:05")
	ponto := model.Ponto{
		UserID:  userID,
		Data:    hoje,
		Entrada: &entrada,
		Status:  model.StatusTrabalhando,
		ShiftID: shiftID,
	}

	if err := h.pontoRepo.Create(&ponto); err != nil {
		// Corrida entre dois dispositivos: o índice único decide
		if strings.Contains(err.Error(), "Duplicate entry") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Entrada já registrada hoje"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao registrar entrada"})
	}

	h.hub.Notificar(ws.Evento{Tipo: "entrada_registrada", UserID: userID, Data: hoje})

	return c.JSON(fiber.Map{
		"message": "Entrada registrada com sucesso!",
		"data":    ponto,
	})
}

func (h *PontoHandler) RegistrarSaida(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req MarcacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}

	if !h.dispositivoAutorizado(req.Fingerprint) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Dispositivo não autorizado"})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	shiftID, ok := turnoEfetivo(user, req.ShiftID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe em qual dos seus turnos está registrando"})
	}

	agora := time.Now()
	hoje := agora.Format("2006-01-02")

	ponto, err := h.pontoRepo.GetByUserDateAndShift(userID, hoje, shiftID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Você ainda não registrou entrada hoje"})
	}
	if ponto.Saida != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Saída já registrada hoje"})
	}

	saida := agora.Format("15:04:05")
	ponto.Saida = &saida
	ponto.Status = model.StatusFinalizado

	if err := h.pontoRepo.Update(ponto); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao registrar saída"})
	}

	h.hub.Notificar(ws.Evento{Tipo: "saida_registrada", UserID: userID, Data: hoje})

	return c.JSON(fiber.Map{
		"message": "Saída registrada com sucesso!",
		"data":    ponto,
		"horas_trabalhadas": service.CalcularHorasTrabalhadas(ponto.Entrada, ponto.Saida),
	})
}

// GetStatusHoje devolve a marcação do dia com o status reavaliado contra o
// horário atual (o status persistido pode estar defasado).
func (h *PontoHandler) GetStatusHoje(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	agora := time.Now()
	hoje := agora.Format("2006-01-02")

	pontos, err := h.pontoRepo.GetByDate(hoje)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao consultar o ponto de hoje"})
	}
	meus := make([]model.Ponto, 0, 1)
	for _, p := range pontos {
		if p.UserID == userID {
			meus = append(meus, p)
		}
	}

	registros := service.Reconciliar(meus, service.ColaboradoresDe([]model.User{*user}), hoje, agora)

	return c.JSON(fiber.Map{
		"message": "Status de hoje",
		"data":    registros,
		"shifts":  user.Shifts,
	})
}

func (h *PontoHandler) GetHistorico(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	mes := c.Query("mes")
	ano := c.Query("ano")

	var pontos []model.Ponto
	var err error
	if mes != "" && ano != "" {
		if len(mes) == 1 {
			mes = "0" + mes
		}
		pontos, err = h.pontoRepo.GetByUserAndMonth(userID, mes, ano)
	} else {
		pontos, err = h.pontoRepo.GetHistory(userID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar histórico"})
	}

	// Horas trabalhadas calculadas por linha para a listagem
	historico := make([]fiber.Map, 0, len(pontos))
	for _, p := range pontos {
		historico = append(historico, fiber.Map{
			"ponto":             p,
			"horas_trabalhadas": service.CalcularHorasTrabalhadas(p.Entrada, p.Saida),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Histórico carregado",
		"data":    historico,
	})
}

type JustificarRequest struct {
	Observacoes string             `json:"observacoes" validate:"required"`
	Status      *model.StatusPonto `json:"status"`
}

// JustificarPonto é a única porta de entrada para status administrativos
// (inclusive aguardando_saida, que a derivação nunca produz).
func (h *PontoHandler) JustificarPonto(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req JustificarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de dados inválido"})
	}
	if req.Observacoes == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A justificativa não pode ser vazia"})
	}
	if req.Status != nil && !req.Status.Valido() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status inválido"})
	}

	ponto, err := h.pontoRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registro de ponto não encontrado"})
	}

	ponto.Observacoes = &req.Observacoes
	if req.Status != nil {
		ponto.Status = *req.Status
	}

	if err := h.pontoRepo.Update(ponto); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar justificativa"})
	}

	h.hub.Notificar(ws.Evento{Tipo: "ponto_justificado", UserID: ponto.UserID, Data: ponto.Data})

	return c.JSON(fiber.Map{
		"message": "Falta justificada com sucesso!",
		"data":    ponto,
	})
}
