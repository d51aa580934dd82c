package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ponto-backend/internal/model"
)

// HoraVazia é o sentinela exibido quando não há duração calculável.
const HoraVazia = "--:--"

// RN01 - Cálculo de horas trabalhadas.
// Recebe horários "HH:mm" ou "HH:mm:ss" e devolve a diferença em "HH:mm".
// Entrada ou saída ausente, ou saída anterior à entrada (turno virando a
// madrugada não é tratado), devolve o sentinela.
func CalcularHorasTrabalhadas(entrada, saida *string) string {
	if entrada == nil || saida == nil {
		return HoraVazia
	}

	entradaMin, ok := minutosDoDia(*entrada)
	if !ok {
		return HoraVazia
	}
	saidaMin, ok := minutosDoDia(*saida)
	if !ok {
		return HoraVazia
	}

	diff := saidaMin - entradaMin
	if diff < 0 {
		return HoraVazia
	}

	return fmt.Sprintf("%02d:%02d", diff/60, diff%60)
}

// minutosDoDia converte "HH:mm[:ss]" em minutos desde a meia-noite.
// Segundos são ignorados.
func minutosDoDia(hora string) (int, bool) {
	partes := strings.Split(hora, ":")
	if len(partes) < 2 {
		return 0, false
	}
	h, errH := strconv.Atoi(partes[0])
	m, errM := strconv.Atoi(partes[1])
	if errH != nil || errM != nil {
		return 0, false
	}
	return h*60 + m, true
}

// RN02 - Determina o status do ponto a partir das marcações, do turno e do
// instante de referência. Função pura: o "agora" vem sempre de fora.
//
// A comparação de horários é lexicográfica sobre "HH:mm" com zero à esquerda.
// Sem turno atribuído não existe prazo, então nunca resulta em faltou nem em
// saida_nao_registrada.
func DeterminarStatus(entrada, saida *string, shift *model.Shift, referencia time.Time) model.StatusPonto {
	agora := referencia.Format("15:04")

	if entrada == nil {
		if shift != nil && agora > shift.HoraFim {
			return model.StatusFaltou
		}
		return model.StatusAguardandoEntrada
	}

	if saida == nil {
		if shift != nil && agora > shift.HoraFim {
			return model.StatusSaidaNaoRegistrada
		}
		return model.StatusTrabalhando
	}

	return model.StatusFinalizado
}

// FormatarHora devolve o horário para exibição, ou o sentinela se ausente.
func FormatarHora(hora *string) string {
	if hora == nil {
		return HoraVazia
	}
	return *hora
}
