package service

import (
	"testing"
	"time"

	"ponto-backend/internal/model"
)

func str(s string) *string { return &s }

func hora(t *testing.T, hhmm string) time.Time {
	t.Helper()
	ref, err := time.Parse("2006-01-02 15:04", "2025-03-10 "+hhmm)
	if err != nil {
		t.Fatalf("horário inválido no teste: %v", err)
	}
	return ref
}

func TestCalcularHorasTrabalhadas(t *testing.T) {
	casos := []struct {
		nome    string
		entrada *string
		saida   *string
		quer    string
	}{
		{"jornada comum", str("08:00"), str("17:30"), "09:30"},
		{"jornada quebrada", str("09:05"), str("17:10"), "08:05"},
		{"segundos ignorados", str("08:00:30"), str("16:30:45"), "08:30"},
		{"menos de uma hora", str("08:00"), str("08:45"), "00:45"},
		{"entrada igual saida", str("12:00"), str("12:00"), "00:00"},
		{"saida antes da entrada", str("22:00"), str("06:00"), HoraVazia},
		{"sem entrada", nil, str("17:00"), HoraVazia},
		{"sem saida", str("08:00"), nil, HoraVazia},
		{"sem nada", nil, nil, HoraVazia},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := CalcularHorasTrabalhadas(c.entrada, c.saida)
			if got != c.quer {
				t.Errorf("CalcularHorasTrabalhadas = %q, esperado %q", got, c.quer)
			}
		})
	}
}

func TestDeterminarStatus(t *testing.T) {
	turno := &model.Shift{Nome: "Comercial", HoraInicio: "08:00", HoraFim: "18:00"}

	casos := []struct {
		nome       string
		entrada    *string
		saida      *string
		shift      *model.Shift
		referencia string
		quer       model.StatusPonto
	}{
		{"sem marcacao antes do fim do turno", nil, nil, turno, "17:00", model.StatusAguardandoEntrada},
		{"sem marcacao depois do fim do turno", nil, nil, turno, "19:00", model.StatusFaltou},
		{"sem marcacao exatamente no fim do turno", nil, nil, turno, "18:00", model.StatusAguardandoEntrada},
		{"so entrada dentro do turno", str("08:00"), nil, turno, "17:00", model.StatusTrabalhando},
		{"so entrada depois do fim do turno", str("08:00"), nil, turno, "19:00", model.StatusSaidaNaoRegistrada},
		{"entrada e saida", str("08:00"), str("17:00"), turno, "19:00", model.StatusFinalizado},
		{"entrada e saida sem turno", str("08:00"), str("17:00"), nil, "23:00", model.StatusFinalizado},
		{"sem turno nunca falta", nil, nil, nil, "23:59", model.StatusAguardandoEntrada},
		{"sem turno nunca perde saida", str("08:00"), nil, nil, "23:59", model.StatusTrabalhando},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := DeterminarStatus(c.entrada, c.saida, c.shift, hora(t, c.referencia))
			if got != c.quer {
				t.Errorf("DeterminarStatus = %q, esperado %q", got, c.quer)
			}
		})
	}
}

func TestFormatarHora(t *testing.T) {
	if got := FormatarHora(nil); got != HoraVazia {
		t.Errorf("FormatarHora(nil) = %q, esperado %q", got, HoraVazia)
	}
	if got := FormatarHora(str("09:15")); got != "09:15" {
		t.Errorf("FormatarHora = %q, esperado 09:15", got)
	}
}
