package service

import (
	"math"
	"sort"
	"strings"

	"ponto-backend/internal/model"
)

// Metrica é a contagem e o percentual de uma categoria de status.
type Metrica struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// MetricasStatus agrupa as cinco categorias exibidas no painel.
// aguardando_saida e saida_nao_registrada entram juntas em "saindo".
type MetricasStatus struct {
	Aguardando  Metrica `json:"aguardando"`
	Trabalhando Metrica `json:"trabalhando"`
	Saindo      Metrica `json:"saindo"`
	Finalizado  Metrica `json:"finalizado"`
	Faltou      Metrica `json:"faltou"`
}

// Estatisticas são os contadores dos cards do dashboard. A coleção recebida
// já deve estar restrita ao dia de interesse; aqui não há filtro de data.
type Estatisticas struct {
	TotalRegistros    int `json:"total_registros"`
	TrabalhandoAgora  int `json:"trabalhando_agora"`
	FinalizadosHoje   int `json:"finalizados_hoje"`
	AguardandoEntrada int `json:"aguardando_entrada"`
}

// FiltrarRegistros aplica os quatro filtros do painel (todos em AND):
// busca por nome (substring, sem distinção de caixa), status exato
// ("todos" libera), data exata ("" libera) e turno exato (nil libera).
// Ordena do mais recente para o mais antigo: data desc e, dentro do mesmo
// dia, entrada desc (entrada ausente ordena por último).
func FiltrarRegistros(registros []Registro, busca string, status model.StatusPonto, data string, shiftID *uint) []Registro {
	busca = strings.ToLower(busca)

	filtrados := make([]Registro, 0, len(registros))
	for _, r := range registros {
		if busca != "" && !strings.Contains(strings.ToLower(r.UserName), busca) {
			continue
		}
		if status != "" && status != model.StatusTodos && r.Status != status {
			continue
		}
		if data != "" && r.Data != data {
			continue
		}
		if shiftID != nil && (r.ShiftID == nil || *r.ShiftID != *shiftID) {
			continue
		}
		filtrados = append(filtrados, r)
	}

	sort.SliceStable(filtrados, func(i, j int) bool {
		if filtrados[i].Data != filtrados[j].Data {
			return filtrados[i].Data > filtrados[j].Data
		}
		return entradaOuVazia(filtrados[i]) > entradaOuVazia(filtrados[j])
	})

	return filtrados
}

func entradaOuVazia(r Registro) string {
	if r.Entrada == nil {
		return ""
	}
	return *r.Entrada
}

// CalcularMetricasStatus conta e percentualiza cada categoria. Com coleção
// vazia o divisor é travado em 1, então tudo sai 0 sem divisão por zero.
func CalcularMetricasStatus(registros []Registro) MetricasStatus {
	total := len(registros)
	divisor := total
	if divisor == 0 {
		divisor = 1
	}

	aguardando := 0
	trabalhando := 0
	saindo := 0
	finalizado := 0
	faltou := 0
	for _, r := range registros {
		switch r.Status {
		case model.StatusAguardandoEntrada:
			aguardando++
		case model.StatusTrabalhando:
			trabalhando++
		case model.StatusAguardandoSaida, model.StatusSaidaNaoRegistrada:
			saindo++
		case model.StatusFinalizado:
			finalizado++
		case model.StatusFaltou:
			faltou++
		}
	}

	pct := func(n int) int {
		return int(math.Round(float64(n) / float64(divisor) * 100))
	}

	return MetricasStatus{
		Aguardando:  Metrica{Count: aguardando, Percentage: pct(aguardando)},
		Trabalhando: Metrica{Count: trabalhando, Percentage: pct(trabalhando)},
		Saindo:      Metrica{Count: saindo, Percentage: pct(saindo)},
		Finalizado:  Metrica{Count: finalizado, Percentage: pct(finalizado)},
		Faltou:      Metrica{Count: faltou, Percentage: pct(faltou)},
	}
}

// CalcularEstatisticas monta os contadores dos cards do dashboard.
func CalcularEstatisticas(registros []Registro) Estatisticas {
	stats := Estatisticas{TotalRegistros: len(registros)}
	for _, r := range registros {
		switch r.Status {
		case model.StatusTrabalhando:
			stats.TrabalhandoAgora++
		case model.StatusFinalizado:
			stats.FinalizadosHoje++
		case model.StatusAguardandoEntrada:
			stats.AguardandoEntrada++
		}
	}
	return stats
}
