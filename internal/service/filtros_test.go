package service

import (
	"testing"

	"ponto-backend/internal/model"
)

func registrosDeExemplo() []Registro {
	turno1 := uint(1)
	turno2 := uint(2)
	return []Registro{
		{ID: "1", UserID: 1, UserName: "Ana Souza", Data: "2025-03-09", Entrada: str("08:00"), Saida: str("17:00"), Status: model.StatusFinalizado, ShiftID: &turno1},
		{ID: "2", UserID: 2, UserName: "Bruno Lima", Data: "2025-03-10", Entrada: str("09:15"), Status: model.StatusTrabalhando, ShiftID: &turno1},
		{ID: "3", UserID: 3, UserName: "Carla Dias", Data: "2025-03-10", Entrada: str("07:55"), Status: model.StatusTrabalhando, ShiftID: &turno2},
		{ID: "sem-registro-4-1", UserID: 4, UserName: "Daniel Rocha", Data: "2025-03-10", Status: model.StatusAguardandoEntrada, ShiftID: &turno1},
	}
}

func TestFiltrarRegistrosSemFiltroSoReordena(t *testing.T) {
	registros := registrosDeExemplo()

	filtrados := FiltrarRegistros(registros, "", model.StatusTodos, "", nil)

	if len(filtrados) != len(registros) {
		t.Fatalf("filtros neutros não podem descartar registros: veio %d de %d", len(filtrados), len(registros))
	}
	// Data desc; dentro do mesmo dia, entrada desc com ausente por último.
	ordem := []string{"2", "3", "sem-registro-4-1", "1"}
	for i, quer := range ordem {
		if filtrados[i].ID != quer {
			t.Errorf("posição %d: veio id %q, esperado %q", i, filtrados[i].ID, quer)
		}
	}
}

func TestFiltrarRegistrosPorNome(t *testing.T) {
	filtrados := FiltrarRegistros(registrosDeExemplo(), "bRuNo", model.StatusTodos, "", nil)

	if len(filtrados) != 1 || filtrados[0].UserName != "Bruno Lima" {
		t.Errorf("busca por nome deveria ignorar caixa, veio %+v", filtrados)
	}
}

func TestFiltrarRegistrosPorStatus(t *testing.T) {
	filtrados := FiltrarRegistros(registrosDeExemplo(), "", model.StatusTrabalhando, "", nil)

	if len(filtrados) != 2 {
		t.Fatalf("esperado 2 trabalhando, veio %d", len(filtrados))
	}
	for _, r := range filtrados {
		if r.Status != model.StatusTrabalhando {
			t.Errorf("status %q passou pelo filtro", r.Status)
		}
	}
}

func TestFiltrarRegistrosPorData(t *testing.T) {
	filtrados := FiltrarRegistros(registrosDeExemplo(), "", model.StatusTodos, "2025-03-09", nil)

	if len(filtrados) != 1 || filtrados[0].ID != "1" {
		t.Errorf("filtro de data exata falhou: %+v", filtrados)
	}
}

func TestFiltrarRegistrosPorTurno(t *testing.T) {
	turno2 := uint(2)
	filtrados := FiltrarRegistros(registrosDeExemplo(), "", model.StatusTodos, "", &turno2)

	if len(filtrados) != 1 || filtrados[0].ID != "3" {
		t.Errorf("filtro de turno falhou: %+v", filtrados)
	}
}

func TestFiltrarRegistrosCombinaFiltros(t *testing.T) {
	turno1 := uint(1)
	filtrados := FiltrarRegistros(registrosDeExemplo(), "a", model.StatusTrabalhando, "2025-03-10", &turno1)

	// "a" casa com vários nomes, mas só Bruno Lima é trabalhando no turno 1.
	if len(filtrados) != 1 || filtrados[0].ID != "2" {
		t.Errorf("combinação de filtros em AND falhou: %+v", filtrados)
	}
}

func TestCalcularMetricasStatusVazio(t *testing.T) {
	metricas := CalcularMetricasStatus(nil)

	zeros := []Metrica{
		metricas.Aguardando, metricas.Trabalhando, metricas.Saindo,
		metricas.Finalizado, metricas.Faltou,
	}
	for i, m := range zeros {
		if m.Count != 0 || m.Percentage != 0 {
			t.Errorf("categoria %d: esperado 0/0%% em coleção vazia, veio %+v", i, m)
		}
	}
}

func TestCalcularMetricasStatus(t *testing.T) {
	registros := []Registro{
		{Status: model.StatusAguardandoEntrada},
		{Status: model.StatusTrabalhando},
		{Status: model.StatusTrabalhando},
		{Status: model.StatusAguardandoSaida},
		{Status: model.StatusSaidaNaoRegistrada},
		{Status: model.StatusFinalizado},
	}

	metricas := CalcularMetricasStatus(registros)

	if metricas.Saindo.Count != 2 {
		t.Errorf("aguardando_saida e saida_nao_registrada devem somar em saindo: veio %d", metricas.Saindo.Count)
	}
	if metricas.Trabalhando.Count != 2 || metricas.Trabalhando.Percentage != 33 {
		t.Errorf("trabalhando = %+v, esperado 2 registros e 33%%", metricas.Trabalhando)
	}
	if metricas.Aguardando.Percentage != 17 {
		t.Errorf("aguardando = %d%%, esperado 17%% (arredondamento)", metricas.Aguardando.Percentage)
	}
	if metricas.Faltou.Count != 0 || metricas.Faltou.Percentage != 0 {
		t.Errorf("faltou deveria zerar: %+v", metricas.Faltou)
	}
}

func TestCalcularEstatisticas(t *testing.T) {
	registros := []Registro{
		{Status: model.StatusTrabalhando},
		{Status: model.StatusTrabalhando},
		{Status: model.StatusFinalizado},
		{Status: model.StatusAguardandoEntrada},
		{Status: model.StatusFaltou},
	}

	stats := CalcularEstatisticas(registros)

	if stats.TotalRegistros != 5 {
		t.Errorf("total = %d, esperado 5", stats.TotalRegistros)
	}
	if stats.TrabalhandoAgora != 2 {
		t.Errorf("trabalhando agora = %d, esperado 2", stats.TrabalhandoAgora)
	}
	if stats.FinalizadosHoje != 1 {
		t.Errorf("finalizados = %d, esperado 1", stats.FinalizadosHoje)
	}
	if stats.AguardandoEntrada != 1 {
		t.Errorf("aguardando entrada = %d, esperado 1", stats.AguardandoEntrada)
	}
}

func TestCalcularEstatisticasVazio(t *testing.T) {
	stats := CalcularEstatisticas(nil)
	if stats != (Estatisticas{}) {
		t.Errorf("coleção vazia deveria zerar tudo: %+v", stats)
	}
}
