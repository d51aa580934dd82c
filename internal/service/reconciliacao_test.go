package service

import (
	"reflect"
	"testing"
	"time"

	"gorm.io/gorm"

	"ponto-backend/internal/model"
)

const diaTeste = "2025-03-10"

func instante(t *testing.T, valor string) time.Time {
	t.Helper()
	ref, err := time.Parse("2006-01-02 15:04", valor)
	if err != nil {
		t.Fatalf("instante inválido no teste: %v", err)
	}
	return ref
}

func turnoManha() model.Shift {
	return model.Shift{Model: gorm.Model{ID: 1}, Nome: "Manhã", HoraInicio: "08:00", HoraFim: "12:00"}
}

func turnoTarde() model.Shift {
	return model.Shift{Model: gorm.Model{ID: 2}, Nome: "Tarde", HoraInicio: "13:00", HoraFim: "17:00"}
}

func pontoReal(id uint, userID uint, shiftID *uint, entrada, saida *string, status model.StatusPonto, criadoEm time.Time) model.Ponto {
	return model.Ponto{
		Model:   gorm.Model{ID: id, CreatedAt: criadoEm},
		UserID:  userID,
		Data:    diaTeste,
		Entrada: entrada,
		Saida:   saida,
		Status:  status,
		ShiftID: shiftID,
	}
}

func TestReconciliarSinteticoPorTurno(t *testing.T) {
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{turnoManha(), turnoTarde()}},
	}

	registros := Reconciliar(nil, colaboradores, diaTeste, instante(t, diaTeste+" 09:00"))

	if len(registros) != 2 {
		t.Fatalf("esperado 2 registros sintéticos (um por turno), veio %d", len(registros))
	}
	for _, r := range registros {
		if !r.Sintetico() {
			t.Errorf("registro %q deveria ser sintético", r.ID)
		}
		if r.Status != model.StatusAguardandoEntrada {
			t.Errorf("registro %q: status = %q, esperado aguardando_entrada", r.ID, r.Status)
		}
		if r.UserName != "Ana Souza" {
			t.Errorf("registro %q: nome não propagado", r.ID)
		}
	}
	if registros[0].ID != "sem-registro-7-1" || registros[1].ID != "sem-registro-7-2" {
		t.Errorf("ids sintéticos inesperados: %q, %q", registros[0].ID, registros[1].ID)
	}
}

func TestReconciliarSinteticoSemTurno(t *testing.T) {
	colaboradores := []Colaborador{{ID: 3, Nome: "Bruno Lima"}}

	// Mesmo tarde da noite: sem turno não há prazo, nunca vira faltou.
	registros := Reconciliar(nil, colaboradores, diaTeste, instante(t, diaTeste+" 23:30"))

	if len(registros) != 1 {
		t.Fatalf("esperado 1 placeholder, veio %d", len(registros))
	}
	r := registros[0]
	if r.ID != "sem-registro-3-0" {
		t.Errorf("id sintético = %q, esperado sem-registro-3-0", r.ID)
	}
	if r.Status != model.StatusAguardandoEntrada {
		t.Errorf("status = %q, esperado aguardando_entrada", r.Status)
	}
	if r.ShiftID != nil {
		t.Errorf("placeholder sem turno não deveria ter shift_id")
	}
}

func TestReconciliarSinteticoFaltouDepoisDoTurno(t *testing.T) {
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{turnoManha()}},
	}

	registros := Reconciliar(nil, colaboradores, diaTeste, instante(t, diaTeste+" 12:30"))

	if len(registros) != 1 {
		t.Fatalf("esperado 1 registro, veio %d", len(registros))
	}
	if registros[0].Status != model.StatusFaltou {
		t.Errorf("status = %q, esperado faltou após o fim do turno", registros[0].Status)
	}
}

func TestReconciliarDataPassadaAvaliaNoFimDoDia(t *testing.T) {
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{turnoManha()}},
	}

	// Olhando um dia anterior às 06:00 de hoje: a referência vira 23:59
	// daquele dia, então a ausência conta como falta.
	registros := Reconciliar(nil, colaboradores, diaTeste, instante(t, "2025-03-12 06:00"))

	if registros[0].Status != model.StatusFaltou {
		t.Errorf("status = %q, esperado faltou para data passada", registros[0].Status)
	}
}

func TestReconciliarDataFuturaAvaliaNoInicioDoDia(t *testing.T) {
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{turnoManha()}},
	}

	registros := Reconciliar(nil, colaboradores, diaTeste, instante(t, "2025-03-08 18:00"))

	if registros[0].Status != model.StatusAguardandoEntrada {
		t.Errorf("status = %q, esperado aguardando_entrada para data futura", registros[0].Status)
	}
}

func TestReconciliarLegadoReatribuidoAoUnicoTurno(t *testing.T) {
	manha := turnoManha()
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{manha}},
	}
	pontos := []model.Ponto{
		pontoReal(41, 7, nil, str("08:02:11"), nil, model.StatusTrabalhando, instante(t, diaTeste+" 08:02")),
	}

	registros := Reconciliar(pontos, colaboradores, diaTeste, instante(t, diaTeste+" 09:00"))

	if len(registros) != 1 {
		t.Fatalf("esperado 1 registro, veio %d", len(registros))
	}
	r := registros[0]
	if r.ShiftID == nil || *r.ShiftID != manha.ID {
		t.Errorf("registro legado deveria ser exibido sob o único turno do colaborador")
	}
	if r.Status != model.StatusTrabalhando {
		t.Errorf("status = %q, esperado trabalhando", r.Status)
	}
}

func TestReconciliarLegadoComVariosTurnosFicaSemTurno(t *testing.T) {
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{turnoManha(), turnoTarde()}},
	}
	pontos := []model.Ponto{
		pontoReal(41, 7, nil, str("08:02:11"), nil, model.StatusTrabalhando, instante(t, diaTeste+" 08:02")),
	}

	registros := Reconciliar(pontos, colaboradores, diaTeste, instante(t, diaTeste+" 09:00"))

	if len(registros) != 1 {
		t.Fatalf("com registro real não deve haver placeholder extra, veio %d", len(registros))
	}
	if registros[0].ShiftID != nil {
		t.Errorf("com dois turnos o registro legado deve permanecer sem turno")
	}
}

func TestReconciliarDeduplicaPeloMaisRecente(t *testing.T) {
	manha := turnoManha()
	shiftID := manha.ID
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{manha}},
	}
	pontos := []model.Ponto{
		pontoReal(41, 7, &shiftID, str("08:00:00"), nil, model.StatusTrabalhando, instante(t, diaTeste+" 08:00")),
		pontoReal(42, 7, &shiftID, str("08:01:00"), nil, model.StatusTrabalhando, instante(t, diaTeste+" 08:01")),
	}

	registros := Reconciliar(pontos, colaboradores, diaTeste, instante(t, diaTeste+" 09:00"))

	if len(registros) != 1 {
		t.Fatalf("linhas duplicadas deveriam colapsar em 1, veio %d", len(registros))
	}
	if registros[0].ID != "42" {
		t.Errorf("deveria valer a linha criada por último, veio id %q", registros[0].ID)
	}
}

func TestReconciliarSobrepoeTrabalhandoVencido(t *testing.T) {
	manha := turnoManha()
	shiftID := manha.ID
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{manha}},
	}
	pontos := []model.Ponto{
		pontoReal(41, 7, &shiftID, str("08:00:00"), nil, model.StatusTrabalhando, instante(t, diaTeste+" 08:00")),
	}

	registros := Reconciliar(pontos, colaboradores, diaTeste, instante(t, diaTeste+" 12:30"))

	if registros[0].Status != model.StatusSaidaNaoRegistrada {
		t.Errorf("trabalhando vencido deveria exibir saida_nao_registrada, veio %q", registros[0].Status)
	}
}

func TestReconciliarPreservaStatusAdministrativo(t *testing.T) {
	manha := turnoManha()
	shiftID := manha.ID
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{manha}},
	}
	// aguardando_saida só nasce de edição administrativa; a reconciliação
	// não pode sobrescrevê-lo.
	pontos := []model.Ponto{
		pontoReal(41, 7, &shiftID, str("08:00:00"), nil, model.StatusAguardandoSaida, instante(t, diaTeste+" 08:00")),
	}

	registros := Reconciliar(pontos, colaboradores, diaTeste, instante(t, diaTeste+" 12:30"))

	if registros[0].Status != model.StatusAguardandoSaida {
		t.Errorf("status administrativo sobrescrito: veio %q", registros[0].Status)
	}
}

func TestReconciliarIdempotente(t *testing.T) {
	manha := turnoManha()
	shiftID := manha.ID
	colaboradores := []Colaborador{
		{ID: 7, Nome: "Ana Souza", Shifts: []model.Shift{manha, turnoTarde()}},
		{ID: 8, Nome: "Bruno Lima"},
	}
	pontos := []model.Ponto{
		pontoReal(41, 7, &shiftID, str("08:00:00"), str("12:01:00"), model.StatusFinalizado, instante(t, diaTeste+" 08:00")),
	}
	agora := instante(t, diaTeste+" 14:00")

	primeira := Reconciliar(pontos, colaboradores, diaTeste, agora)
	segunda := Reconciliar(pontos, colaboradores, diaTeste, agora)

	if !reflect.DeepEqual(primeira, segunda) {
		t.Errorf("reconciliação não é idempotente:\n1ª: %+v\n2ª: %+v", primeira, segunda)
	}
}

// Cenário completo: placeholder -> entrada registrada -> saída registrada.
func TestReconciliarCicloDeUmDia(t *testing.T) {
	turno := model.Shift{Model: gorm.Model{ID: 5}, Nome: "Comercial", HoraInicio: "08:00", HoraFim: "17:00"}
	shiftID := turno.ID
	colaboradores := []Colaborador{
		{ID: 9, Nome: "Carla Dias", Shifts: []model.Shift{turno}},
	}

	// 09:00 - nada registrado ainda.
	registros := Reconciliar(nil, colaboradores, diaTeste, instante(t, diaTeste+" 09:00"))
	if len(registros) != 1 || !registros[0].Sintetico() || registros[0].Status != model.StatusAguardandoEntrada {
		t.Fatalf("antes da entrada: esperado 1 sintético aguardando_entrada, veio %+v", registros)
	}

	// 09:10 - entrada gravada às 09:05.
	pontos := []model.Ponto{
		pontoReal(77, 9, &shiftID, str("09:05"), nil, model.StatusTrabalhando, instante(t, diaTeste+" 09:05")),
	}
	registros = Reconciliar(pontos, colaboradores, diaTeste, instante(t, diaTeste+" 09:10"))
	if len(registros) != 1 || registros[0].Sintetico() || registros[0].Status != model.StatusTrabalhando {
		t.Fatalf("depois da entrada: esperado 1 registro real trabalhando, veio %+v", registros)
	}

	// 17:15 - saída gravada às 17:10.
	pontos[0].Saida = str("17:10")
	pontos[0].Status = model.StatusFinalizado
	registros = Reconciliar(pontos, colaboradores, diaTeste, instante(t, diaTeste+" 17:15"))
	if registros[0].Status != model.StatusFinalizado {
		t.Fatalf("depois da saída: esperado finalizado, veio %q", registros[0].Status)
	}
	if horas := CalcularHorasTrabalhadas(registros[0].Entrada, registros[0].Saida); horas != "08:05" {
		t.Errorf("horas trabalhadas = %q, esperado 08:05", horas)
	}
}
