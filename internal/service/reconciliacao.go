package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"ponto-backend/internal/model"
)

// PrefixoSemRegistro marca registros sintéticos, materializados só para
// exibição quando o colaborador ainda não tem linha persistida no dia.
// O prefixo garante que nunca sejam confundidos com um id real de banco.
const PrefixoSemRegistro = "sem-registro-"

// Colaborador é a entrada do roster: quem aparece no painel, com os turnos
// atribuídos. Passado explicitamente para manter a reconciliação pura.
type Colaborador struct {
	ID     uint
	Nome   string
	Shifts []model.Shift
}

// Registro é a linha já reconciliada que o painel exibe. O ID é string para
// acomodar tanto ids persistidos quanto os marcadores sintéticos.
type Registro struct {
	ID          string            `json:"id"`
	UserID      uint              `json:"user_id"`
	UserName    string            `json:"user_name"`
	Data        string            `json:"data"` // "YYYY-MM-DD"
	Entrada     *string           `json:"entrada"`
	Saida       *string           `json:"saida"`
	Status      model.StatusPonto `json:"status"`
	Observacoes *string           `json:"observacoes"`
	ShiftID     *uint             `json:"shift_id"`
}

// Sintetico informa se o registro não tem linha persistida por trás.
func (r Registro) Sintetico() bool {
	return strings.HasPrefix(r.ID, PrefixoSemRegistro)
}

// ColaboradoresDe converte usuários (com turnos pré-carregados) no roster da
// reconciliação.
func ColaboradoresDe(users []model.User) []Colaborador {
	colaboradores := make([]Colaborador, 0, len(users))
	for _, u := range users {
		colaboradores = append(colaboradores, Colaborador{
			ID:     u.ID,
			Nome:   u.Nome,
			Shifts: u.Shifts,
		})
	}
	return colaboradores
}

// Reconciliar monta a visão do dia: une os registros reais (status reavaliado
// contra o horário de referência) com placeholders sintéticos para cada par
// colaborador/turno ainda sem linha no banco.
//
// Regras:
//   - registro legado sem turno é reatribuído, só para exibição, ao único
//     turno do colaborador quando ele tem exatamente um;
//   - havendo linhas duplicadas para o mesmo (colaborador, turno, dia),
//     vale a criada por último (corrida de inserção no banco);
//   - um status persistido "trabalhando" já vencido vira
//     "saida_nao_registrada" na exibição, sem tocar no banco;
//   - colaborador sem nenhum registro real ganha um placeholder por turno,
//     ou um único placeholder sem turno se não tiver turno atribuído.
//
// Determinística: mesmas entradas, mesma saída.
func Reconciliar(pontos []model.Ponto, colaboradores []Colaborador, data string, agora time.Time) []Registro {
	referencia := horaReferencia(data, agora)

	resultado := make([]Registro, 0, len(colaboradores))
	for _, col := range colaboradores {
		// Particiona os registros reais do colaborador por turno efetivo.
		// Chave 0 = sem turno.
		porTurno := make(map[uint]model.Ponto)
		for _, p := range pontos {
			if p.UserID != col.ID || p.Data != data {
				continue
			}
			chave := uint(0)
			if p.ShiftID != nil {
				chave = *p.ShiftID
			} else if len(col.Shifts) == 1 {
				chave = col.Shifts[0].ID
			}
			atual, existe := porTurno[chave]
			if !existe || p.CreatedAt.After(atual.CreatedAt) {
				porTurno[chave] = p
			}
		}

		if len(porTurno) > 0 {
			chaves := make([]uint, 0, len(porTurno))
			for chave := range porTurno {
				chaves = append(chaves, chave)
			}
			sort.Slice(chaves, func(i, j int) bool { return chaves[i] < chaves[j] })

			for _, chave := range chaves {
				p := porTurno[chave]
				turno := turnoPorID(col.Shifts, chave)

				// Só o sinal de saída não registrada sobrepõe um status
				// defasado; valores administrativos (ex: aguardando_saida)
				// são preservados.
				exibido := p.Status
				derivado := DeterminarStatus(p.Entrada, p.Saida, turno, referencia)
				if exibido == model.StatusTrabalhando && derivado == model.StatusSaidaNaoRegistrada {
					exibido = model.StatusSaidaNaoRegistrada
				}

				var shiftID *uint
				if chave != 0 {
					id := chave
					shiftID = &id
				}

				resultado = append(resultado, Registro{
					ID:          strconv.FormatUint(uint64(p.ID), 10),
					UserID:      col.ID,
					UserName:    col.Nome,
					Data:        p.Data,
					Entrada:     p.Entrada,
					Saida:       p.Saida,
					Status:      exibido,
					Observacoes: p.Observacoes,
					ShiftID:     shiftID,
				})
			}
			continue
		}

		// Nenhum registro real no dia: um placeholder por turno atribuído.
		if len(col.Shifts) == 0 {
			resultado = append(resultado, registroSintetico(col, nil, data, model.StatusAguardandoEntrada))
			continue
		}
		for i := range col.Shifts {
			turno := &col.Shifts[i]
			status := DeterminarStatus(nil, nil, turno, referencia)
			resultado = append(resultado, registroSintetico(col, turno, data, status))
		}
	}

	return resultado
}

func registroSintetico(col Colaborador, turno *model.Shift, data string, status model.StatusPonto) Registro {
	var shiftID *uint
	turnoID := uint(0)
	if turno != nil {
		turnoID = turno.ID
		id := turno.ID
		shiftID = &id
	}
	return Registro{
		ID:       fmt.Sprintf("%s%d-%d", PrefixoSemRegistro, col.ID, turnoID),
		UserID:   col.ID,
		UserName: col.Nome,
		Data:     data,
		Status:   status,
		ShiftID:  shiftID,
	}
}

func turnoPorID(turnos []model.Shift, id uint) *model.Shift {
	for i := range turnos {
		if turnos[i].ID == id {
			return &turnos[i]
		}
	}
	return nil
}

// horaReferencia escolhe o instante de avaliação do status: o próprio "agora"
// para o dia corrente, fim do dia (23:59) para datas passadas e início do dia
// para datas futuras.
func horaReferencia(data string, agora time.Time) time.Time {
	hoje := agora.Format("2006-01-02")
	if data == hoje {
		return agora
	}
	dia, err := time.ParseInLocation("2006-01-02", data, agora.Location())
	if err != nil {
		return agora
	}
	if data < hoje {
		return dia.Add(23*time.Hour + 59*time.Minute)
	}
	return dia
}
