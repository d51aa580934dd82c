package model

import "gorm.io/gorm"

// StatusPonto é o conjunto fechado de status de um registro de ponto.
// O status persistido pode ficar defasado (ex: trabalhando depois do fim do
// turno) e é recalculado contra o horário de referência antes de exibir.
type StatusPonto string

const (
	StatusAguardandoEntrada StatusPonto = "aguardando_entrada"
	StatusTrabalhando       StatusPonto = "trabalhando"
	// aguardando_saida nunca é produzido pela derivação; só entra por edição
	// administrativa (justificativa), mas continua filtrável e contabilizado.
	StatusAguardandoSaida    StatusPonto = "aguardando_saida"
	StatusFinalizado         StatusPonto = "finalizado"
	StatusFaltou             StatusPonto = "faltou"
	StatusSaidaNaoRegistrada StatusPonto = "saida_nao_registrada"

	// Curinga aceito apenas nos filtros, nunca persistido.
	StatusTodos StatusPonto = "todos"
)

func (s StatusPonto) Valido() bool {
	switch s {
	case StatusAguardandoEntrada, StatusTrabalhando, StatusAguardandoSaida,
		StatusFinalizado, StatusFaltou, StatusSaidaNaoRegistrada:
		return true
	}
	return false
}

type Ponto struct {
	gorm.Model
	UserID      uint        `json:"user_id" gorm:"uniqueIndex:idx_ponto_user_data_shift"`
	Data        string      `json:"data" gorm:"uniqueIndex:idx_ponto_user_data_shift"` // Formato "YYYY-MM-DD"
	Entrada     *string     `json:"entrada"`                                           // "HH:mm:ss" ou null
	Saida       *string     `json:"saida"`                                             // "HH:mm:ss" ou null
	Status      StatusPonto `json:"status"`
	Observacoes *string     `json:"observacoes"`
	ShiftID     *uint       `json:"shift_id" gorm:"uniqueIndex:idx_ponto_user_data_shift"` // null em registros legados sem turno

	// Relações
	User  User   `json:"user" gorm:"foreignKey:UserID"`
	Shift *Shift `json:"shift" gorm:"foreignKey:ShiftID"`
}
