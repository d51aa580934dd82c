package model

import "gorm.io/gorm"

type Shift struct {
	gorm.Model
	Nome       string `json:"nome"`
	HoraInicio string `json:"hora_inicio"` // Formato "HH:mm"
	HoraFim    string `json:"hora_fim"`    // Formato "HH:mm"
}
