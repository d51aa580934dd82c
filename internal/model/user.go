package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Nome     string `json:"nome"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:user"` // admin / user

	// Turnos atribuídos ao colaborador (zero, um ou vários)
	Shifts []Shift `json:"shifts" gorm:"many2many:user_shifts;"`
}
