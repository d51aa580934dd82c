package model

import "gorm.io/gorm"

type AuthorizedDevice struct {
	gorm.Model
	Fingerprint string `json:"fingerprint" gorm:"unique;not null"` // Identificador único do dispositivo
	Nome        string `json:"nome"`                               // Ex: "Computador Recepção"
	ApprovedBy  uint   `json:"approved_by"`                        // Admin que autorizou
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}
