package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ponto-backend/internal/model"
)

func SeedAll(db *gorm.DB) {
	// 1. Turnos padrão
	shifts := []model.Shift{
		{Nome: "Manhã", HoraInicio: "07:30", HoraFim: "12:00"},
		{Nome: "Tarde", HoraInicio: "13:00", HoraFim: "18:00"},
		{Nome: "Comercial", HoraInicio: "08:00", HoraFim: "17:00"},
	}
	for i := range shifts {
		db.FirstOrCreate(&shifts[i], model.Shift{Nome: shifts[i].Nome})
	}

	// 2. Admin inicial
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Falha ao gerar hash da senha do admin:", err)
	}
	admin := model.User{
		Nome:     "Administrador",
		Email:    "admin@empresa.com",
		Password: string(hashed),
		Role:     "admin",
	}
	db.FirstOrCreate(&admin, model.User{Email: admin.Email})

	// 3. Colaborador de exemplo no turno comercial
	hashed, err = bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Falha ao gerar hash da senha do colaborador:", err)
	}
	colaborador := model.User{
		Nome:     "Colaborador Exemplo",
		Email:    "colaborador@empresa.com",
		Password: string(hashed),
		Role:     "user",
		Shifts:   []model.Shift{shifts[2]},
	}
	db.FirstOrCreate(&colaborador, model.User{Email: colaborador.Email})

	// 4. Dispositivo autorizado da recepção
	device := model.AuthorizedDevice{
		Fingerprint: "recepcao-terminal-01",
		Nome:        "Computador Recepção",
		ApprovedBy:  admin.ID,
		IsActive:    true,
	}
	db.FirstOrCreate(&device, model.AuthorizedDevice{Fingerprint: device.Fingerprint})

	log.Println("Seed concluído: turnos, usuários e dispositivo padrão criados.")
}
