package repository

import (
	"ponto-backend/internal/model"

	"gorm.io/gorm"
)

type PontoRepository interface {
	Create(ponto *model.Ponto) error
	Update(ponto *model.Ponto) error
	GetByID(id uint) (*model.Ponto, error)
	GetByUserDateAndShift(userID uint, data string, shiftID *uint) (*model.Ponto, error)
	GetByDate(data string) ([]model.Ponto, error)
	GetHistory(userID uint) ([]model.Ponto, error)
	GetByUserAndMonth(userID uint, mes string, ano string) ([]model.Ponto, error)
	GetByMonth(mes string, ano string) ([]model.Ponto, error)
}

type pontoRepository struct {
	db *gorm.DB
}

func NewPontoRepository(db *gorm.DB) PontoRepository {
	return &pontoRepository{db}
}

func (r *pontoRepository) Create(ponto *model.Ponto) error {
	return r.db.Create(ponto).Error
}

func (r *pontoRepository) Update(ponto *model.Ponto) error {
	return r.db.Save(ponto).Error
}

func (r *pontoRepository) GetByID(id uint) (*model.Ponto, error) {
	var ponto model.Ponto
	err := r.db.Preload("User").Preload("Shift").First(&ponto, id).Error
	if err != nil {
		return nil, err
	}
	return &ponto, nil
}

func (r *pontoRepository) GetByUserDateAndShift(userID uint, data string, shiftID *uint) (*model.Ponto, error) {
	var ponto model.Ponto
	query := r.db.Where("user_id = ? AND data = ?", userID, data)
	if shiftID != nil {
		query = query.Where("shift_id = ?", *shiftID)
	} else {
		query = query.Where("shift_id IS NULL")
	}
	// Find + Limit(1) evita o log "record not found" do GORM
	err := query.Limit(1).Find(&ponto).Error
	if err != nil {
		return nil, err
	}
	if ponto.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ponto, nil
}

func (r *pontoRepository) GetByDate(data string) ([]model.Ponto, error) {
	var pontos []model.Ponto
	err := r.db.Where("data = ?", data).Order("created_at desc").Find(&pontos).Error
	return pontos, err
}

func (r *pontoRepository) GetHistory(userID uint) ([]model.Ponto, error) {
	var pontos []model.Ponto
	err := r.db.Preload("Shift").Where("user_id = ?", userID).Order("data desc").Find(&pontos).Error
	return pontos, err
}

func (r *pontoRepository) GetByUserAndMonth(userID uint, mes string, ano string) ([]model.Ponto, error) {
	var pontos []model.Ponto
	datePattern := ano + "-" + mes + "%"
	err := r.db.Preload("Shift").Where("user_id = ? AND data LIKE ?", userID, datePattern).Order("data asc").Find(&pontos).Error
	return pontos, err
}

func (r *pontoRepository) GetByMonth(mes string, ano string) ([]model.Ponto, error) {
	var pontos []model.Ponto
	datePattern := ano + "-" + mes + "%"
	err := r.db.Preload("User").Preload("Shift").Where("data LIKE ?", datePattern).Order("data asc").Find(&pontos).Error
	return pontos, err
}
