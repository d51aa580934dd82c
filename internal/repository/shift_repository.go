package repository

import (
	"ponto-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetAll() ([]model.Shift, error)
	GetByID(id uint) (*model.Shift, error)
	GetByIDs(ids []uint) ([]model.Shift, error)
	Create(shift *model.Shift) error
	Update(shift *model.Shift) error
	Delete(id uint) error
	CountPontos(shiftID uint) (int64, error)
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) GetAll() ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Order("hora_inicio asc").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.First(&shift, id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) GetByIDs(ids []uint) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Where("id IN ?", ids).Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepository) Update(shift *model.Shift) error {
	return r.db.Save(shift).Error
}

func (r *shiftRepository) Delete(id uint) error {
	return r.db.Delete(&model.Shift{}, id).Error
}

func (r *shiftRepository) CountPontos(shiftID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Ponto{}).Where("shift_id = ?", shiftID).Count(&count).Error
	return count, err
}
