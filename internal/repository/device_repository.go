package repository

import (
	"ponto-backend/internal/model"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	GetAll() ([]model.AuthorizedDevice, error)
	GetByID(id uint) (*model.AuthorizedDevice, error)
	GetByFingerprint(fingerprint string) (*model.AuthorizedDevice, error)
	Create(device *model.AuthorizedDevice) error
	Update(device *model.AuthorizedDevice) error
	Delete(id uint) error
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db}
}

func (r *deviceRepository) GetAll() ([]model.AuthorizedDevice, error) {
	var devices []model.AuthorizedDevice
	err := r.db.Order("created_at desc").Find(&devices).Error
	return devices, err
}

func (r *deviceRepository) GetByID(id uint) (*model.AuthorizedDevice, error) {
	var device model.AuthorizedDevice
	err := r.db.First(&device, id).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) GetByFingerprint(fingerprint string) (*model.AuthorizedDevice, error) {
	var device model.AuthorizedDevice
	err := r.db.Where("fingerprint = ?", fingerprint).Limit(1).Find(&device).Error
	if err != nil {
		return nil, err
	}
	if device.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &device, nil
}

func (r *deviceRepository) Create(device *model.AuthorizedDevice) error {
	return r.db.Create(device).Error
}

func (r *deviceRepository) Update(device *model.AuthorizedDevice) error {
	return r.db.Save(device).Error
}

func (r *deviceRepository) Delete(id uint) error {
	return r.db.Delete(&model.AuthorizedDevice{}, id).Error
}
