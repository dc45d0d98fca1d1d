package services

import (
	"hotel-management/models"

	"gorm.io/gorm"
)

type CustomerTypeService struct {
	DB *gorm.DB
}

func NewCustomerTypeService(db *gorm.DB) *CustomerTypeService {
	return &CustomerTypeService{DB: db}
}

func (s *CustomerTypeService) Create(ct *models.CustomerType) error {
	if ct.Coefficient == 0 {
		ct.Coefficient = 1
	}
	return s.DB.Create(ct).Error
}

func (s *CustomerTypeService) GetAll() ([]models.CustomerType, error) {
	var types []models.CustomerType
	err := s.DB.Order("name").Find(&types).Error
	return types, err
}

func (s *CustomerTypeService) Update(ct models.CustomerType) error {
	return s.DB.Model(&models.CustomerType{}).Where("id = ?", ct.ID).Updates(ct).Error
}

func (s *CustomerTypeService) Delete(id uint) error {
	return s.DB.Delete(&models.CustomerType{}, id).Error
}
