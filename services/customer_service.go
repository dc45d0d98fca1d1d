package services

import (
	"errors"
	"fmt"

	"hotel-management/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) Create(customer *models.Customer) error {
	return s.DB.Create(customer).Error
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.Preload("CustomerType").Order("full_name").Find(&customers).Error
	return customers, err
}

func (s *CustomerService) GetByID(id uint) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Preload("CustomerType").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer, fmt.Errorf("%w: customer %d", ErrCustomerNotFound, id)
		}
		return customer, err
	}
	return customer, nil
}

func (s *CustomerService) Update(customer models.Customer) error {
	return s.DB.Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(customer).Error
}

func (s *CustomerService) Delete(id uint) error {
	return s.DB.Delete(&models.Customer{}, id).Error
}
