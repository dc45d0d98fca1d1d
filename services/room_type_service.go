package services

import (
	"errors"
	"fmt"

	"hotel-management/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("name").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rt, fmt.Errorf("%w: room type %d", ErrRoomTypeNotFound, id)
		}
		return rt, err
	}
	return rt, nil
}

func (s *RoomTypeService) Update(rt models.RoomType) error {
	return s.DB.Model(&models.RoomType{}).Where("id = ?", rt.ID).Updates(rt).Error
}

// Delete refuses to remove a room type while any room still references it.
func (s *RoomTypeService) Delete(id uint) error {
	var referencing int64
	if err := s.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&referencing).Error; err != nil {
		return err
	}
	if referencing > 0 {
		return fmt.Errorf("%w: %d room(s) still use room type %d", ErrRoomTypeInUse, referencing, id)
	}
	return s.DB.Delete(&models.RoomType{}, id).Error
}
