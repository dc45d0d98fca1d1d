package services

import (
	"errors"
	"fmt"

	"hotel-management/models"

	"gorm.io/gorm"
)

// CatalogService resolves rooms and customers together with their owning
// types. Read-only; booking and pricing consume it.
type CatalogService struct {
	DB *gorm.DB

	// StrictCustomers makes ResolveCustomers fail on unknown ids instead of
	// silently dropping them from the result (the reference behavior).
	StrictCustomers bool
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ResolveRoom loads a room with its room type. db may be a transaction so the
// lookup shares the caller's isolation and row locks.
func (s *CatalogService) ResolveRoom(db *gorm.DB, roomID uint) (models.Room, error) {
	var room models.Room
	if err := db.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, fmt.Errorf("%w: room %d", ErrRoomNotFound, roomID)
		}
		return room, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	return room, nil
}

// ResolveCustomers loads the given customers with their customer types.
func (s *CatalogService) ResolveCustomers(customerIDs []uint) ([]models.Customer, error) {
	if len(customerIDs) == 0 {
		return nil, fmt.Errorf("%w: customerIds must not be empty", ErrValidationFailed)
	}

	var customers []models.Customer
	if err := s.DB.Preload("CustomerType").Where("id IN ?", customerIDs).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	if s.StrictCustomers && len(customers) != len(uniqueIDs(customerIDs)) {
		found := make(map[uint]struct{}, len(customers))
		for _, c := range customers {
			found[c.ID] = struct{}{}
		}
		for _, id := range customerIDs {
			if _, ok := found[id]; !ok {
				return nil, fmt.Errorf("%w: customer %d", ErrCustomerNotFound, id)
			}
		}
	}

	return customers, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
