package models

import (
	"strings"
	"time"
)

// CustomerType carries the pricing coefficient applied to stays. A type named
// "Foreign" (case-insensitive) with coefficient > 1 triggers the foreign
// customer fee.
type CustomerType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;uniqueIndex" json:"name"`
	Coefficient float64 `gorm:"default:1" json:"coefficient"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ct CustomerType) IsForeign() bool {
	return strings.EqualFold(strings.TrimSpace(ct.Name), "foreign")
}
