package models

import "time"

// RestaurantID is the fixed tenant identity stamped on every menu item.
// Single-tenant deployment; kept as a field so the data stays portable.
const RestaurantID = "6874cff2a880250859286de6"

type MenuItem struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        string    `json:"price" gorm:"not null"` // exact decimal string, e.g. "425.00"
	Category     string    `json:"category" gorm:"not null;index"`
	IsVeg        bool      `json:"isVeg" gorm:"default:false"`
	Image        string    `json:"image"`
	IsAvailable  bool      `json:"isAvailable" gorm:"default:true"`
	RestaurantID string    `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
