package models

import "time"

// CartItem is one aggregated cart line. MenuItemID is a weak reference —
// the cart does not own the menu item's lifecycle. The unique index is what
// makes the merge-or-insert upsert in storage atomic per menu item.
type CartItem struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	MenuItemID string    `json:"menuItemId" gorm:"uniqueIndex;not null"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
