package storage

import (
	"fmt"
	"time"

	"restaurant-menu-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToCart merges-or-inserts a cart line for the given menu item. The line's
// identity is the referenced menu item, not the cart item's own id: adding an
// item already in the cart increments its quantity instead of duplicating the
// line. The whole upsert is one conditional INSERT so two concurrent adds of
// the same item can never both observe "absent" and create two lines.
func (s *Store) AddToCart(menuItemID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	now := time.Now()
	line := models.CartItem{
		ID:         uuid.NewString(),
		MenuItemID: menuItemID,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": now,
		}),
	}).Create(&line).Error
	if err != nil {
		return nil, fmt.Errorf("upsert cart line: %w", err)
	}

	// The conflict path keeps the existing row's id, so re-read by the
	// merge key to return what is actually stored.
	var stored models.CartItem
	if err := s.db.Where("menu_item_id = ?", menuItemID).Take(&stored).Error; err != nil {
		return nil, fmt.Errorf("read cart line: %w", err)
	}
	return &stored, nil
}

// RemoveFromCart deletes one cart line by its own id. Removing a line that
// is already gone is a silent no-op.
func (s *Store) RemoveFromCart(id string) error {
	if err := s.db.Delete(&models.CartItem{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

// ClearCart deletes every cart line.
func (s *Store) ClearCart() error {
	if err := s.db.Exec("DELETE FROM cart_items").Error; err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// GetCartItems returns the current cart lines, unsorted.
func (s *Store) GetCartItems() ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := s.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	return items, nil
}
