package storage

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"restaurant-menu-api/models"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// GetAllMenuItems reads every partition, concatenates and applies the
// canonical sort. O(total items); the menu is small enough that nothing is
// paginated.
func (s *Store) GetAllMenuItems() ([]models.MenuItem, error) {
	all := []models.MenuItem{}
	for _, key := range s.reg.Keys() {
		var batch []models.MenuItem
		if err := s.db.Table(s.tables[key]).Find(&batch).Error; err != nil {
			return nil, fmt.Errorf("read partition %s: %w", key, err)
		}
		all = append(all, batch...)
	}
	sortMenuItems(all)
	return all, nil
}

// GetMenuItemsByCategory returns the items of one category, accepting legacy
// alias spellings. An unknown category yields an empty slice, not an error —
// old client builds still request keys that no longer exist.
func (s *Store) GetMenuItemsByCategory(category string) ([]models.MenuItem, error) {
	key, ok := s.reg.Canonical(category)
	if !ok {
		return []models.MenuItem{}, nil
	}
	items := []models.MenuItem{}
	if err := s.db.Table(s.tables[key]).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("read partition %s: %w", key, err)
	}
	sortMenuItems(items)
	return items, nil
}

// GetMenuItemByID scans partitions until it finds the item. The id alone
// does not say which partition holds it, so this is a fan-out lookup that
// stops on the first hit. Returns ErrNotFound on a full miss.
func (s *Store) GetMenuItemByID(id string) (*models.MenuItem, error) {
	for _, key := range s.reg.Keys() {
		var item models.MenuItem
		err := s.db.Table(s.tables[key]).Where("id = ?", id).Take(&item).Error
		if err == nil {
			return &item, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("read partition %s: %w", key, err)
		}
	}
	return nil, ErrNotFound
}

// AddMenuItem persists a new item into its category's partition. The
// category may be a legacy alias; the stored record always carries the
// canonical key. Fails with ErrUnknownCategory when no partition matches,
// persisting nothing.
func (s *Store) AddMenuItem(draft models.MenuItem) (*models.MenuItem, error) {
	key, ok := s.reg.Canonical(draft.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, draft.Category)
	}

	now := time.Now()
	draft.ID = uuid.NewString()
	draft.Category = key
	draft.RestaurantID = models.RestaurantID
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if err := s.db.Table(s.tables[key]).Create(&draft).Error; err != nil {
		return nil, fmt.Errorf("insert into partition %s: %w", key, err)
	}
	return &draft, nil
}

// Categories returns the registered canonical keys.
func (s *Store) Categories() []string {
	return s.reg.Keys()
}

// ClearAllMenuItems empties every partition. Maintenance-only: it backs the
// bulk reimport and gives no isolation against concurrent writers.
func (s *Store) ClearAllMenuItems() error {
	for _, key := range s.reg.Keys() {
		if err := s.db.Exec("DELETE FROM " + s.tables[key]).Error; err != nil {
			return fmt.Errorf("clear partition %s: %w", key, err)
		}
	}
	return nil
}

// FixVegClassification is an extension point for a future reclassification
// pass over the veg flags. It currently touches nothing.
func (s *Store) FixVegClassification() (updated int, details []string, err error) {
	return 0, []string{}, nil
}

// sortMenuItems applies the canonical menu ordering: vegetarian items first,
// then locale-aware ascending name, then id so duplicate names still order
// deterministically.
func sortMenuItems(items []models.MenuItem) {
	c := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsVeg != b.IsVeg {
			return a.IsVeg
		}
		if cmp := c.CompareString(a.Name, b.Name); cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})
}
