package storage

import (
	"fmt"
	"strings"

	"restaurant-menu-api/categories"
	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the backing database: one physical table per canonical category
// key, a cart table, and a user table. Construct one at process start and
// pass it down; there is no package-level instance.
type Store struct {
	db     *gorm.DB
	reg    *categories.Registry
	tables map[string]string // canonical key -> table name
}

// Open connects to the sqlite database at path, using the default category
// registry, and migrates every table.
func Open(path string) (*Store, error) {
	reg, err := categories.Default()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return New(db, reg)
}

// New wraps an already-open gorm handle. Tests use this with an in-memory
// database.
func New(db *gorm.DB, reg *categories.Registry) (*Store, error) {
	s := &Store{
		db:     db,
		reg:    reg,
		tables: make(map[string]string),
	}
	for _, key := range reg.Keys() {
		s.tables[key] = tableFor(key)
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	for _, key := range s.reg.Keys() {
		if err := s.db.Table(s.tables[key]).AutoMigrate(&models.MenuItem{}); err != nil {
			return err
		}
	}
	return s.db.AutoMigrate(&models.CartItem{}, &models.User{})
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Registry exposes the category registry the store was built with.
func (s *Store) Registry() *categories.Registry {
	return s.reg
}

// tableFor maps a canonical category key to its partition table name.
// Canonical keys only contain lowercase letters, digits and hyphens.
func tableFor(key string) string {
	return "menu_" + strings.ReplaceAll(key, "-", "_")
}
