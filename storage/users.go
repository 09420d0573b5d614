package storage

import (
	"errors"
	"fmt"
	"time"

	"restaurant-menu-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUser persists a new user, stamping identity and timestamps.
func (s *Store) CreateUser(user models.User) (*models.User, error) {
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// GetUser looks a user up by id.
func (s *Store) GetUser(id string) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	return &user, nil
}

// GetUserByUsername looks a user up by username.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	return &user, nil
}
