package service

import (
	"context"
	"fmt"
	"timesheets/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.AppUser, error) {
	var u model.AppUser
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return &u, nil
}

// SetPassword stores a bcrypt hash for the user, for provisioning accounts
// when auth is enabled.
func (s *AuthService) SetPassword(ctx context.Context, userID int, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	tx := s.db.WithContext(ctx).Model(&model.AppUser{}).Where("id = ?", userID).Update("password", string(hash))
	if tx.Error != nil {
		return fmt.Errorf("update password: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
