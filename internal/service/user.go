package service

import (
	"context"
	"errors"
	"fmt"
	"timesheets/internal/model"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Create inserts a user; a username collision reports created=false.
func (s *UserService) Create(ctx context.Context, username string) (*model.AppUser, bool, error) {
	u := model.AppUser{Username: username}
	err := s.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("insert user: %w", err)
	}
	return &u, true, nil
}

func (s *UserService) List(ctx context.Context) ([]model.AppUser, error) {
	var users []model.AppUser
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*model.AppUser, error) {
	var u model.AppUser
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user %d: %w", id, err)
	}
	return &u, nil
}
