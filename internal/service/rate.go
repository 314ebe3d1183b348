package service

import (
	"context"
	"errors"
	"fmt"
	"timesheets/internal/model"

	"gorm.io/gorm"
)

type RateService struct{ db *gorm.DB }

func NewRateService(db *gorm.DB) *RateService { return &RateService{db: db} }

func (s *RateService) Create(ctx context.Context, r *model.Rate) (*model.Rate, error) {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, fmt.Errorf("insert rate: %w", err)
	}
	return r, nil
}

func (s *RateService) List(ctx context.Context) ([]model.Rate, error) {
	var rates []model.Rate
	if err := s.db.WithContext(ctx).Order("id").Find(&rates).Error; err != nil {
		return nil, fmt.Errorf("query rates: %w", err)
	}
	return rates, nil
}

// ForUserClient returns the most recent rate of a user for a client.
func (s *RateService) ForUserClient(ctx context.Context, userID, clientID int) (*model.Rate, error) {
	var r model.Rate
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND client_id = ?", userID, clientID).
		Order("valid_from DESC").
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query rate: %w", err)
	}
	return &r, nil
}
