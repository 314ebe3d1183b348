package service

import (
	"context"
	"errors"
	"fmt"
	"timesheets/internal/model"

	"gorm.io/gorm"
)

type EpicService struct{ db *gorm.DB }

func NewEpicService(db *gorm.DB) *EpicService { return &EpicService{db: db} }

func (s *EpicService) Create(ctx context.Context, e *model.Epic) (*model.Epic, error) {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, fmt.Errorf("insert epic: %w", err)
	}
	return e, nil
}

func (s *EpicService) List(ctx context.Context) ([]model.Epic, error) {
	var epics []model.Epic
	if err := s.db.WithContext(ctx).Order("id").Find(&epics).Error; err != nil {
		return nil, fmt.Errorf("query epics: %w", err)
	}
	return epics, nil
}

func (s *EpicService) Get(ctx context.Context, id int) (*model.Epic, error) {
	var e model.Epic
	err := s.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query epic %d: %w", id, err)
	}
	return &e, nil
}

type EpicAreaService struct{ db *gorm.DB }

func NewEpicAreaService(db *gorm.DB) *EpicAreaService { return &EpicAreaService{db: db} }

func (s *EpicAreaService) Create(ctx context.Context, name string) (*model.EpicArea, error) {
	area := model.EpicArea{Name: name}
	if err := s.db.WithContext(ctx).Create(&area).Error; err != nil {
		return nil, fmt.Errorf("insert epic area: %w", err)
	}
	return &area, nil
}

func (s *EpicAreaService) List(ctx context.Context) ([]model.EpicArea, error) {
	var areas []model.EpicArea
	if err := s.db.WithContext(ctx).Order("id").Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("query epic areas: %w", err)
	}
	return areas, nil
}
