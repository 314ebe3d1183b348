package service

import (
	"context"
	"errors"
	"fmt"
	"timesheets/internal/model"

	"gorm.io/gorm"
)

type ClientService struct{ db *gorm.DB }

func NewClientService(db *gorm.DB) *ClientService { return &ClientService{db: db} }

// Create inserts a client. The insert is a single statement; the unique index
// on name decides duplicates, so concurrent identical requests cannot both
// succeed. A duplicate reports created=false, not an error.
func (s *ClientService) Create(ctx context.Context, name string) (*model.Client, bool, error) {
	c := model.Client{Name: name}
	err := s.db.WithContext(ctx).Create(&c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("insert client: %w", err)
	}
	return &c, true, nil
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := s.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, id int) (*model.Client, error) {
	var c model.Client
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query client %d: %w", id, err)
	}
	return &c, nil
}
