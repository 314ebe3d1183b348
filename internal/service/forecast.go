package service

import (
	"context"
	"errors"
	"fmt"
	"timesheets/internal/model"

	"gorm.io/gorm"
)

type ForecastService struct{ db *gorm.DB }

func NewForecastService(db *gorm.DB) *ForecastService { return &ForecastService{db: db} }

// Create inserts a forecast. At most one forecast may exist per
// (epic, user, year, month); the composite unique index rejects the
// duplicate atomically and the caller sees created=false.
func (s *ForecastService) Create(ctx context.Context, f *model.Forecast) (*model.Forecast, bool, error) {
	err := s.db.WithContext(ctx).Create(f).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("insert forecast: %w", err)
	}
	return f, true, nil
}

// List returns the joined projection, restricted by whichever filters are
// set. Filters are conjunctive; a nil filter leaves that column
// unconstrained.
func (s *ForecastService) List(ctx context.Context, filter model.ForecastFilter) ([]model.ForecastRow, error) {
	q := s.db.WithContext(ctx).
		Table("forecasts").
		Select("forecasts.id AS forecast_id, app_users.username, epics.short_name AS epic_name, forecasts.year, forecasts.month, forecasts.days AS forecast_days").
		Joins("JOIN app_users ON app_users.id = forecasts.user_id").
		Joins("JOIN epics ON epics.id = forecasts.epic_id")

	if filter.UserID != nil {
		q = q.Where("forecasts.user_id = ?", *filter.UserID)
	}
	if filter.EpicID != nil {
		q = q.Where("forecasts.epic_id = ?", *filter.EpicID)
	}
	if filter.Year != nil {
		q = q.Where("forecasts.year = ?", *filter.Year)
	}
	if filter.Month != nil {
		q = q.Where("forecasts.month = ?", *filter.Month)
	}

	var rows []model.ForecastRow
	if err := q.Order("forecasts.id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query forecasts: %w", err)
	}
	return rows, nil
}

// MonthDays returns the (month, days) pairs for one user on one epic.
func (s *ForecastService) MonthDays(ctx context.Context, userID, epicID int) ([]model.MonthDays, error) {
	var rows []model.MonthDays
	err := s.db.WithContext(ctx).
		Model(&model.Forecast{}).
		Select("month, days").
		Where("user_id = ? AND epic_id = ?", userID, epicID).
		Order("year, month").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query forecast months: %w", err)
	}
	return rows, nil
}

// Delete removes the forecast with the given id, erroring when no row
// matches. The primary key guarantees at most one row, so a silent
// multi-delete cannot happen here.
func (s *ForecastService) Delete(ctx context.Context, id int) error {
	tx := s.db.WithContext(ctx).Delete(&model.Forecast{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete forecast %d: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
