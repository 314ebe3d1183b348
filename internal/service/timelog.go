package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"timesheets/internal/model"

	"gorm.io/gorm"
)

// TimeLayout is the wire format of start_time/end_time and the date
// parameter of updates.
const TimeLayout = "2006-01-02 15:04"

// hoursPerDay converts worked hours into working days.
const hoursPerDay = 8

type TimeLogService struct {
	db    *gorm.DB
	rates *RateService
}

func NewTimeLogService(db *gorm.DB, rates *RateService) *TimeLogService {
	return &TimeLogService{db: db, rates: rates}
}

// Create parses the interval, derives month/year/hours/days/value and
// persists the record. Nothing is written when a timestamp does not parse.
func (s *TimeLogService) Create(ctx context.Context, req model.TimeLogRequest) (*model.TimeLog, error) {
	start, err := time.Parse(TimeLayout, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time %q", ErrBadTimestamp, req.StartTime)
	}
	end, err := time.Parse(TimeLayout, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time %q", ErrBadTimestamp, req.EndTime)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_time before start_time", ErrBadTimestamp)
	}

	tl := model.TimeLog{
		UserID:    req.UserID,
		Username:  req.Username,
		EpicID:    req.EpicID,
		EpicName:  req.EpicName,
		ClientID:  req.ClientID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.derive(ctx, &tl, start, end); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&tl).Error; err != nil {
		return nil, fmt.Errorf("insert timelog: %w", err)
	}
	return &tl, nil
}

// List applies the supplied filters conjunctively; omitted filters leave the
// column unconstrained.
func (s *TimeLogService) List(ctx context.Context, filter model.TimeLogFilter) ([]model.TimeLog, error) {
	q := s.db.WithContext(ctx)
	if filter.Username != nil {
		q = q.Where("username = ?", *filter.Username)
	}
	if filter.EpicName != nil {
		q = q.Where("epic_name = ?", *filter.EpicName)
	}
	if filter.Month != nil {
		q = q.Where("month = ?", *filter.Month)
	}

	var logs []model.TimeLog
	if err := q.Order("id").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("query timelogs: %w", err)
	}
	return logs, nil
}

// UpdateStart overwrites start_time of the single timelog matching
// (username, epic_name) and recomputes the fields derived from it. The date
// parameter is validated when present but has no effect on the mutation; it
// is kept for wire compatibility.
func (s *TimeLogService) UpdateStart(ctx context.Context, username, epicName, date, startTime string) (*model.TimeLog, error) {
	if date != "" {
		if _, err := time.Parse(TimeLayout, date); err != nil {
			return nil, fmt.Errorf("%w: date %q", ErrBadTimestamp, date)
		}
	}
	start, err := time.Parse(TimeLayout, startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time %q", ErrBadTimestamp, startTime)
	}

	tl, err := s.exactlyOne(ctx, username, epicName)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(TimeLayout, tl.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: stored end_time %q", ErrBadTimestamp, tl.EndTime)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_time before start_time", ErrBadTimestamp)
	}

	tl.StartTime = startTime
	if err := s.derive(ctx, tl, start, end); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(tl).Error; err != nil {
		return nil, fmt.Errorf("update timelog %d: %w", tl.ID, err)
	}
	return tl, nil
}

// Delete removes the single timelog matching (username, epic_name).
func (s *TimeLogService) Delete(ctx context.Context, username, epicName string) error {
	tl, err := s.exactlyOne(ctx, username, epicName)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&model.TimeLog{}, tl.ID).Error; err != nil {
		return fmt.Errorf("delete timelog %d: %w", tl.ID, err)
	}
	return nil
}

// exactlyOne fetches the timelog for (username, epic_name), failing loudly
// on zero or multiple matches rather than picking an arbitrary row.
func (s *TimeLogService) exactlyOne(ctx context.Context, username, epicName string) (*model.TimeLog, error) {
	var logs []model.TimeLog
	err := s.db.WithContext(ctx).
		Where("username = ? AND epic_name = ?", username, epicName).
		Limit(2).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("query timelog: %w", err)
	}
	switch len(logs) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &logs[0], nil
	default:
		return nil, ErrAmbiguous
	}
}

// derive fills month, year and the computed value fields from the interval.
// The daily value uses the user's rate for the client; no rate means zero.
func (s *TimeLogService) derive(ctx context.Context, tl *model.TimeLog, start, end time.Time) error {
	tl.Month = int(start.Month())
	tl.Year = start.Year()
	tl.CountHours = round2(end.Sub(start).Hours())
	tl.CountDays = round2(tl.CountHours / hoursPerDay)

	tl.DailyValue = 0
	rate, err := s.rates.ForUserClient(ctx, tl.UserID, tl.ClientID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	tl.DailyValue = round2(tl.CountDays * rate.Amount)
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
