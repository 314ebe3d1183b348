package service

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"timesheets/internal/model"

	"gorm.io/gorm"
)

type CalendarService struct{ db *gorm.DB }

func NewCalendarService(db *gorm.DB) *CalendarService { return &CalendarService{db: db} }

// Seed fills the calendar dimension for [fromYear, toYear] when the table is
// empty. It returns the number of rows inserted; 0 means the dimension was
// already present. The table is never mutated after the first load.
func (s *CalendarService) Seed(ctx context.Context, fromYear, toYear int) (int, error) {
	if toYear < fromYear {
		return 0, fmt.Errorf("invalid year range %d..%d", fromYear, toYear)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Calendar{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count calendar: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	rows := Dimension(fromYear, toYear)
	if err := s.db.WithContext(ctx).CreateInBatches(rows, 365).Error; err != nil {
		return 0, fmt.Errorf("seed calendar: %w", err)
	}
	return len(rows), nil
}

// Clear drops all dimension rows so a re-seed can load a different range.
func (s *CalendarService) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&model.Calendar{}).Error; err != nil {
		return fmt.Errorf("clear calendar: %w", err)
	}
	return nil
}

func (s *CalendarService) List(ctx context.Context, year *int) ([]model.Calendar, error) {
	q := s.db.WithContext(ctx)
	if year != nil {
		q = q.Where("year_number = ?", *year)
	}
	var rows []model.Calendar
	if err := q.Order("date").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query calendar: %w", err)
	}
	return rows, nil
}

// Dimension generates one row per day of the year range.
func Dimension(fromYear, toYear int) []model.Calendar {
	var rows []model.Calendar
	d := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(toYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	for !d.After(end) {
		rows = append(rows, dayRow(d))
		d = d.AddDate(0, 0, 1)
	}
	return rows
}

func dayRow(d time.Time) model.Calendar {
	quarter := (int(d.Month())-1)/3 + 1
	_, week := d.ISOWeek()
	// ISO weekday: Monday = 1 .. Sunday = 7.
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return model.Calendar{
		Date:          d.Format("2006-01-02"),
		YearNumber:    d.Year(),
		YearName:      strconv.Itoa(d.Year()),
		QuarterNumber: quarter,
		QuarterName:   fmt.Sprintf("Q%d", quarter),
		MonthNumber:   int(d.Month()),
		MonthName:     d.Month().String(),
		WeekNumber:    week,
		WeekName:      fmt.Sprintf("W%02d", week),
		WeekDayNumber: weekday,
		WeekDayName:   d.Weekday().String(),
	}
}
