package model

import "time"

type Client struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}

type AppUser struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
}

type EpicArea struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

type Epic struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	ShortName  string `json:"short_name"`
	ClientID   int    `json:"client_id"`
	EpicAreaID *int   `json:"epic_area_id,omitempty"`
}

// Rate is the daily rate of a user for a client, used when valuing timelogs.
type Rate struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `json:"user_id"`
	ClientID  int       `json:"client_id"`
	Amount    float64   `json:"amount"`
	ValidFrom time.Time `json:"valid_from"`
}

// Forecast is a planned number of working days for a user on an epic in a
// given month. The composite unique index is what makes duplicate creation
// atomic; the service never pre-checks with a separate read.
type Forecast struct {
	ID     int     `gorm:"primaryKey" json:"id"`
	EpicID int     `gorm:"uniqueIndex:uk_forecast_tuple" json:"epic_id"`
	UserID int     `gorm:"uniqueIndex:uk_forecast_tuple" json:"user_id"`
	Year   int     `gorm:"uniqueIndex:uk_forecast_tuple" json:"year"`
	Month  int     `gorm:"uniqueIndex:uk_forecast_tuple" json:"month"`
	Days   float64 `json:"days"`
}

// TimeLog stores the recorded interval together with the fields derived from
// it at creation time. Month and Year come from StartTime; CountHours is the
// interval length in hours, CountDays = hours/8, DailyValue = days times the
// user's daily rate for the client.
type TimeLog struct {
	ID         int     `gorm:"primaryKey" json:"id"`
	UserID     int     `json:"user_id"`
	Username   string  `gorm:"index" json:"username"`
	EpicID     int     `json:"epic_id"`
	EpicName   string  `gorm:"index" json:"epic_name"`
	ClientID   int     `json:"client_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	CountHours float64 `json:"count_hours"`
	CountDays  float64 `json:"count_days"`
	DailyValue float64 `json:"daily_value"`
}

// Calendar is the static reporting dimension, seeded once and never mutated.
type Calendar struct {
	ID            int    `gorm:"primaryKey" json:"id"`
	Date          string `gorm:"type:date;uniqueIndex" json:"date"`
	YearNumber    int    `json:"year_number"`
	YearName      string `json:"year_name"`
	QuarterNumber int    `json:"quarter_number"`
	QuarterName   string `json:"quarter_name"`
	MonthNumber   int    `json:"month_number"`
	MonthName     string `json:"month_name"`
	WeekNumber    int    `json:"week_number"`
	WeekName      string `json:"week_name"`
	WeekDayNumber int    `json:"week_day_number"`
	WeekDayName   string `json:"week_day_name"`
}

func (Client) TableName() string   { return "clients" }
func (AppUser) TableName() string  { return "app_users" }
func (EpicArea) TableName() string { return "epic_areas" }
func (Epic) TableName() string     { return "epics" }
func (Rate) TableName() string     { return "rates" }
func (Forecast) TableName() string { return "forecasts" }
func (TimeLog) TableName() string  { return "timelogs" }
func (Calendar) TableName() string { return "calendar" }
