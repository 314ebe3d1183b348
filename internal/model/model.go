package model

// ForecastRow is the joined projection returned by every forecast listing:
// Forecast joined to AppUser and Epic.
type ForecastRow struct {
	ForecastID   int     `json:"forecast_id"`
	Username     string  `json:"username"`
	EpicName     string  `json:"epic_name"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	ForecastDays float64 `json:"forecast_days"`
}

// MonthDays is the per-epic breakdown of forecast days by month.
type MonthDays struct {
	Month int     `json:"month"`
	Days  float64 `json:"days"`
}

// ForecastFilter carries the optional listing filters. Nil means the field is
// unconstrained, not "match null".
type ForecastFilter struct {
	UserID *int
	EpicID *int
	Year   *int
	Month  *int
}

// TimeLogFilter carries the optional timelog listing filters, applied
// conjunctively.
type TimeLogFilter struct {
	Username *string
	EpicName *string
	Month    *int
}

type TimeLogRequest struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	EpicID    int    `json:"epic_id"`
	EpicName  string `json:"epic_name"`
	ClientID  int    `json:"client_id"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
