package service

import (
	"context"
	"testing"
	"time"
	"timesheets/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTimeLogService(db *gorm.DB) *TimeLogService {
	return NewTimeLogService(db, NewRateService(db))
}

func TestTimeLogCreateDerivedFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)

	tl, err := svc.Create(context.Background(), model.TimeLogRequest{
		UserID: 1, Username: "alice", EpicID: 1, EpicName: "rollout", ClientID: 1,
		StartTime: "2023-03-01 09:00",
		EndTime:   "2023-03-01 13:30",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, tl.Month)
	assert.Equal(t, 2023, tl.Year)
	assert.Equal(t, 4.5, tl.CountHours)
	assert.Equal(t, 0.56, tl.CountDays) // 4.5 / 8
	assert.Equal(t, 0.0, tl.DailyValue) // no rate on file
}

func TestTimeLogCreateWithRate(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Rate{
		UserID: 1, ClientID: 1, Amount: 800,
		ValidFrom: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	tl, err := svc.Create(ctx, model.TimeLogRequest{
		UserID: 1, Username: "alice", EpicID: 1, EpicName: "rollout", ClientID: 1,
		StartTime: "2023-03-01 09:00",
		EndTime:   "2023-03-01 17:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, tl.CountHours)
	assert.Equal(t, 1.0, tl.CountDays)
	assert.Equal(t, 800.0, tl.DailyValue)
}

func TestTimeLogCreateBadTimestamp(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.TimeLogRequest{
		Username: "alice", EpicName: "rollout",
		StartTime: "not-a-time",
		EndTime:   "2023-03-01 13:30",
	})
	assert.ErrorIs(t, err, ErrBadTimestamp)

	// a parse failure must not persist a partially derived record
	var count int64
	require.NoError(t, db.Model(&model.TimeLog{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestTimeLogCreateEndBeforeStart(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)

	_, err := svc.Create(context.Background(), model.TimeLogRequest{
		Username: "alice", EpicName: "rollout",
		StartTime: "2023-03-01 13:30",
		EndTime:   "2023-03-01 09:00",
	})
	assert.ErrorIs(t, err, ErrBadTimestamp)
}

func createTimeLog(t *testing.T, svc *TimeLogService, username, epicName string, month int) {
	t.Helper()
	start := time.Date(2023, time.Month(month), 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), model.TimeLogRequest{
		UserID: 1, Username: username, EpicID: 1, EpicName: epicName, ClientID: 1,
		StartTime: start.Format(TimeLayout),
		EndTime:   start.Add(8 * time.Hour).Format(TimeLayout),
	})
	require.NoError(t, err)
}

func TestTimeLogListFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	createTimeLog(t, svc, "alice", "rollout", 3)
	createTimeLog(t, svc, "alice", "migration", 4)
	createTimeLog(t, svc, "bob", "rollout", 3)

	all, err := svc.List(ctx, model.TimeLogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	alice := "alice"
	byUser, err := svc.List(ctx, model.TimeLogFilter{Username: &alice})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	// filters are conjunctive: each omitted one is simply unconstrained
	rollout, march := "rollout", 3
	byEpicMonth, err := svc.List(ctx, model.TimeLogFilter{EpicName: &rollout, Month: &march})
	require.NoError(t, err)
	assert.Len(t, byEpicMonth, 2)

	byAll, err := svc.List(ctx, model.TimeLogFilter{Username: &alice, EpicName: &rollout, Month: &march})
	require.NoError(t, err)
	require.Len(t, byAll, 1)
	assert.Equal(t, "alice", byAll[0].Username)
}

func TestTimeLogUpdateStart(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	createTimeLog(t, svc, "alice", "rollout", 3)

	tl, err := svc.UpdateStart(ctx, "alice", "rollout", "", "2023-03-01 13:00")
	require.NoError(t, err)
	assert.Equal(t, "2023-03-01 13:00", tl.StartTime)
	assert.Equal(t, 4.0, tl.CountHours) // recomputed against the stored end
	assert.Equal(t, 3, tl.Month)
	assert.Equal(t, 2023, tl.Year)
}

func TestTimeLogUpdateDateParamIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	createTimeLog(t, svc, "alice", "rollout", 3)

	// a valid date is accepted but changes nothing beyond start_time
	_, err := svc.UpdateStart(ctx, "alice", "rollout", "2024-12-24 00:00", "2023-03-01 10:00")
	require.NoError(t, err)

	var tl model.TimeLog
	require.NoError(t, db.First(&tl).Error)
	assert.Equal(t, 3, tl.Month)
	assert.Equal(t, 2023, tl.Year)

	// a malformed date is still rejected
	_, err = svc.UpdateStart(ctx, "alice", "rollout", "yesterday", "2023-03-01 10:00")
	assert.ErrorIs(t, err, ErrBadTimestamp)
}

func TestTimeLogUpdateNoMatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)

	_, err := svc.UpdateStart(context.Background(), "nobody", "rollout", "", "2023-03-01 10:00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimeLogUpdateAmbiguous(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	createTimeLog(t, svc, "alice", "rollout", 3)
	createTimeLog(t, svc, "alice", "rollout", 4)

	_, err := svc.UpdateStart(ctx, "alice", "rollout", "", "2023-03-01 10:00")
	assert.ErrorIs(t, err, ErrAmbiguous)

	// neither row may have been touched
	var changed int64
	require.NoError(t, db.Model(&model.TimeLog{}).
		Where("start_time = ?", "2023-03-01 10:00").Count(&changed).Error)
	assert.EqualValues(t, 0, changed)
}

func TestTimeLogDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	createTimeLog(t, svc, "alice", "rollout", 3)
	createTimeLog(t, svc, "bob", "rollout", 3)

	require.NoError(t, svc.Delete(ctx, "alice", "rollout"))

	var count int64
	require.NoError(t, db.Model(&model.TimeLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	err := svc.Delete(ctx, "alice", "rollout")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimeLogDeleteAmbiguous(t *testing.T) {
	db := setupTestDB(t)
	svc := newTimeLogService(db)
	ctx := context.Background()

	createTimeLog(t, svc, "alice", "rollout", 3)
	createTimeLog(t, svc, "alice", "rollout", 4)

	err := svc.Delete(ctx, "alice", "rollout")
	assert.ErrorIs(t, err, ErrAmbiguous)
}
