package overtime

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/domain/overtime"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type punchPair struct {
	in  *time.Time
	out *time.Time
}

type fakePunchSource struct {
	attendance.AttendanceRepository
	punches map[string]punchPair
}

func (f *fakePunchSource) GetDayPunches(_ context.Context, userID string, date time.Time) (*time.Time, *time.Time, error) {
	p := f.punches[userID+"/"+date.Format("2006-01-02")]
	return p.in, p.out, nil
}

type fakeOvertimeStore struct {
	overtime.OvertimeRepository
	records map[string]overtime.Record
}

func (f *fakeOvertimeStore) Upsert(_ context.Context, r overtime.Record) (overtime.Record, error) {
	r.ID = "ot-" + r.UserID + "-" + r.Date.Format("2006-01-02")
	f.records[r.ID] = r
	return r, nil
}

type fakeUserSource struct {
	user.UserRepository
	users []user.User
}

func (f *fakeUserSource) List(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

func stamp(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func newTestService(punches map[string]punchPair) (*OvertimeServiceImpl, *fakeOvertimeStore) {
	store := &fakeOvertimeStore{records: make(map[string]overtime.Record)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOvertimeService(store, &fakePunchSource{punches: punches}, &fakeUserSource{}, 8, logger)
	return svc.(*OvertimeServiceImpl), store
}

func TestRecomputeForDay_OvertimeAboveThreshold(t *testing.T) {
	svc, _ := newTestService(map[string]punchPair{
		"u1/2025-06-16": {
			in:  stamp("2025-06-16T08:00:00Z"),
			out: stamp("2025-06-16T18:30:00Z"),
		},
	})

	resp, err := svc.RecomputeForDay(context.Background(), "u1", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(10*3600+1800), resp.WorkedSeconds)
	assert.Equal(t, int64(2*3600+1800), resp.OvertimeSeconds)
}

func TestRecomputeForDay_UnderThresholdClampsToZero(t *testing.T) {
	svc, _ := newTestService(map[string]punchPair{
		"u1/2025-06-16": {
			in:  stamp("2025-06-16T09:00:00Z"),
			out: stamp("2025-06-16T15:00:00Z"),
		},
	})

	resp, err := svc.RecomputeForDay(context.Background(), "u1", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(6*3600), resp.WorkedSeconds)
	assert.Equal(t, int64(0), resp.OvertimeSeconds)
}

func TestRecomputeForDay_OpenDayYieldsNothing(t *testing.T) {
	svc, store := newTestService(map[string]punchPair{
		"u1/2025-06-16": {in: stamp("2025-06-16T09:00:00Z")},
	})

	resp, err := svc.RecomputeForDay(context.Background(), "u1", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, store.records)
}
