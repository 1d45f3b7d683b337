package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestOverlapDays(t *testing.T) {
	monthStart := day("2025-06-01")
	monthEnd := day("2025-06-30")

	tests := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		want    int
		wantErr error
	}{
		{"fully inside", dayPtr("2025-06-10"), dayPtr("2025-06-12"), 3, nil},
		{"single day", dayPtr("2025-06-15"), dayPtr("2025-06-15"), 1, nil},
		{"clipped at start", dayPtr("2025-05-28"), dayPtr("2025-06-03"), 3, nil},
		{"clipped at end", dayPtr("2025-06-28"), dayPtr("2025-07-05"), 3, nil},
		{"spans whole month", dayPtr("2025-05-01"), dayPtr("2025-07-31"), 30, nil},
		{"entirely before", dayPtr("2025-05-01"), dayPtr("2025-05-20"), 0, nil},
		{"entirely after", dayPtr("2025-07-01"), dayPtr("2025-07-10"), 0, nil},
		{"missing start", nil, dayPtr("2025-06-10"), 0, ErrMalformedLeaveRecord},
		{"missing end", dayPtr("2025-06-10"), nil, 0, ErrMalformedLeaveRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Request{StartDate: tt.start, EndDate: tt.end}
			got, err := r.OverlapDays(monthStart, monthEnd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A request fully contained in the month overlaps exactly (end-start)+1 days.
func TestOverlapDays_RoundTrip(t *testing.T) {
	monthStart := day("2025-06-01")
	monthEnd := day("2025-06-30")

	for length := 1; length <= 10; length++ {
		start := day("2025-06-05")
		end := start.AddDate(0, 0, length-1)
		r := Request{StartDate: &start, EndDate: &end}

		got, err := r.OverlapDays(monthStart, monthEnd)
		require.NoError(t, err)
		assert.Equal(t, length, got)
	}
}

func TestApplyRequestValidate(t *testing.T) {
	valid := ApplyRequest{
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
		Type:      "casual",
		DayType:   "full",
	}
	assert.NoError(t, valid.Validate())

	backwards := valid
	backwards.StartDate = "2025-06-12"
	backwards.EndDate = "2025-06-10"
	assert.Error(t, backwards.Validate())

	badType := valid
	badType.Type = "sabbatical"
	assert.Error(t, badType.Validate())

	badDayType := valid
	badDayType.DayType = "quarter"
	assert.Error(t, badDayType.Validate())
}
