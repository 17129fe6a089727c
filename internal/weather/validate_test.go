package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "2024-06-01"},
		{name: "leap day", value: "2024-02-29"},
		{name: "impossible day", value: "2024-02-30", wantErr: true},
		{name: "non-leap year", value: "2023-02-29", wantErr: true},
		{name: "wrong order", value: "02-29-2024", wantErr: true},
		{name: "not zero padded", value: "2024-6-1", wantErr: true},
		{name: "slashes", value: "2024/06/01", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "yesterday", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseDate("date", tc.value)
			if tc.wantErr {
				var invalid *InvalidArgumentError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "date", invalid.Field)
				assert.Contains(t, invalid.Reason, tc.value)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.value, got.Format(dateLayout))
			}
		})
	}
}

func TestValidateHistoryRange(t *testing.T) {
	svc := newTestService(&stubFetcher{})
	today := dateOnly(testNow)

	parse := func(t *testing.T, s string) time.Time {
		d, err := time.Parse(dateLayout, s)
		require.NoError(t, err)
		return d
	}

	cases := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantField string
	}{
		{
			name:  "valid span ending yesterday",
			start: today.AddDate(0, 0, -3),
			end:   today.AddDate(0, 0, -1),
		},
		{
			name:  "single day",
			start: today.AddDate(0, 0, -10),
			end:   today.AddDate(0, 0, -10),
		},
		{
			name:  "oldest allowed start",
			start: today.AddDate(0, 0, -365),
			end:   today.AddDate(0, 0, -364),
		},
		{
			name:      "start after end",
			start:     today.AddDate(0, 0, -1),
			end:       today.AddDate(0, 0, -2),
			wantField: "start_date",
		},
		{
			name:      "start too old",
			start:     today.AddDate(0, 0, -366),
			end:       today.AddDate(0, 0, -1),
			wantField: "start_date",
		},
		{
			name:      "end is today",
			start:     today.AddDate(0, 0, -2),
			end:       today,
			wantField: "end_date",
		},
		{
			name:      "end in the future",
			start:     today.AddDate(0, 0, -2),
			end:       today.AddDate(0, 0, 1),
			wantField: "end_date",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.validateHistoryRange(tc.start, tc.end)
			if tc.wantField == "" {
				require.NoError(t, err)
			} else {
				var invalid *InvalidArgumentError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tc.wantField, invalid.Field)
			}
		})
	}

	// Pinned sanity check for the 365-day window around the fixed clock.
	require.NoError(t, svc.validateHistoryRange(parse(t, "2024-06-15"), parse(t, "2025-06-14")))
	var invalid *InvalidArgumentError
	require.ErrorAs(t, svc.validateHistoryRange(parse(t, "2024-06-14"), parse(t, "2025-06-14")), &invalid)
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, time.June, 15, 23, 59, 59, 0, time.FixedZone("X", 3*3600))
	got := dateOnly(in)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), got)
}
