package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestCanonicalDate(t *testing.T) {
	ny := mustLoad(t, DefaultZone)

	tests := []struct {
		name    string
		instant time.Time
		loc     *time.Location
		want    CivilDate
	}{
		{"late evening eastern is previous day", time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC), ny, "2024-03-09"},
		{"after eastern midnight", time.Date(2024, 3, 10, 5, 30, 0, 0, time.UTC), ny, "2024-03-10"},
		{"summer offset", time.Date(2024, 7, 1, 3, 59, 0, 0, time.UTC), ny, "2024-06-30"},
		{"summer after midnight", time.Date(2024, 7, 1, 4, 0, 0, 0, time.UTC), ny, "2024-07-01"},
		{"nil location is utc", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), nil, "2024-07-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalDate(tt.instant, tt.loc))
		})
	}
}

func TestCanonicalDateIgnoresInstantZone(t *testing.T) {
	ny := mustLoad(t, DefaultZone)
	tokyo := mustLoad(t, "Asia/Tokyo")

	utc := time.Date(2025, 1, 15, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, CanonicalDate(utc, ny), CanonicalDate(utc.In(tokyo), ny))
}

func TestDaysSinceEpoch(t *testing.T) {
	tests := []struct {
		in   CivilDate
		want int
	}{
		{"1970-01-01", 0},
		{"1970-01-02", 1},
		{"1969-12-31", -1},
		{"2000-01-01", 10957},
		{"2021-06-19", 18797},
	}
	for _, tt := range tests {
		got, err := DaysSinceEpoch(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "DaysSinceEpoch(%s)", tt.in)
	}
}

func TestDaysSinceEpochRollsOverImpossibleDates(t *testing.T) {
	a, err := DaysSinceEpoch("2024-02-30")
	require.NoError(t, err)
	b, err := DaysSinceEpoch("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestDaysBetween(t *testing.T) {
	n, err := DaysBetween("2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, 365, n)

	n, err = DaysBetween("2024-12-31", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, -365, n)

	_, err = DaysBetween("2024-01-01", "nope")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		in   CivilDate
		n    int
		want CivilDate
	}{
		{"2024-02-28", 1, "2024-02-29"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-03-09", 1, "2024-03-10"},
		{"2024-11-03", 1, "2024-11-04"},
		{"1970-01-01", -1, "1969-12-31"},
		{"2021-06-19", 0, "2021-06-19"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.in, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "AddDays(%s, %d)", tt.in, tt.n)
	}
}

func TestAddDaysRoundTrip(t *testing.T) {
	for _, start := range []CivilDate{"1999-12-31", "2021-06-19", "2024-02-29", "2026-10-16"} {
		base, err := DaysSinceEpoch(start)
		require.NoError(t, err)
		for k := -1500; k <= 1500; k += 37 {
			shifted, err := AddDays(start, k)
			require.NoError(t, err)
			got, err := DaysSinceEpoch(shifted)
			require.NoError(t, err)
			assert.Equal(t, base+k, got, "start=%s k=%d", start, k)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2026-02-14")
	require.NoError(t, err)
	assert.Equal(t, CivilDate("2026-02-14"), d)

	for _, bad := range []string{"", "2026-2-14", "26-02-14", "2026/02/14", "2026-02-14T00:00", " 2026-02-14", "abcd-ef-gh"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "Parse(%q)", bad)
	}

	_, err = DaysSinceEpoch("2026-2-14")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = AddDays("x", 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestResolve(t *testing.T) {
	ny := mustLoad(t, DefaultZone)
	clock := FixedClock{T: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}

	d, overridden := Resolve("2025-01-01", clock, ny)
	assert.True(t, overridden)
	assert.Equal(t, CivilDate("2025-01-01"), d)

	d, overridden = Resolve(" 2025-01-01 ", clock, ny)
	assert.True(t, overridden)
	assert.Equal(t, CivilDate("2025-01-01"), d)

	for _, bad := range []string{"", "tomorrow", "2025-1-1"} {
		d, overridden = Resolve(bad, clock, ny)
		assert.False(t, overridden)
		assert.Equal(t, CivilDate("2026-10-16"), d)
	}
}

func TestLoadLocationDefault(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, DefaultZone, loc.String())

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.Error(t, err)
}
