package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		at   time.Time
		want int
	}{
		{"birthday already passed this year", date(2008, time.March, 21), date(2026, time.August, 31), 18},
		{"birthday later this year", date(2008, time.December, 1), date(2026, time.August, 31), 17},
		{"birthday today", date(2012, time.August, 31), date(2026, time.August, 31), 14},
		{"birthday tomorrow", date(2012, time.September, 1), date(2026, time.August, 31), 13},
		{"born 2015 evaluated 2026", date(2015, time.January, 1), date(2026, time.August, 31), 11},
		{"born 2000 evaluated 2026", date(2000, time.January, 1), date(2026, time.August, 31), 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAt(tt.dob, tt.at))
		})
	}
}

func TestFullName(t *testing.T) {
	u := &User{FirstName: "Mario", LastName: "Rossi"}
	assert.Equal(t, "Mario Rossi", u.FullName())
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RolePlayer, RoleParent, RoleCoach, RoleScout} {
		assert.True(t, ValidRole(r), r)
	}
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}
