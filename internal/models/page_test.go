package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	assert.Len(t, AllPages, 15)
	for _, p := range AllPages {
		got, err := ParsePage(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	for _, bad := range []string{"", "settings", "Dashboard", "stock_details"} {
		_, err := ParsePage(bad)
		assert.Error(t, err, "ParsePage(%q)", bad)
	}
}

func TestPage_IsPublic(t *testing.T) {
	public := map[Page]bool{PageLanding: true, PageBeginnerGuide: true, PageLogin: true}
	for _, p := range AllPages {
		assert.Equal(t, public[p], p.IsPublic(), "page %s", p)
	}
}

func TestTheme_Toggled(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
	assert.Equal(t, ThemeLight, ThemeLight.Toggled().Toggled())

	_, err := ParseTheme("sepia")
	assert.Error(t, err)
}

func TestParseTargetDate(t *testing.T) {
	d, err := ParseTargetDate("Dec 2028")
	require.NoError(t, err)
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 2028, d.Year())

	d, err = ParseTargetDate("2030-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.June, d.Month())

	_, err = ParseTargetDate("someday")
	assert.Error(t, err)
}

func TestNewGoal_Validation(t *testing.T) {
	g, err := NewGoal(1, "Dream Home", "Property", "medium", 10000000, 4567890, "Dec 2028", 50000)
	require.NoError(t, err)
	assert.Equal(t, RiskMedium, g.Risk)

	_, err = NewGoal(2, "Bad", "Other", "extreme", 1, 0, "Dec 2028", 0)
	assert.Error(t, err)

	_, err = NewGoal(3, "Bad", "Other", "low", -1, 0, "Dec 2028", 0)
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration(" Short ")
	require.NoError(t, err)
	assert.Equal(t, DurationShort, d)

	_, err = ParseDuration("")
	assert.Error(t, err)
	_, err = ParseDuration("medium")
	assert.Error(t, err)
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("")
	require.NoError(t, err)
	assert.Equal(t, Range1M, r)

	r, err = ParseTimeRange("max")
	require.NoError(t, err)
	assert.Equal(t, RangeMax, r)
	assert.Equal(t, 100, r.Points())

	assert.Equal(t, 13, Range1D.Points())
	assert.Equal(t, 5, Range5D.Points())
	assert.Equal(t, 26, Range6M.Points())
	assert.Equal(t, 52, Range1Y.Points())

	_, err = ParseTimeRange("2Y")
	assert.Error(t, err)
}
