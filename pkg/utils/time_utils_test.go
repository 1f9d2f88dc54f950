package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKR(t *testing.T) {
	parsed, err := ParseDateKR("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", FormatDateKR(parsed))

	_, err = ParseDateKR("다음 주 금요일")
	assert.Error(t, err)
}

func TestFormatDateKRZero(t *testing.T) {
	assert.Equal(t, "", FormatDateKR(time.Time{}))
}

func TestTodayKRShape(t *testing.T) {
	today := TodayKR()
	_, err := ParseDateKR(today)
	assert.NoError(t, err)
}
