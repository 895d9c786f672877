package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "12.50", FormatMoney(decimal.RequireFromString("12.5")))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
	assert.Equal(t, "-3.10", FormatMoney(decimal.RequireFromString("-3.1")))
	assert.Equal(t, "2.35", FormatMoney(decimal.RequireFromString("2.345")))
}

func TestLocalDayBounds(t *testing.T) {
	at := time.Date(2026, 8, 30, 17, 45, 12, 0, time.Local)
	start, end := LocalDayBounds(at)

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), end)
	assert.True(t, !at.Before(start) && at.Before(end))
}

func TestGenerateTemporaryPassword(t *testing.T) {
	p1, err := GenerateTemporaryPassword()
	assert.NoError(t, err)
	assert.Len(t, p1, 12) // 6 random bytes, hex encoded

	p2, err := GenerateTemporaryPassword()
	assert.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}
