package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalDuration(t *testing.T) {
	services := []Service{
		{DurationMinutes: 30},
		{DurationMinutes: 60},
		{DurationMinutes: 15},
	}

	assert.Equal(t, 105, TotalDuration(services))
	assert.Equal(t, 0, TotalDuration(nil))
}

func TestTotalPrice(t *testing.T) {
	services := []Service{
		{Price: decimal.NewFromFloat(1500.50)},
		{Price: decimal.NewFromInt(3000)},
	}

	assert.True(t, decimal.NewFromFloat(4500.50).Equal(TotalPrice(services)))
	assert.True(t, decimal.Zero.Equal(TotalPrice(nil)))
}
