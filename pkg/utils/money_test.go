package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 25.50, RoundMoney(25.499999999))
	assert.Equal(t, 25.50, RoundMoney(25.504))
	assert.Equal(t, 0.0, RoundMoney(0))
}

func TestMoneyEquals(t *testing.T) {
	// 浮点累加误差在分精度下相等
	assert.True(t, MoneyEquals(0.1+0.2, 0.3))
	assert.True(t, MoneyEquals(25.50, 25.499999999))
	assert.False(t, MoneyEquals(25.50, 25.49))
	assert.False(t, MoneyEquals(25.50, 25.51))
}
