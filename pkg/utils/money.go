package utils

import "math"

// RoundMoney 金额统一保留两位小数（定点，分为最小单位）
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// MoneyEquals 定点金额精确比较，无容差
func MoneyEquals(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}
