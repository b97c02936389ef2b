package engine

import "math"

// NearestTen округляет сумму вниз до ближайшего десятка (floor, не банковское
// округление). Это каноническая нормализация денег во всей системе: применяется
// после умножения и после каждого накопления, в том числе для отрицательных сумм
func NearestTen(value float64) int {
	return int(math.Floor(value/10) * 10)
}

// PercentOf считает ставку: процент от базового баланса,
// округленный вниз до десятков
func PercentOf(balance int, pct int) int {
	return NearestTen(float64(balance) * float64(pct) / 100)
}
