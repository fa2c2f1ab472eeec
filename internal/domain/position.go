package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Границы карты (включительно)
const (
	MinCoord = 0
	MaxCoord = 500
)

// Position - клетка на карте
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds проверяет, что обе координаты лежат в [MinCoord, MaxCoord]
func (p Position) InBounds() bool {
	return p.X >= MinCoord && p.X <= MaxCoord && p.Y >= MinCoord && p.Y <= MaxCoord
}

// Point переводит клетку в точку orb для геометрических расчётов
func (p Position) Point() orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// DistanceTo возвращает евклидово расстояние до другой клетки
func (p Position) DistanceTo(other Position) float64 {
	return planar.Distance(p.Point(), other.Point())
}
