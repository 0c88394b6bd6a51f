// internal/utils/vector.go
package utils

import "math"

// Vec2 — точка или вектор на плоскости сцены.
// Сцена использует систему координат с осью Y вверх, экран — вниз,
// перевод делает SceneToScreen.
type Vec2 struct {
	X, Y float64
}

// V — короткий конструктор Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross возвращает z-компоненту векторного произведения.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate поворачивает вектор на rad радиан против часовой стрелки (ось Y вверх).
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Distance — евклидово расстояние между двумя точками.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// AngleSigned возвращает угол в радианах, на который нужно повернуть a,
// чтобы он совпал по направлению с b. Положительный — против часовой стрелки.
// Для нулевого вектора результат 0.
func AngleSigned(a, b Vec2) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// Frame — система отсчёта слоя (например, поля целей) внутри сцены.
type Frame struct {
	Origin Vec2
}

// ToWorld переводит локальную точку слоя в координаты сцены.
func (f Frame) ToWorld(local Vec2) Vec2 {
	return local.Add(f.Origin)
}

// ToLocal — обратное преобразование.
func (f Frame) ToLocal(world Vec2) Vec2 {
	return world.Sub(f.Origin)
}

// SceneToScreen переводит точку сцены (ось Y вверх) в экранные координаты Ebiten.
func SceneToScreen(p Vec2, screenHeight float64) (float32, float32) {
	return float32(p.X), float32(screenHeight - p.Y)
}
