// internal/component/target.go
package component

// Target — маркер цели (шарика), которую турель может сбить.
// Сбитая цель удаляется из ECS целиком.
type Target struct{}
