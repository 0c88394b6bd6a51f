// internal/system/render.go
package system

import (
	"image/color"

	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/types"
	"go-turret-shooter/internal/utils"
	"go-turret-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует поле, цели, турель и эффекты.
// Все позиции хранятся в координатах сцены (ось Y вверх), цели — в локальных координатах поля.
type RenderSystem struct {
	ecs          *entity.ECS
	shapes       *render.ShapeRenderer
	screenHeight float64
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{
		ecs:          ecs,
		shapes:       render.NewShapeRenderer(),
		screenHeight: config.ScreenHeight,
	}
}

// Draw рисует всю сцену. targets — живые цели в порядке создания (позиции локальные),
// поздние рисуются поверх ранних. aimAt != nil — линия прицеливания от турели.
func (s *RenderSystem) Draw(screen *ebiten.Image, field utils.Frame, fieldW, fieldH float64, targets []TargetInfo, aimAt *utils.Vec2) {
	s.drawField(screen, field, fieldW, fieldH)

	for _, c := range s.targetCircles(field, targets) {
		if c.Stroke {
			vector.DrawFilledCircle(screen, c.X, c.Y, c.Radius+config.StrokeWidth, config.TargetStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, c.X, c.Y, c.Radius, c.Color, true)
	}

	for id, pop := range s.ecs.PopEffects {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		progress := PopProgress(pop)
		x, y := utils.SceneToScreen(pos.Vec2, s.screenHeight)
		c := render.WithAlpha(pop.Color, uint8(float64(pop.Color.A)*(1-progress)))
		vector.StrokeCircle(screen, x, y, float32(progress*pop.MaxRadius), config.StrokeWidth, c, true)
	}

	for id := range s.ecs.Turrets {
		if aimAt != nil {
			s.drawAimLine(screen, id, *aimAt)
		}
		s.drawTurret(screen, id)
	}
}

// targetCircle — шарик цели в экранных координатах.
type targetCircle struct {
	ID     types.EntityID
	X, Y   float32
	Radius float32
	Color  color.RGBA
	Stroke bool
}

// targetCircles сохраняет порядок targets: пересекающиеся шарики не меняются местами между кадрами.
func (s *RenderSystem) targetCircles(field utils.Frame, targets []TargetInfo) []targetCircle {
	circles := make([]targetCircle, 0, len(targets))
	for _, target := range targets {
		r, hasRender := s.ecs.Renderables[target.ID]
		if !hasRender || r.Scale <= 0 {
			continue
		}
		x, y := utils.SceneToScreen(field.ToWorld(target.Position), s.screenHeight)
		circles = append(circles, targetCircle{
			ID:     target.ID,
			X:      x,
			Y:      y,
			Radius: r.Radius * r.Scale,
			Color:  r.Color,
			Stroke: r.HasStroke,
		})
	}
	return circles
}

func (s *RenderSystem) drawField(screen *ebiten.Image, field utils.Frame, w, h float64) {
	// Верхний левый угол поля на экране соответствует точке (0, h) поля
	x, y := utils.SceneToScreen(field.ToWorld(utils.V(0, h)), s.screenHeight)
	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), config.FieldColor, false)
}

func (s *RenderSystem) drawAimLine(screen *ebiten.Image, turretID types.EntityID, at utils.Vec2) {
	pos, ok := s.ecs.Positions[turretID]
	if !ok {
		return
	}
	x0, y0 := utils.SceneToScreen(pos.Vec2, s.screenHeight)
	x1, y1 := utils.SceneToScreen(at, s.screenHeight)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, config.AimLineColor, true)
}

func (s *RenderSystem) drawTurret(screen *ebiten.Image, turretID types.EntityID) {
	turret := s.ecs.Turrets[turretID]
	pos, ok := s.ecs.Positions[turretID]
	if !ok {
		return
	}
	pts := TurretPolygon(pos.Vec2, turret.Width, turret.Height, turret.Rotation)
	screenPts := make([]render.Point, len(pts))
	for i, p := range pts {
		x, y := utils.SceneToScreen(p, s.screenHeight)
		screenPts[i] = render.Point{X: x, Y: y}
	}
	s.shapes.FillPolygon(screen, screenPts, config.TurretColor)
	s.shapes.StrokePolygon(screen, screenPts, config.StrokeWidth, config.TurretStrokeColor)
}

// TurretPolygon возвращает вершины треугольника турели в координатах сцены.
// Без поворота нос смотрит вверх; rotation — градусы по часовой стрелке.
func TurretPolygon(center utils.Vec2, width, height, rotation float64) []utils.Vec2 {
	local := []utils.Vec2{
		utils.V(0, height/2),
		utils.V(width/2, -height/2),
		utils.V(-width/2, -height/2),
	}
	rad := -utils.DegToRad(rotation)
	out := make([]utils.Vec2, len(local))
	for i, p := range local {
		out[i] = center.Add(p.Rotate(rad))
	}
	return out
}
