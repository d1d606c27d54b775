package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/ecs/entity"
)

// pixelsPerUnit is the base world-to-screen scale before camera zoom.
const pixelsPerUnit = 10.0

var (
	colorBridge     = color.RGBA{R: 0x3a, G: 0x34, B: 0x30, A: 0xff}
	colorBridgeEdge = color.RGBA{R: 0x55, G: 0x4a, B: 0x42, A: 0xff}
	colorPlayer     = color.RGBA{R: 0xf2, G: 0xe9, B: 0xdc, A: 0xff}
	colorEnemy      = color.RGBA{R: 0xc8, G: 0x3a, B: 0x2e, A: 0xff}
	colorProjectile = color.RGBA{R: 0xf5, G: 0x9e, B: 0x2a, A: 0xff}
	colorCoin       = color.RGBA{R: 0xe8, G: 0xc5, B: 0x2b, A: 0xff}
	colorHazard     = color.RGBA{R: 0x7a, G: 0x3d, B: 0x8f, A: 0xff}
)

// Renderer draws the top-down debug view: bridge chunks, active entities,
// and the HUD. It is a placeholder for the real presentation layer but shows
// the full streaming and combat state.
type Renderer struct {
	factory *entity.Factory
	camera  ecs.Entity
	player  ecs.Entity
}

func NewRenderer(factory *entity.Factory, camera, player ecs.Entity) *Renderer {
	return &Renderer{factory: factory, camera: camera, player: player}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camZ, zoom := r.cameraTransform(w)
	scale := pixelsPerUnit * zoom

	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2

	// Forward motion points up the screen.
	toScreen := func(p common.Vec3) (float32, float32) {
		sx := cx + (p.X-camX)*scale
		sy := cy - (p.Z-camZ)*scale
		return float32(sx), float32(sy)
	}

	r.drawChunks(w, screen, toScreen, scale)
	r.drawEntities(w, screen, toScreen, scale)
	r.drawHUD(w, screen)
}

func (r *Renderer) cameraTransform(w *ecs.World) (x, z, zoom float64) {
	zoom = 1
	cam, ok := ecs.Get(w, r.camera, component.CameraComponent.Kind())
	if ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	if t, ok := ecs.Get(w, r.camera, component.TransformComponent.Kind()); ok {
		return t.Pos.X, t.Pos.Z, zoom
	}
	return 0, 0, zoom
}

func (r *Renderer) drawChunks(w *ecs.World, screen *ebiten.Image, toScreen func(common.Vec3) (float32, float32), scale float64) {
	if r.factory == nil || r.factory.Catalog() == nil {
		return
	}
	game := r.factory.Catalog().Game()
	length := game.Chunk.Length
	halfWidth := r.factory.Catalog().Player().LaneHalfWidth + 2

	ecs.ForEach(w, component.ChunkRefComponent.Kind(), func(e ecs.Entity, ref *component.ChunkRef) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		left, far := toScreen(t.Pos.Add(common.Vec3{X: -halfWidth, Z: length}))
		width := float32(halfWidth * 2 * scale)
		height := float32(length * scale)

		vector.DrawFilledRect(screen, left, far, width, height, colorBridge, false)
		vector.StrokeRect(screen, left, far, width, height, 1, colorBridgeEdge, false)

		label := fmt.Sprintf("%d %s", ref.Index, ref.Prototype)
		ebitenutil.DebugPrintAt(screen, label, int(left)+4, int(far)+4)
	})
}

func (r *Renderer) drawEntities(w *ecs.World, screen *ebiten.Image, toScreen func(common.Vec3) (float32, float32), scale float64) {
	ecs.ForEach(w, component.ColliderComponent.Kind(), func(e ecs.Entity, c *component.Collider) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		sx, sy := toScreen(t.Pos)
		radius := float32(c.Radius * scale)

		var clr color.Color
		switch c.Layer {
		case component.LayerPlayer:
			clr = colorPlayer
		case component.LayerEnemy:
			clr = colorEnemy
		case component.LayerProjectile:
			clr = colorProjectile
		case component.LayerCoin:
			clr = colorCoin
		case component.LayerHazard:
			clr = colorHazard
		default:
			clr = color.White
		}

		vector.DrawFilledCircle(screen, sx, sy, radius, clr, true)
		// Airborne entities lift off the plane a little.
		if t.Pos.Y > 0 {
			vector.StrokeCircle(screen, sx, sy-float32(t.Pos.Y*scale*0.5), radius, 1, clr, true)
		}
	})
}

func (r *Renderer) drawHUD(w *ecs.World, screen *ebiten.Image) {
	p, ok := ecs.Get(w, r.player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	hp := 0
	if h, ok := ecs.Get(w, r.player, component.HealthComponent.Kind()); ok {
		hp = h.Current
	}
	z := 0.0
	if t, ok := ecs.Get(w, r.player, component.TransformComponent.Kind()); ok {
		z = t.Pos.Z
	}
	text := fmt.Sprintf("HP %d  Coins %d  Z %.0f", hp, p.Coins, z)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}
