package game

import (
	"github.com/Faultbox/varkon/internal/engine/debug"
	"github.com/Faultbox/varkon/internal/engine/lighting"
	"github.com/Faultbox/varkon/internal/engine/renderer"
	"github.com/Faultbox/varkon/internal/game/entity"
	"github.com/Faultbox/varkon/internal/game/projectile"
	"github.com/Faultbox/varkon/internal/game/scene"
)

// render draws the current frame.
func (g *Game) render() {
	cam := g.camera
	scenes := g.world.Scenes
	r := g.renderer

	f := renderer.Frame{
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
		ViewPos:    cam.Position,
		LightPos:   scenes.Light.Position,
		LightColor: scenes.Light.Color,
	}

	r.Begin()

	r.DrawStars(g.stars, f)

	for _, group := range scenes.Groups() {
		r.DrawLit(instances(group.Objects), group.Lighting, f)
	}

	tiles := scene.GroundTiles(cam.Position)
	r.DrawGround(g.ground, tiles[:], lighting.Normal(scenes.Light), f)

	g.drawProjectiles(f)

	if g.cfg.Debug.ShowColliders {
		g.drawColliders(f)
	}
	if g.cfg.Debug.ShowTriggers {
		g.drawTriggers(f)
	}

	gun := g.world.Weapon
	if gun.Mesh != nil {
		r.DrawOverlay([]renderer.Instance{{Mesh: gun.Mesh, Model: gun.ModelMatrix(cam)}}, lighting.Enhanced(), f)
	}

	r.End()
}

func instances(objects []*entity.Object) []renderer.Instance {
	out := make([]renderer.Instance, 0, len(objects))
	for _, o := range objects {
		if o.Drawable() {
			out = append(out, renderer.Instance{Mesh: o.Mesh, Model: o.ModelMatrix()})
		}
	}
	return out
}

func (g *Game) drawProjectiles(f renderer.Frame) {
	var bullets, plasma []renderer.Instance
	for _, p := range g.world.Projectiles.Active() {
		inst := renderer.Instance{Mesh: g.bullet, Model: p.ModelMatrix()}
		if p.Kind == projectile.KindPlasma {
			plasma = append(plasma, inst)
		} else {
			bullets = append(bullets, inst)
		}
	}
	g.renderer.DrawLitColor(bullets, lighting.Enhanced(), renderer.TracerColor, f)
	g.renderer.DrawLitColor(plasma, lighting.Enhanced(), renderer.PlasmaColor, f)
}

func (g *Game) drawColliders(f renderer.Frame) {
	spheres := g.world.Colliders.Spheres()
	verts := make([]float32, 0, len(spheres)*debug.SphereWireframeVertexCount(debug.DefaultSphereSegments)*3)
	for _, s := range spheres {
		verts = append(verts, debug.GenerateSphereWireframeVertices(s.Center, s.Radius, debug.DefaultSphereSegments)...)
	}
	g.renderer.DrawLines(verts, renderer.ColliderColor, f)
}

func (g *Game) drawTriggers(f renderer.Frame) {
	var verts []float32
	for _, z := range g.world.Scenes.TriggerZones() {
		verts = append(verts, debug.GenerateSphereWireframeVertices(z.Position, z.Radius, debug.DefaultSphereSegments)...)
	}
	g.renderer.DrawLines(verts, renderer.TriggerColor, f)
}
