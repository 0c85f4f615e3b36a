// Package ebitengine renders rpgkit scenes with Ebitengine. It implements
// the scene capability interfaces over a flat sprite list and forwards
// polled mouse input to the scene listener.
package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rpgkit/scene"
)

var buttonMap = [...]struct {
	ebiten ebiten.MouseButton
	scene  scene.Button
}{
	{ebiten.MouseButtonLeft, scene.ButtonLeft},
	{ebiten.MouseButtonRight, scene.ButtonRight},
	{ebiten.MouseButtonMiddle, scene.ButtonMiddle},
}

// View is the ebiten.Game driving a scene. It is also the scene's Stage,
// Renderer and Events implementation.
type View struct {
	width, height int

	sprites  []*Sprite
	outlines map[*Sprite]scene.Outline

	ctrl      *scene.Controller
	listeners []scene.MouseListener

	// HitThreshold is the minimum pixel alpha for hit tests.
	HitThreshold int

	lastX, lastY int
}

// NewView creates a view with the given logical size.
func NewView(width, height int) *View {
	return &View{
		width:        width,
		height:       height,
		outlines:     map[*Sprite]scene.Outline{},
		HitThreshold: 1,
		lastX:        -1,
		lastY:        -1,
	}
}

// Attach wires the scene controller the view pumps each tick.
func (v *View) Attach(ctrl *scene.Controller) {
	v.ctrl = ctrl
}

// AddMouseListener subscribes a listener to pointer events.
func (v *View) AddMouseListener(l scene.MouseListener) {
	v.listeners = append(v.listeners, l)
}

// RemoveMouseListener unsubscribes a listener.
func (v *View) RemoveMouseListener(l scene.MouseListener) {
	for i, reg := range v.listeners {
		if reg == l {
			v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
			return
		}
	}
}

// AddSprite appends a sprite; later sprites draw on top.
func (v *View) AddSprite(s *Sprite) {
	v.sprites = append(v.sprites, s)
}

// RemoveSprite drops a sprite and its outline.
func (v *View) RemoveSprite(s *Sprite) {
	for i, sp := range v.sprites {
		if sp == s {
			v.sprites = append(v.sprites[:i], v.sprites[i+1:]...)
			break
		}
	}
	delete(v.outlines, s)
}

// SpriteByID returns the sprite with the given identifier.
func (v *View) SpriteByID(id string) *Sprite {
	for _, s := range v.sprites {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// InstancesAt returns the sprites of a layer hit by p, topmost first.
func (v *View) InstancesAt(p scene.Point, layer string) []scene.Instance {
	var hits []scene.Instance
	for i := len(v.sprites) - 1; i >= 0; i-- {
		s := v.sprites[i]
		if s.Layer != layer {
			continue
		}
		if s.contains(p.X, p.Y, v.HitThreshold) {
			hits = append(hits, s)
		}
	}
	return hits
}

// AddOutline marks an instance for outlined drawing.
func (v *View) AddOutline(inst scene.Instance, o scene.Outline) {
	if s, ok := inst.(*Sprite); ok {
		v.outlines[s] = o
	}
}

// RemoveAllOutlines clears every outline.
func (v *View) RemoveAllOutlines() {
	clear(v.outlines)
}

// Update polls input, fans it out to the registered listeners and pumps
// the scene by one tick.
func (v *View) Update() error {
	x, y := ebiten.CursorPosition()
	p := scene.Point{X: x, Y: y}
	moved := x != v.lastX || y != v.lastY
	v.lastX, v.lastY = x, y

	_, wheelY := ebiten.Wheel()

	for _, l := range v.listeners {
		if moved {
			l.MouseMoved(p)
		}
		for _, bm := range buttonMap {
			if inpututil.IsMouseButtonJustPressed(bm.ebiten) {
				l.MousePressed(p, bm.scene)
			}
			if inpututil.IsMouseButtonJustReleased(bm.ebiten) {
				l.MouseReleased(p, bm.scene)
			}
			if moved && ebiten.IsMouseButtonPressed(bm.ebiten) {
				l.MouseDragged(p, bm.scene)
			}
		}
		if wheelY != 0 {
			l.MouseWheel(wheelY)
		}
	}

	if v.ctrl != nil {
		v.ctrl.Pump(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw renders all sprites and strokes the outlined ones.
func (v *View) Draw(screen *ebiten.Image) {
	for _, s := range v.sprites {
		if s.Image != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(s.X, s.Y)
			screen.DrawImage(s.Image, op)
		}
		if o, ok := v.outlines[s]; ok {
			vector.StrokeRect(screen,
				float32(s.X), float32(s.Y), float32(s.W), float32(s.H),
				float32(o.Width), outlineColor(o.R, o.G, o.B), false)
		}
	}
}

// Layout reports the fixed logical size.
func (v *View) Layout(_, _ int) (int, int) {
	return v.width, v.height
}
