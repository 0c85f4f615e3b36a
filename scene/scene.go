// Package scene connects an engine view to the entity world: it translates
// pointer events into outline highlighting and action dispatch, and pumps
// the registered systems once per frame. Engine specifics stay behind the
// small capability interfaces here, so the package itself has no rendering
// dependency.
package scene

// Point is a pixel position in window coordinates.
type Point struct {
	X int
	Y int
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Instance is an engine-level object that can sit under the cursor. Its
// identifier ties it back to the entity it was loaded as.
type Instance interface {
	Identifier() string
}

// Stage answers hit tests: which instances of a layer are at a point.
type Stage interface {
	InstancesAt(p Point, layer string) []Instance
}

// Outline is the visual style of a hover highlight.
type Outline struct {
	R         uint8
	G         uint8
	B         uint8
	Width     int
	Threshold int
}

// Renderer draws and clears instance outlines.
type Renderer interface {
	AddOutline(inst Instance, o Outline)
	RemoveAllOutlines()
}

// MouseListener receives pointer events from the engine.
type MouseListener interface {
	MouseMoved(p Point)
	MousePressed(p Point, b Button)
	MouseReleased(p Point, b Button)
	MouseDragged(p Point, b Button)
	MouseWheel(dy float64)
}

// Events is the engine's input event source.
type Events interface {
	AddMouseListener(l MouseListener)
	RemoveMouseListener(l MouseListener)
}
