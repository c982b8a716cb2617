package viewport

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Map units moved per step.
const (
	ZoomStepSize = 2
	PanStepSize  = 1
)

// DragSensitivity is the number of map units moved per screen cell dragged.
const DragSensitivity = 0.2

// Direction is a pan direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Viewport is the visible window over the lon/lat plane.
type Viewport struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Default spans the whole plane, [-180, 180] x [-90, 90].
func Default() Viewport {
	return Viewport{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90}
}

// Zoom shrinks (steps > 0) or grows (steps < 0) the viewport about its centre.
// The vertical bounds move half as far as the horizontal ones, keeping the 2:1
// shape of the world map. Zoom does not clamp; see CanZoom.
func (v *Viewport) Zoom(steps int) {
	dx := float64(steps * ZoomStepSize)
	dy := float64(steps * ZoomStepSize / 2)
	v.MinX += dx
	v.MaxX -= dx
	v.MinY += dy
	v.MaxY -= dy
}

// CanZoom reports whether Zoom(steps) would leave a non-empty viewport.
func (v Viewport) CanZoom(steps int) bool {
	next := v
	next.Zoom(steps)
	return next.Valid()
}

// Pan moves the viewport one PanStepSize in the given direction.
func (v *Viewport) Pan(d Direction) {
	switch d {
	case Up:
		v.MinY += PanStepSize
		v.MaxY += PanStepSize
	case Down:
		v.MinY -= PanStepSize
		v.MaxY -= PanStepSize
	case Left:
		v.MinX -= PanStepSize
		v.MaxX -= PanStepSize
	case Right:
		v.MinX += PanStepSize
		v.MaxX += PanStepSize
	}
}

// Drag moves the viewport by a pointer movement of dx columns and dy rows.
// Horizontal movement is inverted so the map follows the pointer.
func (v *Viewport) Drag(dx, dy int) {
	h := float64(dx) * DragSensitivity
	vert := float64(dy) * DragSensitivity
	v.MinX -= h
	v.MaxX -= h
	v.MinY += vert
	v.MaxY += vert
}

// Valid reports whether both spans are strictly positive.
func (v Viewport) Valid() bool {
	return v.MinX < v.MaxX && v.MinY < v.MaxY
}

func (v Viewport) Width() float64  { return v.MaxX - v.MinX }
func (v Viewport) Height() float64 { return v.MaxY - v.MinY }

// Center returns the midpoint of the viewport.
func (v Viewport) Center() orb.Point {
	return orb.Point{(v.MinX + v.MaxX) / 2, (v.MinY + v.MaxY) / 2}
}

// Contains reports whether (x, y) lies inside the viewport, edges included.
func (v Viewport) Contains(x, y float64) bool {
	return x >= v.MinX && x <= v.MaxX && y >= v.MinY && y <= v.MaxY
}

// Bound converts the viewport to an orb.Bound.
func (v Viewport) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{v.MinX, v.MinY},
		Max: orb.Point{v.MaxX, v.MaxY},
	}
}

func (v Viewport) String() string {
	return fmt.Sprintf("x[%.2f, %.2f] y[%.2f, %.2f]", v.MinX, v.MaxX, v.MinY, v.MaxY)
}
