package main

// Position is a point on the screen, in root window coordinates.
type Position struct{ X, Y int }

// Vector is a displacement between two Positions.
type Vector struct{ X, Y int }

// Size is the width and height of a window.
type Size struct{ W, H int }

// Sub returns the Vector that takes q to p.
func (p Position) Sub(q Position) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add moves p by v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Add grows s by v.
func (s Size) Add(v Vector) Size {
	return Size{W: s.W + v.X, H: s.H + v.Y}
}

// Floor raises each axis of v to at least the matching axis of lo.
func (v Vector) Floor(lo Vector) Vector {
	return Vector{X: max(v.X, lo.X), Y: max(v.Y, lo.Y)}
}

// Neg flips the Size into a Vector pointing the other way, i.e. the
// delta that would shrink a window of this size to nothing.
func (s Size) Neg() Vector {
	return Vector{X: -s.W, Y: -s.H}
}

// Rect is a window's geometry as reported by the server.
type Rect struct {
	Position
	Size
}
