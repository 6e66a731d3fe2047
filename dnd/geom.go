package dnd

// Point is a position in host cell coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the point translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in host cell coordinates. The rectangle
// covers the cells at x..x+width-1 and y..y+height-1.
type Rect struct {
	X, Y, Width, Height int
}

// R is shorthand for Rect{X: x, Y: y, Width: width, Height: height}.
func R(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Top returns the y coordinate of the rectangle's first row.
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the y coordinate one past the rectangle's last row.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether p falls on one of the rectangle's cells.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// InLowerHalf reports whether the row y lies in the bottom half of the
// rectangle. For odd heights the middle row counts as the top half, so a
// one-row rectangle has no lower half of its own.
func (r Rect) InLowerHalf(y int) bool {
	return y >= r.Y+(r.Height+1)/2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
