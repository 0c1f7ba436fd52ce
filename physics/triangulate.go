package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// degenerateArea is the area below which a triangle is treated as collinear
// and dropped.
const degenerateArea = 1e-7

// triangulate ear-clips a simple polygon given in either winding and returns
// index triples into points. Every returned triangle is counter-clockwise
// and has an area above degenerateArea.
func triangulate(points []cp.Vector) []int {
	n := len(points)
	if n < 3 {
		return nil
	}

	remaining := make([]int, n)
	if signedArea(points) >= 0 {
		for i := range remaining {
			remaining[i] = i
		}
	} else {
		for i := range remaining {
			remaining[i] = n - 1 - i
		}
	}

	triangles := make([]int, 0, (n-2)*3)
	emit := func(a, b, c int) {
		if math.Abs(cross(points[a], points[b], points[c]))/2 > degenerateArea {
			triangles = append(triangles, a, b, c)
		}
	}

	for len(remaining) > 3 {
		m := len(remaining)
		ear := -1
		for i := 0; i < m; i++ {
			if isEar(points, remaining, i) {
				ear = i
				break
			}
		}
		if ear < 0 {
			// Only collinear or self-touching vertices are left; clip the
			// flattest one so the loop always progresses.
			ear = flattest(points, remaining)
		}
		prev := remaining[(ear+m-1)%m]
		next := remaining[(ear+1)%m]
		emit(prev, remaining[ear], next)
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}
	emit(remaining[0], remaining[1], remaining[2])
	return triangles
}

func isEar(points []cp.Vector, remaining []int, i int) bool {
	m := len(remaining)
	a := points[remaining[(i+m-1)%m]]
	b := points[remaining[i]]
	c := points[remaining[(i+1)%m]]
	if cross(a, b, c) <= 0 {
		return false
	}
	for j := 0; j < m; j++ {
		if j == i || j == (i+m-1)%m || j == (i+1)%m {
			continue
		}
		p := points[remaining[j]]
		if p == a || p == b || p == c {
			continue
		}
		if insideTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

func flattest(points []cp.Vector, remaining []int) int {
	m := len(remaining)
	best, bestArea := 0, math.Inf(1)
	for i := 0; i < m; i++ {
		a := points[remaining[(i+m-1)%m]]
		b := points[remaining[i]]
		c := points[remaining[(i+1)%m]]
		if area := math.Abs(cross(a, b, c)); area < bestArea {
			best, bestArea = i, area
		}
	}
	return best
}

// cross is twice the signed area of the triangle abc.
func cross(a, b, c cp.Vector) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func insideTriangle(p, a, b, c cp.Vector) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}

// signedArea is positive for counter-clockwise outlines.
func signedArea(points []cp.Vector) float64 {
	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}
