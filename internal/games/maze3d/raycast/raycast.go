// Package raycast projects a maze's wall segments onto screen columns.
// World X maps to segment X and world Y to segment Z.
package raycast

import (
	"math"

	"github.com/vovakirdan/maze3d/internal/games/maze3d/maze"
)

const eps = 1e-9

// Hit is the nearest wall along one screen column's ray.
type Hit struct {
	OK     bool
	Dist   float64 // Perpendicular distance, corrected for fisheye
	Raw    float64 // Euclidean distance along the ray
	IsExit bool
	Side   bool    // Face runs along Z (vertical on the map)
	U      float64 // Position along the face, [0, 1]
}

// Camera is a viewpoint in grid units.
type Camera struct {
	X, Y     float64
	Angle    float64 // Heading in radians
	FOV      float64 // Horizontal field of view in radians
	MaxDepth float64 // Hits beyond this distance are dropped; 0 means unlimited
}

// Ray returns the nearest segment hit from (x, y) in direction angle.
// When two faces are equally near, an exit face wins.
func Ray(segs []maze.WallSegment, x, y, angle, maxDepth float64) Hit {
	dx, dy := math.Cos(angle), math.Sin(angle)
	best := Hit{Raw: math.Inf(1)}

	for i := range segs {
		s := &segs[i]
		ex, ey := s.X2-s.X1, s.Z2-s.Z1
		denom := dx*ey - dy*ex
		if math.Abs(denom) < eps {
			continue
		}
		ax, ay := s.X1-x, s.Z1-y
		t := (ax*ey - ay*ex) / denom
		u := (ax*dy - ay*dx) / denom
		if t <= eps || u < -eps || u > 1+eps {
			continue
		}
		closer := t < best.Raw-eps
		tie := math.Abs(t-best.Raw) <= eps && s.IsExit && !best.IsExit
		if !closer && !tie {
			continue
		}
		best = Hit{
			OK:     true,
			Raw:    t,
			Dist:   t,
			IsExit: s.IsExit,
			Side:   s.X1 == s.X2,
			U:      math.Max(0, math.Min(1, u)),
		}
	}

	if !best.OK || (maxDepth > 0 && best.Raw > maxDepth) {
		return Hit{}
	}
	return best
}

// Cast fires one ray per column across the camera's field of view, left to
// right, and returns perpendicular distances suitable for wall heights.
func Cast(segs []maze.WallSegment, cam Camera, columns int) []Hit {
	if columns <= 0 {
		return nil
	}
	hits := make([]Hit, columns)
	half := math.Tan(cam.FOV / 2)

	for col := range columns {
		// Screen-space offset in [-1, 1] through the column center.
		sx := (2*(float64(col)+0.5)/float64(columns) - 1) * half
		offset := math.Atan(sx)
		h := Ray(segs, cam.X, cam.Y, cam.Angle+offset, cam.MaxDepth)
		if h.OK {
			h.Dist = h.Raw * math.Cos(offset)
		}
		hits[col] = h
	}
	return hits
}

// ProjectionDistance is the distance, in columns, from the eye to a screen
// of the given width spanning fov.
func ProjectionDistance(columns int, fov float64) float64 {
	return float64(columns) / 2 / math.Tan(fov/2)
}
