package geom

import (
	"github.com/dhconnelly/rtreego"
)

// point rectangles need a non-zero extent
const pointTolerance = 1e-9

type indexedPoint struct {
	p Point
}

// Bounds implements rtreego.Spatial.
func (ip indexedPoint) Bounds() rtreego.Rect {
	return rtreego.Point{ip.p[0], ip.p[1]}.ToRect(pointTolerance)
}

// Nearest returns the dataset point closest to q. The R-tree is bulk loaded
// on the first call.
func (d *Dataset) Nearest(q Point) Point {
	if d.index == nil {
		objs := make([]rtreego.Spatial, len(d.points))
		for i, p := range d.points {
			objs[i] = indexedPoint{p: p}
		}
		d.index = rtreego.NewTree(2, 25, 50, objs...)
	}
	return d.index.NearestNeighbor(rtreego.Point{q[0], q[1]}).(indexedPoint).p
}
