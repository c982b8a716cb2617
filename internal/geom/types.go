package geom

import (
	"iter"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Point is a lon/lat pair, x first.
type Point = orb.Point

// Dataset is an immutable, ordered sequence of points loaded once at startup.
type Dataset struct {
	name   string
	points []Point
	bound  orb.Bound

	// built on first Nearest call
	index *rtreego.Rtree
}

// NewDataset copies pts into a new dataset. Order is preserved.
func NewDataset(name string, pts []Point) (*Dataset, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyDataset
	}
	own := make([]Point, len(pts))
	copy(own, pts)
	b := orb.Bound{Min: own[0], Max: own[0]}
	for _, p := range own[1:] {
		b = b.Extend(p)
	}
	return &Dataset{name: name, points: own, bound: b}, nil
}

func (d *Dataset) Name() string { return d.name }

// Len returns the number of points.
func (d *Dataset) Len() int { return len(d.points) }

// At returns the i-th point in load order.
func (d *Dataset) At(i int) Point { return d.points[i] }

// All yields every point in load order.
func (d *Dataset) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range d.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Bound returns the bounding box of all points.
func (d *Dataset) Bound() orb.Bound { return d.bound }
