package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v := Default()
	assert.Equal(t, Viewport{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90}, v)
	assert.True(t, v.Valid())
	assert.Equal(t, 360.0, v.Width())
	assert.Equal(t, 180.0, v.Height())
}

func TestZoomIn(t *testing.T) {
	v := Default()
	v.Zoom(1)
	assert.Equal(t, Viewport{MinX: -178, MaxX: 178, MinY: -89, MaxY: 89}, v)
	assert.Equal(t, 356.0, v.Width())
	assert.Equal(t, 178.0, v.Height())
}

func TestZoomOut(t *testing.T) {
	v := Default()
	v.Zoom(-3)
	assert.Equal(t, Viewport{MinX: -186, MaxX: 186, MinY: -93, MaxY: 93}, v)
}

func TestZoomRoundTrip(t *testing.T) {
	for n := -500; n <= 500; n++ {
		v := Default()
		v.Pan(Left)
		v.Pan(Up)
		before := v
		v.Zoom(n)
		v.Zoom(-n)
		require.Equal(t, before, v, "zoom(%d) then zoom(%d)", n, -n)
	}
}

func TestZoomDoesNotClamp(t *testing.T) {
	v := Default()
	v.Zoom(100)
	assert.Equal(t, Viewport{MinX: 20, MaxX: -20, MinY: 10, MaxY: -10}, v)
	assert.False(t, v.Valid())
}

func TestCanZoom(t *testing.T) {
	v := Default()
	assert.True(t, v.CanZoom(89))
	assert.False(t, v.CanZoom(90))
	assert.True(t, v.CanZoom(-1000))

	v.Zoom(89)
	assert.Equal(t, 4.0, v.Width())
	assert.Equal(t, 2.0, v.Height())
	assert.False(t, v.CanZoom(1))
	assert.True(t, v.CanZoom(-1))
}

func TestPanLeft(t *testing.T) {
	v := Default()
	v.Pan(Left)
	assert.Equal(t, Viewport{MinX: -181, MaxX: 179, MinY: -90, MaxY: 90}, v)
}

func TestPanDirections(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Viewport
	}{
		{Up, Viewport{MinX: -180, MaxX: 180, MinY: -89, MaxY: 91}},
		{Down, Viewport{MinX: -180, MaxX: 180, MinY: -91, MaxY: 89}},
		{Left, Viewport{MinX: -181, MaxX: 179, MinY: -90, MaxY: 90}},
		{Right, Viewport{MinX: -179, MaxX: 181, MinY: -90, MaxY: 90}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			v := Default()
			v.Pan(tt.dir)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestPanPreservesSpan(t *testing.T) {
	starts := []Viewport{
		Default(),
		{MinX: -12.6, MaxX: 40.2, MinY: -3.3, MaxY: 22.9},
		{MinX: 170.5, MaxX: 179.9, MinY: 80.1, MaxY: 89.7},
	}
	for _, start := range starts {
		for _, d := range []Direction{Up, Down, Left, Right} {
			v := start
			w, h := v.Width(), v.Height()
			v.Pan(d)
			// pan offsets are whole units, both bounds move together
			assert.InDelta(t, w, v.Width(), 1e-12, "width after pan %s from %s", d, start)
			assert.InDelta(t, h, v.Height(), 1e-12, "height after pan %s from %s", d, start)
		}
	}

	v := Default()
	for _, d := range []Direction{Up, Up, Left, Down, Right, Right, Right} {
		v.Pan(d)
		assert.Equal(t, 360.0, v.Width())
		assert.Equal(t, 180.0, v.Height())
	}
}

func TestDrag(t *testing.T) {
	v := Default()
	v.Drag(5, 5)
	assert.InDelta(t, -181.0, v.MinX, 1e-9)
	assert.InDelta(t, 179.0, v.MaxX, 1e-9)
	assert.InDelta(t, -89.0, v.MinY, 1e-9)
	assert.InDelta(t, 91.0, v.MaxY, 1e-9)

	v = Default()
	v.Drag(-10, 0)
	assert.InDelta(t, -178.0, v.MinX, 1e-9)
	assert.InDelta(t, 182.0, v.MaxX, 1e-9)
	assert.Equal(t, -90.0, v.MinY)
	assert.Equal(t, 90.0, v.MaxY)
}

func TestContainsIsInclusive(t *testing.T) {
	v := Default()
	assert.True(t, v.Contains(-180, -90))
	assert.True(t, v.Contains(180, 90))
	assert.True(t, v.Contains(0, 0))
	assert.False(t, v.Contains(180.0001, 0))
	assert.False(t, v.Contains(0, -90.0001))
}

func TestCenterAndBound(t *testing.T) {
	v := Viewport{MinX: -10, MaxX: 30, MinY: 0, MaxY: 20}
	c := v.Center()
	assert.Equal(t, 10.0, c.X())
	assert.Equal(t, 10.0, c.Y())

	b := v.Bound()
	assert.Equal(t, -10.0, b.Min.X())
	assert.Equal(t, 20.0, b.Max.Y())
}
