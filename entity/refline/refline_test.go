package refline

import (
	"errors"
	"math"
	"testing"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
)

func newStraightLine(t *testing.T) *ReferenceLine {
	r, err := New([]geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
	require.NoError(t, err)
	return r
}

func TestNewValidation(t *testing.T) {
	_, err := New([]geometry.Point{{X: 0, Y: 0}})
	assert.Error(t, err)

	_, err = New([]geometry.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 0}})
	assert.ErrorIs(t, err, entity.ErrInvalidGeometry)

	_, err = New([]geometry.Point{{X: 1, Y: 1}, {X: 1, Y: 1}})
	assert.Error(t, err) // 零长度
}

func TestStraightLine(t *testing.T) {
	r := newStraightLine(t)
	assert.Equal(t, 100.0, r.Length())
	assert.Equal(t, 0.0, r.GetHeadingByS(50))

	pos := r.GetPositionByS(30)
	assert.InDelta(t, 30.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)

	// 超出范围时钳制
	pos = r.GetPositionByS(150)
	assert.InDelta(t, 100.0, pos.X, 1e-9)

	s, l := r.ProjectToSL(geometry.Point{X: 10, Y: 5})
	assert.InDelta(t, 10.0, s, 1e-9)
	assert.InDelta(t, 5.0, l, 1e-9) // 左侧为正

	s, l = r.ProjectToSL(geometry.Point{X: 10, Y: -5})
	assert.InDelta(t, 10.0, s, 1e-9)
	assert.InDelta(t, -5.0, l, 1e-9)
}

func TestLShapedLine(t *testing.T) {
	r, err := New([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, r.Length(), 1e-9)

	assert.InDelta(t, 0.0, r.GetHeadingByS(5), 1e-9)
	assert.InDelta(t, math.Pi/2, r.GetHeadingByS(15), 1e-9)

	pos := r.GetPositionByS(15)
	assert.InDelta(t, 10.0, pos.X, 1e-9)
	assert.InDelta(t, 5.0, pos.Y, 1e-9)

	// 第二段上的投影：横向左侧为折线内侧
	s, l := r.ProjectToSL(geometry.Point{X: 8, Y: 5})
	assert.InDelta(t, 15.0, s, 1e-9)
	assert.InDelta(t, 2.0, l, 1e-9)
}

func TestGetSLBoundary(t *testing.T) {
	r := newStraightLine(t)
	sl, err := r.GetSLBoundary(entity.BoundingBox{
		Center:  geometry.Point{X: 50, Y: 1},
		Heading: 0,
		Length:  4,
		Width:   2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 48.0, sl.StartS, 1e-9)
	assert.InDelta(t, 52.0, sl.EndS, 1e-9)
	assert.InDelta(t, 0.0, sl.StartL, 1e-9)
	assert.InDelta(t, 2.0, sl.EndL, 1e-9)
	assert.True(t, sl.IsFinite())
}

func TestGetSLBoundaryNonFinite(t *testing.T) {
	r := newStraightLine(t)
	_, err := r.GetSLBoundary(entity.BoundingBox{
		Center: geometry.Point{X: math.NaN(), Y: 0},
		Length: 4,
		Width:  2,
	})
	assert.True(t, errors.Is(err, entity.ErrInvalidGeometry))
}

func TestPathPoints(t *testing.T) {
	r := newStraightLine(t)
	points := r.PathPoints(10)
	require.Len(t, points, 11)
	assert.Equal(t, 0.0, points[0].S)
	assert.Equal(t, 100.0, points[len(points)-1].S)
	for _, p := range points {
		assert.InDelta(t, 0.0, p.Theta, 1e-9)
		assert.InDelta(t, p.S, p.XYZ.X, 1e-9)
	}

	assert.Panics(t, func() { r.PathPoints(0) })
}

func TestMatchToPath(t *testing.T) {
	points := []entity.PathPoint{
		{XYZ: geometry.Point{X: 0}, S: 0, Theta: 0},
		{XYZ: geometry.Point{X: 10}, S: 10, Theta: 0.2},
	}
	p := MatchToPath(points, 5)
	assert.InDelta(t, 5.0, p.S, 1e-9)
	assert.InDelta(t, 5.0, p.XYZ.X, 1e-9)
	assert.InDelta(t, 0.1, p.Theta, 1e-9)

	// 超出范围时钳制到首/末点
	assert.Equal(t, points[0], MatchToPath(points, -1))
	assert.Equal(t, points[1], MatchToPath(points, 20))

	assert.Panics(t, func() { MatchToPath(nil, 0) })
}

func TestNewFromLanesEmpty(t *testing.T) {
	_, err := NewFromLanes(nil, nil)
	assert.Error(t, err)
}
