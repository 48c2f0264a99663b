package entity

import (
	"math"
	"testing"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/stretchr/testify/assert"
)

func TestLerpAngle(t *testing.T) {
	assert.InDelta(t, 0.5, LerpAngle(0, 1, 0.5), 1e-9)
	// 跨越±π时沿短弧插值
	assert.InDelta(t, math.Pi, math.Abs(LerpAngle(3, -3, 0.5)), 1e-2)
	assert.InDelta(t, 3.0, LerpAngle(3, -3, 0), 1e-9)
	// 结果归一化到(-π,π]
	r := LerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.75)
	assert.LessOrEqual(t, r, math.Pi)
	assert.Greater(t, r, -math.Pi)
}

func TestBoundingBoxCorners(t *testing.T) {
	box := BoundingBox{
		Center:  geometry.Point{X: 10, Y: 5},
		Heading: 0,
		Length:  4,
		Width:   2,
	}
	corners := box.Corners()
	// 前左、后左、后右、前右
	assert.InDelta(t, 12.0, corners[0].X, 1e-9)
	assert.InDelta(t, 6.0, corners[0].Y, 1e-9)
	assert.InDelta(t, 8.0, corners[1].X, 1e-9)
	assert.InDelta(t, 6.0, corners[1].Y, 1e-9)
	assert.InDelta(t, 8.0, corners[2].X, 1e-9)
	assert.InDelta(t, 4.0, corners[2].Y, 1e-9)
	assert.InDelta(t, 12.0, corners[3].X, 1e-9)
	assert.InDelta(t, 4.0, corners[3].Y, 1e-9)
}

func TestSLBoundaryIsFinite(t *testing.T) {
	assert.True(t, SLBoundary{StartS: 1, EndS: 2, StartL: -1, EndL: 1}.IsFinite())
	assert.False(t, SLBoundary{StartS: math.NaN()}.IsFinite())
	assert.False(t, SLBoundary{EndL: math.Inf(1)}.IsFinite())
}
