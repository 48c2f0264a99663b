package neighborhood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
)

func TestAccumulatorNeverEntered(t *testing.T) {
	acc := newAccumulator(1)

	// 一直不相关：自环，不终止，无结果
	for i := 0; i < 10; i++ {
		acc.observe(false)
		assert.False(t, acc.done())
	}
	_, ok := acc.result()
	assert.False(t, ok)
}

func TestAccumulatorEnterThenExit(t *testing.T) {
	acc := newAccumulator(2)

	// 先不相关后相关：进入active
	acc.observe(false)
	acc.observe(true)
	assert.False(t, acc.done())
	acc.record(entity.SLBoundary{StartS: 10, EndS: 15}, 0.5, 1)

	acc.observe(true)
	acc.record(entity.SLBoundary{StartS: 11, EndS: 16}, 0.6, 2)

	// active遇到不相关：exited终态
	acc.observe(false)
	assert.True(t, acc.done())

	// 终态不再变化，即使后续采样重新相关
	acc.observe(true)
	assert.True(t, acc.done())

	e, ok := acc.result()
	assert.True(t, ok)
	assert.Equal(t, int32(2), e.ObstacleID)
	// entry角点只写一次
	assert.Equal(t, PathTimePoint{S: 10, T: 0.5, ObstacleID: 2}, e.BottomLeft)
	assert.Equal(t, PathTimePoint{S: 15, T: 0.5, ObstacleID: 2}, e.UpperLeft)
	// frontier角点每次覆盖
	assert.Equal(t, PathTimePoint{S: 11, T: 0.6, ObstacleID: 2}, e.BottomRight)
	assert.Equal(t, PathTimePoint{S: 16, T: 0.6, ObstacleID: 2}, e.UpperRight)
	// 聚合边界
	assert.Equal(t, 10.0, e.PathLower)
	assert.Equal(t, 16.0, e.PathUpper)
	assert.Equal(t, 0.5, e.TimeLower)
	assert.Equal(t, 0.6, e.TimeUpper)
	// 速度诊断值
	assert.Equal(t, 1.0, e.EnterV)
	assert.Equal(t, 2.0, e.ExitV)
}

func TestAccumulatorSingleSample(t *testing.T) {
	acc := newAccumulator(3)

	acc.observe(true)
	acc.record(entity.SLBoundary{StartS: 5, EndS: 8}, 0, 0)
	e, ok := acc.result()
	assert.True(t, ok)
	// 单个相关采样时entry与frontier重合
	assert.Equal(t, e.BottomLeft, e.BottomRight)
	assert.Equal(t, e.UpperLeft, e.UpperRight)
	assert.Equal(t, 0.0, e.TimeLower)
	assert.Equal(t, 0.0, e.TimeUpper)
}
