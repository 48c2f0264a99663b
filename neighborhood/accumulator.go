package neighborhood

import "github.com/tsinghua-fib-lab/lattice-planner-oss/entity"

// sampleState 单个障碍物在时间采样过程中的状态
type sampleState int

const (
	notYetEntered sampleState = iota // 尚未进入相关区域
	active                           // 已进入相关区域
	exited                           // 已离开相关区域（终态，停止采样）
)

// accumulator 单个障碍物的包络累加器
// 功能：以显式状态机推进障碍物的进入/离开判定，
// 分两阶段写入包络：entry角点（首个相关采样写入一次）与frontier角点（每个相关采样覆盖）
// 说明：状态机与几何计算无关，可独立测试；
// 一旦进入exited终态不再接受任何采样，即使后续采样重新满足相关性也不会重新进入
type accumulator struct {
	state    sampleState
	hasEntry bool
	envelope *PathTimeObstacle
}

func newAccumulator(obstacleID int32) *accumulator {
	return &accumulator{
		state:    notYetEntered,
		envelope: &PathTimeObstacle{ObstacleID: obstacleID},
	}
}

// observe 根据当前采样是否相关推进状态机
// 参数：relevant-当前采样是否满足相关性判据
// 说明：notYetEntered在不相关时自环；active遇到第一个不相关采样进入exited
func (a *accumulator) observe(relevant bool) {
	switch a.state {
	case notYetEntered:
		if relevant {
			a.state = active
		}
	case active:
		if !relevant {
			a.state = exited
		}
	}
}

// done 是否应终止采样
func (a *accumulator) done() bool {
	return a.state == exited
}

// record 写入一个相关采样
// 参数：sl-当前采样的SL边界，t-采样时刻，v-沿参考线方向的速度
// 说明：仅在active状态下调用
func (a *accumulator) record(sl entity.SLBoundary, t, v float64) {
	e := a.envelope
	if !a.hasEntry {
		a.hasEntry = true
		e.BottomLeft = PathTimePoint{S: sl.StartS, T: t, ObstacleID: e.ObstacleID}
		e.UpperLeft = PathTimePoint{S: sl.EndS, T: t, ObstacleID: e.ObstacleID}
		e.EnterV = v
	}
	e.BottomRight = PathTimePoint{S: sl.StartS, T: t, ObstacleID: e.ObstacleID}
	e.UpperRight = PathTimePoint{S: sl.EndS, T: t, ObstacleID: e.ObstacleID}
	e.ExitV = v
}

// result 取出构建完成的包络
// 返回：包络与是否有效；障碍物从未相关时无效
func (a *accumulator) result() (*PathTimeObstacle, bool) {
	if !a.hasEntry {
		return nil, false
	}
	a.envelope.finalize()
	return a.envelope, true
}
