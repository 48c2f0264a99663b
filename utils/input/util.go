package input

import (
	"fmt"
	"math"
)

// checkTrajectoryValid 检查障碍物预测轨迹有效性
// 功能：验证轨迹点的数值与时间顺序是否符合逻辑规则
// 参数：o-场景障碍物
// 返回：nil表示有效，否则返回描述性错误
// 算法说明：
// 1. 检查尺寸：长宽必须为正
// 2. 检查轨迹点数值：位置、航向、时间必须为有限数
// 3. 检查时间：相对时间非负且按顺序单调不减
// 说明：空轨迹是合法输入，表示上游没有任何预测
func checkTrajectoryValid(o *ScenarioObstacle) error {
	if o.Length <= 0 || o.Width <= 0 {
		return fmt.Errorf("bad size %vx%v", o.Length, o.Width)
	}
	lastT := -math.MaxFloat64
	for i, p := range o.Trajectory {
		for _, v := range []float64{p.X, p.Y, p.Theta, p.V, p.T} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("trajectory point %d has non-finite value: %+v", i, *p)
			}
		}
		if p.T < 0 {
			return fmt.Errorf("trajectory point %d has negative time %v", i, p.T)
		}
		if p.T < lastT {
			return fmt.Errorf("trajectory point %d time %v is before previous %v", i, p.T, lastT)
		}
		lastT = p.T
	}
	return nil
}
