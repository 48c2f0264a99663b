package neighborhood

import (
	"fmt"
	"math"
)

// PathTimePoint 路径-时间坐标系中的采样点
// 说明：创建后不可变
type PathTimePoint struct {
	S          float64 // 纵向位置（米）
	T          float64 // 相对规划起点的时间（秒）
	ObstacleID int32   // 所属障碍物ID
}

// PathTimeObstacle 单个障碍物在路径-时间坐标系中的占用包络
// 功能：以四个角点与聚合边界描述障碍物在相关时间窗内占据的(s,t)区域
// 说明：BottomLeft/UpperLeft在障碍物第一个相关采样时写入一次，
// BottomRight/UpperRight在每个相关采样时覆盖，循环结束后保留最后一个相关采样的值
type PathTimeObstacle struct {
	ObstacleID int32 // 障碍物ID，周期内唯一

	BottomLeft PathTimePoint // 进入时刻的纵向近端
	UpperLeft  PathTimePoint // 进入时刻的纵向远端

	BottomRight PathTimePoint // 最后相关采样时刻的纵向近端
	UpperRight  PathTimePoint // 最后相关采样时刻的纵向远端

	PathLower float64 // min(BottomLeft.S, UpperLeft.S)
	PathUpper float64 // max(BottomRight.S, UpperRight.S)
	TimeLower float64 // 进入时刻
	TimeUpper float64 // 最后相关采样时刻

	// 障碍物感知速度在参考线切向上的投影，诊断用
	EnterV float64 // 进入时刻沿参考线方向的速度（米/秒）
	ExitV  float64 // 最后相关采样时刻沿参考线方向的速度（米/秒）
}

func (o *PathTimeObstacle) String() string {
	return fmt.Sprintf("PathTimeObstacle{%d, s=[%.2f,%.2f], t=[%.2f,%.2f]}",
		o.ObstacleID, o.PathLower, o.PathUpper, o.TimeLower, o.TimeUpper)
}

// finalize 计算聚合边界
// 功能：根据四个角点计算纵向与时间的聚合上下界
func (o *PathTimeObstacle) finalize() {
	o.PathLower = math.Min(o.BottomLeft.S, o.UpperLeft.S)
	o.PathUpper = math.Max(o.BottomRight.S, o.UpperRight.S)
	o.TimeLower = math.Min(o.BottomLeft.T, o.UpperLeft.T)
	o.TimeUpper = math.Max(o.BottomRight.T, o.UpperRight.T)
}
