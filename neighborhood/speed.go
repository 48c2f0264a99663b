package neighborhood

import (
	"math"

	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity/refline"
)

// speedOnReferenceLine 计算障碍物速度在参考线切向上的投影
// 功能：在SL边界的纵向近端位置匹配参考线离散点取其航向，
// 将障碍物当前感知速度投影到该方向，得到沿路径的接近/远离速度
// 参数：refPoints-参考线离散点列，o-障碍物，sl-当前采样的SL边界
// 返回：沿参考线方向的速度（米/秒），正值表示沿路径前进方向
// 说明：该值与障碍物自身航向无关，只取决于速度矢量与参考线切向的夹角
func speedOnReferenceLine(
	refPoints []entity.PathPoint,
	o entity.IObstacle,
	sl entity.SLBoundary,
) float64 {
	matched := refline.MatchToPath(refPoints, sl.StartS)
	vx, vy := o.Velocity()
	return math.Cos(matched.Theta)*vx + math.Sin(matched.Theta)*vy
}
