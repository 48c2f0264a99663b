package neighborhood

import (
	"math"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/config"
)

// Neighborhood 路径-时间邻域
// 功能：一次规划周期内所有运动障碍物相对参考线的占用图，
// 记录每个障碍物在(路径位置,时间)坐标系中占据的包络
// 说明：构建时一次性完成全部采样计算，之后只读；
// 每个规划周期重新构建，不跨周期保留任何状态
type Neighborhood struct {
	initS [3]float64 // 自车初始纵向状态(s,v,a)，本模块只使用s

	pathTimeObstacleMap map[int32]*PathTimeObstacle
}

// New 构建路径-时间邻域
// 功能：对每个障碍物采样预测轨迹，过滤出相关时间窗并累计占用包络
// 参数：
//   - cfg: 采样参数（时间范围、步长、前视距离、横向阈值）
//   - initS: 自车初始纵向状态(s,v,a)
//   - refLine: 参考线
//   - obstacles: 本周期的障碍物集合，相互独立处理
//   - refPoints: 参考线离散点列，用于速度投影的最近点匹配
//
// 返回：构建完成的邻域
// 算法说明：
// 1. 没有预测轨迹的障碍物直接跳过，不产生任何条目
// 2. 对其余障碍物在[0,PlannedTrajectoryTime)内按步长采样，
//    逐采样将包围盒投影为SL边界并做相关性判定
// 3. 障碍物间无共享可变状态，使用并行处理提高效率
// 说明：单个障碍物的数据问题不会使构建失败，从未相关的障碍物不出现在结果中
func New(
	cfg config.Lattice,
	initS [3]float64,
	refLine entity.IReferenceLine,
	obstacles []entity.IObstacle,
	refPoints []entity.PathPoint,
) *Neighborhood {
	n := &Neighborhood{initS: initS}
	entries := parallel.GoMapFilter(obstacles, func(o entity.IObstacle) (*PathTimeObstacle, bool) {
		return buildObstacle(cfg, initS[0], refLine, o, refPoints)
	})
	n.pathTimeObstacleMap = lo.SliceToMap(entries, func(e *PathTimeObstacle) (int32, *PathTimeObstacle) {
		return e.ObstacleID, e
	})
	return n
}

// buildObstacle 构建单个障碍物的路径-时间包络
// 功能：沿时间采样障碍物预测轨迹，按相关性判据累计包络
// 参数：cfg-采样参数，egoS-自车初始纵向位置，refLine-参考线，o-障碍物，refPoints-参考线离散点列
// 返回：包络与是否有效
// 算法说明：
// 1. 相关性判据，满足任一条件视为不相关：
//   - EndS < 0：完全在自车后方
//   - StartS > egoS+前视距离：超出前视范围
//   - |StartL|与|EndL|都超过横向阈值：完全在车道带之外
//
// 2. 已进入相关区域后遇到第一个不相关采样即停止（不会重新进入）
// 3. 几何投影异常（非有限数值）按单采样跳过，不推进状态机、不污染包络
func buildObstacle(
	cfg config.Lattice,
	egoS float64,
	refLine entity.IReferenceLine,
	o entity.IObstacle,
	refPoints []entity.PathPoint,
) (*PathTimeObstacle, bool) {
	if !o.HasTrajectory() {
		return nil, false
	}
	acc := newAccumulator(o.ID())
	// 采样时刻由整数步数导出，避免浮点累加误差多采一步
	for i := 0; ; i++ {
		t := float64(i) * cfg.TrajectoryTimeResolution
		if t >= cfg.PlannedTrajectoryTime {
			break
		}
		point := o.GetPointAtTime(t)
		box := o.GetBoundingBox(point)
		sl, err := refLine.GetSLBoundary(box)
		if err != nil || !sl.IsFinite() {
			log.Debugf("%v: skip sample at t=%.2f: %v", o, t, err)
			continue
		}
		relevant := !(sl.EndS < 0 ||
			sl.StartS > egoS+cfg.PlannedTrajectoryHorizon ||
			(math.Abs(sl.StartL) > cfg.LateralEnterLaneThreshold &&
				math.Abs(sl.EndL) > cfg.LateralEnterLaneThreshold))
		acc.observe(relevant)
		if acc.done() {
			break
		}
		if relevant {
			v := speedOnReferenceLine(refPoints, o, sl)
			acc.record(sl, t, v)
		}
	}
	return acc.result()
}

// InitS 获取自车初始纵向状态(s,v,a)
func (n *Neighborhood) InitS() [3]float64 {
	return n.initS
}

// GetPathTimeObstacles 获取全部障碍物包络的快照
// 返回：包络列表，顺序不保证
// 说明：返回副本，调用方的修改不影响邻域内部数据
func (n *Neighborhood) GetPathTimeObstacles() []*PathTimeObstacle {
	return lo.MapToSlice(n.pathTimeObstacleMap, func(_ int32, e *PathTimeObstacle) *PathTimeObstacle {
		c := *e
		return &c
	})
}

// GetPathTimeObstacle 按障碍物ID查询包络
// 参数：obstacleID-障碍物ID
// 返回：包络副本与是否存在
// 说明：不存在表示该障碍物在整个时间范围内都不构成占用约束，
// 包括没有预测轨迹的障碍物与从未满足相关性判据的障碍物，调用方不应视为错误
func (n *Neighborhood) GetPathTimeObstacle(obstacleID int32) (*PathTimeObstacle, bool) {
	e, ok := n.pathTimeObstacleMap[obstacleID]
	if !ok {
		return nil, false
	}
	c := *e
	return &c, true
}
