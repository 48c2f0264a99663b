package obstacle

import (
	"fmt"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/input"
)

// Obstacle 感知障碍物实体
// 功能：携带感知到的障碍物尺寸、当前速度与预测轨迹，
// 向规划器提供按相对时间查询的位姿与包围盒
type Obstacle struct {
	id     int32
	length float64 // 纵向尺寸（米）
	width  float64 // 横向尺寸（米）
	vx, vy float64 // 当前感知速度（米/秒）

	trajectory []entity.TrajectoryPoint // 预测轨迹，按RelativeTime升序
}

// newObstacle 创建并初始化一个新的Obstacle实例
// 功能：根据场景数据创建Obstacle对象，转换并排序预测轨迹
// 参数：base-场景障碍物数据
// 返回：初始化完成的Obstacle实例
func newObstacle(base *input.ScenarioObstacle) *Obstacle {
	o := &Obstacle{
		id:     base.ID,
		length: base.Length,
		width:  base.Width,
		vx:     base.VX,
		vy:     base.VY,
	}
	o.trajectory = lo.Map(base.Trajectory, func(p *input.ScenarioTrajectoryPoint, _ int) entity.TrajectoryPoint {
		return entity.TrajectoryPoint{
			XYZ:          geometry.Point{X: p.X, Y: p.Y},
			Theta:        p.Theta,
			V:            p.V,
			RelativeTime: p.T,
		}
	})
	sort.SliceStable(o.trajectory, func(i, j int) bool {
		return o.trajectory[i].RelativeTime < o.trajectory[j].RelativeTime
	})
	return o
}

func (o *Obstacle) String() string {
	return fmt.Sprintf("Obstacle %d", o.id)
}

// 获取障碍物ID
func (o *Obstacle) ID() int32 {
	if o == nil {
		return -1
	}
	return o.id
}

// 获取障碍物长度
func (o *Obstacle) Length() float64 {
	return o.length
}

// 获取障碍物宽度
func (o *Obstacle) Width() float64 {
	return o.width
}

// 获取当前感知速度
func (o *Obstacle) Velocity() (float64, float64) {
	return o.vx, o.vy
}

// 是否存在预测轨迹
func (o *Obstacle) HasTrajectory() bool {
	return len(o.trajectory) > 0
}

// GetPointAtTime 获取相对时刻t的预测位姿
// 功能：在预测轨迹中查询时刻t的位姿，必要时线性插值
// 参数：t-相对预测起点的时间（秒）
// 返回：时刻t的轨迹点
// 算法说明：
// 1. 超出预测范围时钳制到首/末轨迹点
// 2. 否则二分查找相邻轨迹点并线性插值（位置用Blend，航向沿短弧插值）
// 说明：调用前应通过HasTrajectory确认轨迹非空
func (o *Obstacle) GetPointAtTime(t float64) entity.TrajectoryPoint {
	if len(o.trajectory) == 0 {
		log.Panicf("obstacle %d has no trajectory", o.id)
	}
	first := o.trajectory[0]
	if t <= first.RelativeTime {
		return first
	}
	last := o.trajectory[len(o.trajectory)-1]
	if t >= last.RelativeTime {
		return last
	}
	i := sort.Search(len(o.trajectory), func(i int) bool {
		return o.trajectory[i].RelativeTime >= t
	})
	p0, p1 := o.trajectory[i-1], o.trajectory[i]
	k := (t - p0.RelativeTime) / (p1.RelativeTime - p0.RelativeTime)
	return entity.TrajectoryPoint{
		XYZ:          geometry.Blend(p0.XYZ, p1.XYZ, k),
		Theta:        entity.LerpAngle(p0.Theta, p1.Theta, k),
		V:            p0.V + (p1.V-p0.V)*k,
		RelativeTime: t,
	}
}

// GetBoundingBox 获取给定位姿下的包围盒
// 功能：以预测位姿为几何中心、航向为朝向构造障碍物包围盒
// 参数：point-预测轨迹点
// 返回：该时刻的包围盒
func (o *Obstacle) GetBoundingBox(point entity.TrajectoryPoint) entity.BoundingBox {
	return entity.BoundingBox{
		Center:  point.XYZ,
		Heading: point.Theta,
		Length:  o.length,
		Width:   o.width,
	}
}
