package obstacle

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/input"
)

// ObstacleManager 障碍物管理器
// 功能：管理一次规划周期内的所有障碍物实体，提供创建、查找等功能
type ObstacleManager struct {
	ctx entity.ITaskContext

	data      map[int32]*Obstacle
	obstacles []*Obstacle
}

// NewManager 创建障碍物管理器实例
// 功能：初始化障碍物管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的障碍物管理器实例
func NewManager(ctx entity.ITaskContext) *ObstacleManager {
	return &ObstacleManager{
		ctx:       ctx,
		data:      make(map[int32]*Obstacle),
		obstacles: make([]*Obstacle, 0),
	}
}

// Init 初始化所有障碍物
// 功能：根据场景数据初始化所有障碍物对象，建立ID映射关系
// 参数：bases-场景障碍物数据列表
// 说明：使用并行处理提高初始化效率；没有预测轨迹的障碍物会输出debug日志，
// 但仍然保留在集合中，由邻域构建器决定忽略
func (m *ObstacleManager) Init(bases []*input.ScenarioObstacle) {
	m.obstacles = parallel.GoMap(bases, func(base *input.ScenarioObstacle) *Obstacle {
		return newObstacle(base)
	})
	m.data = lo.SliceToMap(m.obstacles, func(o *Obstacle) (int32, *Obstacle) {
		return o.id, o
	})
	horizon := m.ctx.RuntimeConfig().C.Lattice.PlannedTrajectoryTime
	for _, o := range m.obstacles {
		if !o.HasTrajectory() {
			log.Debugf("obstacle %d has no prediction, will be ignored", o.id)
		} else if last := o.trajectory[len(o.trajectory)-1].RelativeTime; last < horizon {
			log.Debugf("obstacle %d prediction ends at %.2fs before horizon %.2fs, pose will be clamped",
				o.id, last, horizon)
		}
	}
}

// Get 根据ID获取障碍物实例
// 功能：通过障碍物ID查找对应的障碍物对象，如果不存在则panic
// 参数：id-障碍物的唯一标识符
// 返回：对应的障碍物实例，如果不存在则panic
func (m *ObstacleManager) Get(id int32) entity.IObstacle {
	if o, ok := m.data[id]; !ok {
		log.Panicf("no id %d in obstacle data", id)
		return nil
	} else {
		return o
	}
}

// GetOrError 根据ID获取障碍物实例（带错误处理）
// 功能：通过障碍物ID查找对应的障碍物对象，如果不存在则返回错误
// 参数：id-障碍物的唯一标识符
// 返回：障碍物实例和错误信息，如果不存在则返回nil和错误
func (m *ObstacleManager) GetOrError(id int32) (entity.IObstacle, error) {
	if o, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in obstacle data", id)
	} else {
		return o, nil
	}
}

// Obstacles 获取本周期的全部障碍物
func (m *ObstacleManager) Obstacles() []entity.IObstacle {
	return lo.Map(m.obstacles, func(o *Obstacle, _ int) entity.IObstacle { return o })
}
