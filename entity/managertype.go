package entity

import (
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/input"
)

// Manager依赖倒置

// entity/obstacle/manager.go的依赖倒置
type IObstacleManager interface {
	Init(bases []*input.ScenarioObstacle) // 初始化

	// 输入障碍物ID，查找障碍物，如果不存在则panic
	Get(id int32) IObstacle
	// 输入障碍物ID，查找障碍物，如果不存在则返回error
	GetOrError(id int32) (IObstacle, error)

	Obstacles() []IObstacle // 本周期的全部障碍物
}
