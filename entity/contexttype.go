package entity

import (
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/config"
)

// ITaskContext 规划任务上下文接口
// 说明：一个Context对应一次规划周期，周期结束后整体废弃重建
type ITaskContext interface {
	RuntimeConfig() *config.RuntimeConfig // 运行时配置
	ObstacleManager() IObstacleManager    // 障碍物管理器
	ReferenceLine() IReferenceLine        // 本周期的参考线
}
