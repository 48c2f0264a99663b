package task

import (
	"git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity/obstacle"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity/refline"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/config"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/input"
)

// log 任务模块的日志记录器
var log = logrus.WithField("module", "task")

// Context 规划任务上下文
// 功能：包含一次规划周期的所有变量和状态
// 说明：每个规划周期从输入数据完整重建，周期结束后整体废弃，不保留跨周期状态
type Context struct {

	// 任务名
	job string

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 障碍物管理器
	obstacleManager entity.IObstacleManager
	// 本周期的参考线
	referenceLine entity.IReferenceLine
	// 自车初始纵向状态(s,v,a)
	initS [3]float64

	// 用于初始化的输入
	initRes *input.Input
}

// NewContext 创建新的规划任务上下文
// 功能：初始化规划周期的所有组件和配置
// 参数：job-任务名称，c-配置对象
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 解析运行时配置并填入默认采样参数
// 2. 加载输入数据（地图与场景）
// 3. 构建参考线：场景直接给定点列，或从地图车道拼接
// 4. 创建障碍物管理器并初始化本周期障碍物集合
func NewContext(job string, c config.Config) *Context {
	ctx := &Context{
		job:           job,
		runtimeConfig: config.NewRuntimeConfig(c),
	}
	ctx.initRes = input.Init(c)
	s := ctx.initRes.Scenario
	ctx.initS = [3]float64{s.Ego.S, s.Ego.V, s.Ego.A}

	var line *refline.ReferenceLine
	var err error
	if len(s.ReferenceLine) > 0 {
		line, err = refline.New(lo.Map(s.ReferenceLine, func(p *input.ScenarioPoint, _ int) geometry.Point {
			return geometry.Point{X: p.X, Y: p.Y, Z: p.Z}
		}))
	} else {
		line, err = refline.NewFromLanes(ctx.initRes.Map, s.ReferenceLaneIDs)
	}
	if err != nil {
		log.Panicf("bad reference line: %v", err)
	}
	ctx.referenceLine = line

	m := obstacle.NewManager(ctx)
	m.Init(s.Obstacles)
	ctx.obstacleManager = m
	return ctx
}

// 获取运行时配置
func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// 获取障碍物管理器
func (ctx *Context) ObstacleManager() entity.IObstacleManager {
	return ctx.obstacleManager
}

// 获取本周期的参考线
func (ctx *Context) ReferenceLine() entity.IReferenceLine {
	return ctx.referenceLine
}

// 获取自车初始纵向状态(s,v,a)
func (ctx *Context) InitS() [3]float64 {
	return ctx.initS
}
