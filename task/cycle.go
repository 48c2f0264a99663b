package task

import (
	"time"

	"github.com/tsinghua-fib-lab/lattice-planner-oss/neighborhood"
)

// Run 执行一个规划周期
// 功能：基于本周期的输入构建路径-时间邻域，供下游轨迹优化与避障逻辑查询
// 返回：构建完成的邻域
// 算法说明：
// 1. 按配置步长离散化参考线，供速度投影的最近点匹配使用
// 2. 构建邻域：对每个障碍物采样预测轨迹并累计占用包络
// 3. 输出统计日志与逐障碍物的包络明细（debug级别）
func (ctx *Context) Run() *neighborhood.Neighborhood {
	cfg := ctx.runtimeConfig.C.Lattice
	refPoints := ctx.referenceLine.PathPoints(cfg.PathResolution)
	obstacles := ctx.obstacleManager.Obstacles()

	startTime := time.Now()
	n := neighborhood.New(cfg, ctx.initS, ctx.referenceLine, obstacles, refPoints)
	entries := n.GetPathTimeObstacles()
	log.Infof("job %s: built path-time neighborhood with %d/%d obstacles in %v",
		ctx.job, len(entries), len(obstacles), time.Since(startTime))
	for _, e := range entries {
		log.Debugf("%v", e)
	}
	return n
}
