package config

import "github.com/sirupsen/logrus"

// log 配置模块的日志记录器
var log = logrus.WithField("module", "config")

// 采样参数默认值
const (
	DefaultPlannedTrajectoryTime     = 8.0   // 时间采样范围（秒）
	DefaultTrajectoryTimeResolution  = 0.1   // 时间采样步长（秒）
	DefaultPlannedTrajectoryHorizon  = 200.0 // 纵向前视距离（米）
	DefaultLateralEnterLaneThreshold = 2.0   // 横向偏移阈值（米）
	DefaultPathResolution            = 1.0   // 参考线离散化步长（米）
)

// RuntimeConfig 运行时配置
// 功能：存储规划器运行时的配置信息，采样参数已填入默认值
// 说明：将YAML配置转换为运行时可用的配置对象
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，进行配置验证并填入默认采样参数
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 算法说明：
// 1. 创建运行时配置对象
// 2. 对未指定（为0）的采样参数填入默认值
// 3. 验证采样参数为正且步长不大于采样范围
// 说明：确保配置的正确性和一致性，为规划运行提供有效配置
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control

	l := &rc.C.Lattice
	if l.PlannedTrajectoryTime == 0 {
		l.PlannedTrajectoryTime = DefaultPlannedTrajectoryTime
	}
	if l.TrajectoryTimeResolution == 0 {
		l.TrajectoryTimeResolution = DefaultTrajectoryTimeResolution
	}
	if l.PlannedTrajectoryHorizon == 0 {
		l.PlannedTrajectoryHorizon = DefaultPlannedTrajectoryHorizon
	}
	if l.LateralEnterLaneThreshold == 0 {
		l.LateralEnterLaneThreshold = DefaultLateralEnterLaneThreshold
	}
	if l.PathResolution == 0 {
		l.PathResolution = DefaultPathResolution
	}
	if l.PlannedTrajectoryTime < 0 || l.TrajectoryTimeResolution <= 0 ||
		l.PlannedTrajectoryHorizon < 0 || l.LateralEnterLaneThreshold < 0 ||
		l.PathResolution <= 0 {
		log.Panicf("bad lattice config %+v", *l)
	}
	if l.TrajectoryTimeResolution > l.PlannedTrajectoryTime {
		log.Panicf("trajectory_time_resolution %v larger than planned_trajectory_time %v",
			l.TrajectoryTimeResolution, l.PlannedTrajectoryTime)
	}

	return rc
}
