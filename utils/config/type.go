package config

// InputPath 指定输入数据来源的配置（文件系统）
// 功能：定义数据输入路径的配置结构
type InputPath struct {
	File string `yaml:"file,omitempty"` // 文件路径
}

// Input 指定规划器所有输入数据的配置项
// 功能：定义一次规划周期的所有输入数据配置
// 说明：地图为可选输入，仅在场景通过车道ID指定参考线时需要
type Input struct {
	Map      InputPath `yaml:"map,omitempty"` // 地图（protobuf，参考线来源之一）
	Scenario InputPath `yaml:"scenario"`      // 场景（YAML，自车状态与障碍物集合）
}

// Lattice 路径-时间图采样参数
// 功能：定义邻域构建器的时间采样范围与相关性过滤阈值
// 说明：按部署固定，不随单次调用变化；为0的字段在NewRuntimeConfig中填入默认值
type Lattice struct {
	PlannedTrajectoryTime     float64 `yaml:"planned_trajectory_time,omitempty"`      // 时间采样范围（秒）
	TrajectoryTimeResolution  float64 `yaml:"trajectory_time_resolution,omitempty"`   // 时间采样步长（秒）
	PlannedTrajectoryHorizon  float64 `yaml:"planned_trajectory_horizon,omitempty"`   // 纵向前视距离（米），超出该距离的障碍物不予考虑
	LateralEnterLaneThreshold float64 `yaml:"lateral_enter_lane_threshold,omitempty"` // 横向偏移阈值（米），两端都超出视为在车道带之外
	PathResolution            float64 `yaml:"path_resolution,omitempty"`              // 参考线离散化步长（米），用于速度投影的最近点匹配
}

// Control 规划器控制配置
// 功能：定义规划器的核心控制参数
type Control struct {
	Lattice Lattice `yaml:"lattice"`
}

// Config YAML配置文件的根结构
// 功能：定义整个规划器的配置结构
type Config struct {
	Input   Input   `yaml:"input"`   // 输入
	Control Control `yaml:"control"` // 规划过程控制
}
