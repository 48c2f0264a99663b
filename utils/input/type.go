package input

// ScenarioPoint 场景中的三维坐标点
type ScenarioPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z,omitempty"`
}

// ScenarioTrajectoryPoint 障碍物预测轨迹点
// 说明：由上游预测模块给出，t为相对预测起点的时间
type ScenarioTrajectoryPoint struct {
	X     float64 `yaml:"x"`               // 位置x（米）
	Y     float64 `yaml:"y"`               // 位置y（米）
	Theta float64 `yaml:"theta"`           // 航向角（弧度）
	V     float64 `yaml:"v,omitempty"`     // 速度（米/秒）
	T     float64 `yaml:"t"`               // 相对时间（秒）
}

// ScenarioObstacle 场景中的单个感知障碍物
// 说明：预测轨迹为空表示上游没有给出任何预测，规划时直接忽略该障碍物
type ScenarioObstacle struct {
	ID         int32                      `yaml:"id"`                   // 障碍物ID，周期内唯一
	Length     float64                    `yaml:"length"`               // 纵向尺寸（米）
	Width      float64                    `yaml:"width"`                // 横向尺寸（米）
	VX         float64                    `yaml:"vx,omitempty"`         // 当前感知速度x分量（米/秒）
	VY         float64                    `yaml:"vy,omitempty"`         // 当前感知速度y分量（米/秒）
	Trajectory []*ScenarioTrajectoryPoint `yaml:"trajectory,omitempty"` // 预测轨迹
}

// ScenarioEgo 自车初始状态
type ScenarioEgo struct {
	S float64 `yaml:"s"`           // 初始纵向位置（米）
	V float64 `yaml:"v,omitempty"` // 初始纵向速度（米/秒）
	A float64 `yaml:"a,omitempty"` // 初始纵向加速度（米/秒²）
}

// Scenario 一次规划周期的输入场景
// 功能：定义规划器单周期所需的全部输入：自车状态、参考线来源与障碍物集合
// 说明：参考线可以直接给定点列，或通过车道ID列表从地图中拼接，二选一
type Scenario struct {
	Ego              ScenarioEgo         `yaml:"ego"`                          // 自车初始状态
	ReferenceLine    []*ScenarioPoint    `yaml:"reference_line,omitempty"`     // 参考线点列
	ReferenceLaneIDs []int32             `yaml:"reference_lane_ids,omitempty"` // 参考线车道ID列表（需要地图输入）
	Obstacles        []*ScenarioObstacle `yaml:"obstacles,omitempty"`          // 障碍物集合
}
