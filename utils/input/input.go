package input

import (
	"os"

	"git.fiblab.net/general/common/v2/protoutil"
	mapv2 "git.fiblab.net/sim/protos/v2/go/city/map/v2"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/config"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v2"
)

// log 输入模块的日志记录器
var log = logrus.WithField("module", "input")

// Input 输入数据
// 功能：存储一次规划周期所需的所有输入数据
// 说明：包含可选的地图数据与必选的场景数据，全部从文件加载
type Input struct {
	Map      *mapv2.Map // 地图（可选，参考线来源之一）
	Scenario *Scenario  // 场景（自车状态与障碍物集合）
}

// Init 加载数据
// 功能：根据配置初始化并加载所有输入数据
// 参数：config-配置对象
// 返回：加载完成的输入数据指针
// 算法说明：
// 1. 地图数据加载：如果配置了地图文件，从protobuf文件加载
// 2. 场景数据加载：从YAML文件严格解析场景
// 3. 数据验证：
//   - 障碍物ID唯一性检查
//   - 预测轨迹时间非负且单调不减检查
//   - 参考线来源检查：点列与车道ID二选一，车道ID要求地图存在
//
// 说明：这是数据加载的主入口，确保规划所需的所有数据都正确加载
func Init(config config.Config) (res *Input) {
	res = &Input{}

	if config.Input.Map.File != "" {
		res.Map = mustLoadPb[mapv2.Map](config.Input.Map.File)
	}

	if config.Input.Scenario.File == "" {
		log.Panic("scenario file must be specified")
	}
	file, err := os.ReadFile(config.Input.Scenario.File)
	if err != nil {
		log.Panicf("failed to read scenario file: %v", err)
	}
	var s Scenario
	if err := yaml.UnmarshalStrict(file, &s); err != nil {
		log.Panicf("failed to load scenario from file: %v", err)
	}

	obstacleIDs := make(map[int32]struct{})
	for _, o := range s.Obstacles {
		if _, ok := obstacleIDs[o.ID]; ok {
			log.Panicf("obstacles have duplicated ids %d, please check data", o.ID)
		}
		obstacleIDs[o.ID] = struct{}{}
		if err := checkTrajectoryValid(o); err != nil {
			log.Panicf("obstacle %d: %v", o.ID, err)
		}
	}

	if len(s.ReferenceLine) > 0 && len(s.ReferenceLaneIDs) > 0 {
		log.Panic("reference_line and reference_lane_ids are mutually exclusive")
	}
	if len(s.ReferenceLine) == 0 && len(s.ReferenceLaneIDs) == 0 {
		log.Panic("either reference_line or reference_lane_ids must be specified")
	}
	if len(s.ReferenceLaneIDs) > 0 && res.Map == nil {
		log.Panic("reference_lane_ids requires a map input")
	}

	res.Scenario = &s
	return
}

// mustLoadPb 必须从文件加载protobuf数据（泛型函数）
// 功能：从文件系统加载protobuf数据，加载失败则panic
// 参数：file-protobuf文件路径
// 返回：加载的数据对象
func mustLoadPb[T any, PT interface {
	proto.Message
	*T
}](file string) PT {
	var res T
	pt := PT(&res)
	log.Infof("start loading %s", file)
	if err := protoutil.UnmarshalFromFile(pt, file); err != nil {
		log.Panicf("failed to load pb from file: %v", err)
	}
	log.Infof("finish loading %s", file)
	return pt
}
