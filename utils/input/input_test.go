package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/utils/config"
)

func writeScenario(t *testing.T, content string) config.Config {
	t.Helper()
	file := filepath.Join(t.TempDir(), "scenario.yml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return config.Config{Input: config.Input{Scenario: config.InputPath{File: file}}}
}

func TestInitScenario(t *testing.T) {
	c := writeScenario(t, `
ego:
  s: 5
  v: 10
reference_line:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
obstacles:
  - id: 1
    length: 4
    width: 2
    vx: 3
    trajectory:
      - {x: 10, y: 0, theta: 0, t: 0}
      - {x: 20, y: 0, theta: 0, t: 1}
  - id: 2
    length: 1
    width: 1
`)
	res := Init(c)
	require.NotNil(t, res.Scenario)
	assert.Nil(t, res.Map)
	assert.Equal(t, 5.0, res.Scenario.Ego.S)
	assert.Equal(t, 10.0, res.Scenario.Ego.V)
	assert.Len(t, res.Scenario.ReferenceLine, 2)
	require.Len(t, res.Scenario.Obstacles, 2)
	o := res.Scenario.Obstacles[0]
	assert.Equal(t, int32(1), o.ID)
	assert.Equal(t, 3.0, o.VX)
	assert.Len(t, o.Trajectory, 2)
	assert.Empty(t, res.Scenario.Obstacles[1].Trajectory)
}

func TestInitNoScenarioFile(t *testing.T) {
	assert.Panics(t, func() { Init(config.Config{}) })
}

func TestInitDuplicateObstacleID(t *testing.T) {
	c := writeScenario(t, `
ego: {s: 0}
reference_line:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
obstacles:
  - {id: 1, length: 4, width: 2}
  - {id: 1, length: 4, width: 2}
`)
	assert.Panics(t, func() { Init(c) })
}

func TestInitReferenceLineExclusive(t *testing.T) {
	// 点列与车道ID同时给定
	c := writeScenario(t, `
ego: {s: 0}
reference_line:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
reference_lane_ids: [1, 2]
`)
	assert.Panics(t, func() { Init(c) })

	// 两者都未给定
	c = writeScenario(t, `
ego: {s: 0}
`)
	assert.Panics(t, func() { Init(c) })

	// 车道ID要求地图输入
	c = writeScenario(t, `
ego: {s: 0}
reference_lane_ids: [1, 2]
`)
	assert.Panics(t, func() { Init(c) })
}

func TestInitInvalidTrajectory(t *testing.T) {
	// 时间为负
	c := writeScenario(t, `
ego: {s: 0}
reference_line:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
obstacles:
  - id: 1
    length: 4
    width: 2
    trajectory:
      - {x: 0, y: 0, theta: 0, t: -1}
`)
	assert.Panics(t, func() { Init(c) })

	// 时间递减
	c = writeScenario(t, `
ego: {s: 0}
reference_line:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
obstacles:
  - id: 1
    length: 4
    width: 2
    trajectory:
      - {x: 0, y: 0, theta: 0, t: 1}
      - {x: 1, y: 0, theta: 0, t: 0.5}
`)
	assert.Panics(t, func() { Init(c) })

	// 尺寸非正
	c = writeScenario(t, `
ego: {s: 0}
reference_line:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
obstacles:
  - {id: 1, length: 0, width: 2}
`)
	assert.Panics(t, func() { Init(c) })
}

func TestInitUnknownField(t *testing.T) {
	// 严格解析：未知字段报错
	c := writeScenario(t, `
ego: {s: 0}
reference_line:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
unknown_field: 1
`)
	assert.Panics(t, func() { Init(c) })
}
