package refline

import (
	"fmt"
	"math"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	geov2 "git.fiblab.net/sim/protos/v2/go/city/geo/v2"
	mapv2 "git.fiblab.net/sim/protos/v2/go/city/map/v2"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lattice-planner-oss/entity"
)

// ReferenceLine 参考线实体
// 功能：表示规划所依据的道路对齐曲线，提供S坐标与xy坐标的相互转换、
// 包围盒的SL边界计算与参考线离散化
// 说明：内部以折线表示，S坐标为沿折线的弧长
type ReferenceLine struct {
	line           []geometry.Point             // 折线点列
	lineLengths    []float64                    // 折线点对应的长度列表
	lineDirections []geometry.PolylineDirection // 折线段每一段的方向（atan2）
	length         float64                      // 参考线总长度
}

// New 根据点列创建参考线
// 功能：根据折线点列创建参考线，计算长度列表与方向列表
// 参数：points-折线点列，至少两个点
// 返回：初始化完成的参考线实例与错误信息
func New(points []geometry.Point) (*ReferenceLine, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("reference line needs at least 2 points, got %d", len(points))
	}
	for i, p := range points {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("reference line point %d is non-finite: %w", i, entity.ErrInvalidGeometry)
			}
		}
	}
	r := &ReferenceLine{line: points}
	r.lineLengths = geometry.GetPolylineLengths2D(r.line)
	r.length = r.lineLengths[len(r.lineLengths)-1]
	r.lineDirections = geometry.GetPolylineDirections(r.line)
	if r.length <= 0 {
		return nil, fmt.Errorf("reference line has zero length")
	}
	return r, nil
}

// NewFromLanes 根据地图车道拼接参考线
// 功能：按路由顺序将多条车道的中心线拼接为一条参考线
// 参数：m-地图数据，laneIDs-按行驶顺序排列的车道ID列表
// 返回：初始化完成的参考线实例与错误信息
// 说明：相邻车道中心线的相接点只保留一份，避免产生零长度折线段
func NewFromLanes(m *mapv2.Map, laneIDs []int32) (*ReferenceLine, error) {
	if len(laneIDs) == 0 {
		return nil, fmt.Errorf("empty lane id list")
	}
	index := lo.SliceToMap(m.Lanes, func(l *mapv2.Lane) (int32, *mapv2.Lane) {
		return l.Id, l
	})
	points := make([]geometry.Point, 0)
	for _, id := range laneIDs {
		lane, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("no id %d in map lane data", id)
		}
		nodes := lo.Map(lane.CenterLine.Nodes, func(node *geov2.XYPosition, _ int) geometry.Point {
			return geometry.NewPointFromPb(node)
		})
		if len(points) > 0 && len(nodes) > 0 {
			last := points[len(points)-1]
			if math.Hypot(nodes[0].X-last.X, nodes[0].Y-last.Y) < 1e-6 {
				nodes = nodes[1:]
			}
		}
		points = append(points, nodes...)
	}
	return New(points)
}

// 获取参考线长度
func (r *ReferenceLine) Length() float64 {
	return r.length
}

// 获取参考线折线点列
func (r *ReferenceLine) Line() []geometry.Point {
	return r.line
}

// 根据S坐标计算切向角度
func (r *ReferenceLine) GetHeadingByS(s float64) float64 {
	if s < r.lineLengths[0] || s > r.lineLengths[len(r.lineLengths)-1] {
		log.Debugf("get heading with s %v out of range{%v,%v}",
			s, r.lineLengths[0], r.lineLengths[len(r.lineLengths)-1])
		s = lo.Clamp(s, r.lineLengths[0], r.lineLengths[len(r.lineLengths)-1])
	}
	if i := sort.SearchFloat64s(r.lineLengths, s); i == 0 {
		return r.lineDirections[0].Direction
	} else {
		return r.lineDirections[i-1].Direction
	}
}

// 将S坐标转换为xy(z)坐标
func (r *ReferenceLine) GetPositionByS(s float64) (pos geometry.Point) {
	if s < r.lineLengths[0] || s > r.lineLengths[len(r.lineLengths)-1] {
		log.Debugf("get position with s %v out of range{%v,%v}",
			s, r.lineLengths[0], r.lineLengths[len(r.lineLengths)-1])
		s = lo.Clamp(s, r.lineLengths[0], r.lineLengths[len(r.lineLengths)-1])
	}
	if i := sort.SearchFloat64s(r.lineLengths, s); i == 0 {
		pos = r.line[0]
	} else {
		sHigh, sLow := r.lineLengths[i], r.lineLengths[i-1]
		k := (s - sLow) / (sHigh - sLow)
		pos = geometry.Blend(r.line[i-1], r.line[i], k)
	}
	return
}

// ProjectToSL 将xy(z)坐标投影为SL坐标
// 功能：计算点到参考线的最近点，给出纵向位置s与带符号的横向偏移l
// 参数：pos-待投影的坐标
// 返回：s-纵向位置（钳制在[0,length]内），l-横向偏移（左正右负）
// 算法说明：
// 1. 求点到折线的最近点对应的s
// 2. 取s处的切向角度，用叉积的符号确定横向偏移方向
func (r *ReferenceLine) ProjectToSL(pos geometry.Point) (s, l float64) {
	s = lo.Clamp(geometry.GetClosestPolylineSToPoint2D(r.line, r.lineLengths, pos), 0, r.length)
	foot := r.GetPositionByS(s)
	theta := r.GetHeadingByS(s)
	dx, dy := pos.X-foot.X, pos.Y-foot.Y
	l = math.Cos(theta)*dy - math.Sin(theta)*dx
	return
}

// GetSLBoundary 计算包围盒的SL边界
// 功能：将包围盒的四个角点分别投影到参考线上，取纵向与横向的最小/最大值
// 参数：box-障碍物包围盒
// 返回：SL边界与错误信息，包围盒含非有限数值时返回ErrInvalidGeometry
func (r *ReferenceLine) GetSLBoundary(box entity.BoundingBox) (entity.SLBoundary, error) {
	startS, endS := math.MaxFloat64, -math.MaxFloat64
	startL, endL := math.MaxFloat64, -math.MaxFloat64
	for _, corner := range box.Corners() {
		if math.IsNaN(corner.X) || math.IsInf(corner.X, 0) ||
			math.IsNaN(corner.Y) || math.IsInf(corner.Y, 0) {
			return entity.SLBoundary{}, fmt.Errorf("non-finite bounding box corner %+v: %w",
				corner, entity.ErrInvalidGeometry)
		}
		s, l := r.ProjectToSL(corner)
		startS = math.Min(startS, s)
		endS = math.Max(endS, s)
		startL = math.Min(startL, l)
		endL = math.Max(endL, l)
	}
	return entity.SLBoundary{StartS: startS, EndS: endS, StartL: startL, EndL: endL}, nil
}

// PathPoints 按间隔离散化参考线
// 功能：从起点开始按等间隔采样参考线，产生带切向角度的离散点列
// 参数：resolution-离散化步长（米）
// 返回：离散点列，末端点总是包含
func (r *ReferenceLine) PathPoints(resolution float64) []entity.PathPoint {
	if resolution <= 0 {
		log.Panicf("bad path resolution %v", resolution)
	}
	points := make([]entity.PathPoint, 0, int(r.length/resolution)+2)
	for s := 0.0; s < r.length; s += resolution {
		points = append(points, entity.PathPoint{
			XYZ:   r.GetPositionByS(s),
			S:     s,
			Theta: r.GetHeadingByS(s),
		})
	}
	points = append(points, entity.PathPoint{
		XYZ:   r.GetPositionByS(r.length),
		S:     r.length,
		Theta: r.GetHeadingByS(r.length),
	})
	return points
}

// MatchToPath 在离散参考线点列中定位纵向位置s对应的点
// 功能：最近位置匹配，航向在相邻离散点间线性插值
// 参数：points-按S升序的离散点列，s-纵向位置
// 返回：匹配出的参考线点
// 说明：s超出点列范围时钳制到首/末点
func MatchToPath(points []entity.PathPoint, s float64) entity.PathPoint {
	if len(points) == 0 {
		log.Panic("match to empty path")
	}
	if s <= points[0].S {
		return points[0]
	}
	last := points[len(points)-1]
	if s >= last.S {
		return last
	}
	i := sort.Search(len(points), func(i int) bool { return points[i].S >= s })
	p0, p1 := points[i-1], points[i]
	k := (s - p0.S) / (p1.S - p0.S)
	return entity.PathPoint{
		XYZ:   geometry.Blend(p0.XYZ, p1.XYZ, k),
		S:     s,
		Theta: entity.LerpAngle(p0.Theta, p1.Theta, k),
	}
}
