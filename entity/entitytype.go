package entity

import (
	"errors"
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/geometry"
)

// ErrInvalidGeometry 几何输入非法（NaN/Inf等）
// 说明：参考线投影遇到非有限数值时返回该错误种类，
// 调用方可按单采样跳过处理，避免污染已累计的数值结果
var ErrInvalidGeometry = errors.New("invalid geometry input")

// TrajectoryPoint 障碍物预测轨迹点
type TrajectoryPoint struct {
	XYZ          geometry.Point // 位置
	Theta        float64        // 航向角（弧度）
	V            float64        // 速度（米/秒）
	RelativeTime float64        // 相对预测起点的时间（秒）
}

// BoundingBox 带朝向的矩形包围盒
// 功能：以几何中心、航向角与长宽描述障碍物在某一时刻的占位
type BoundingBox struct {
	Center  geometry.Point // 几何中心
	Heading float64        // 航向角（弧度）
	Length  float64        // 纵向尺寸（米）
	Width   float64        // 横向尺寸（米）
}

// Corners 计算包围盒的四个角点
// 返回：按逆时针顺序的角点（前左、后左、后右、前右）
func (b BoundingBox) Corners() [4]geometry.Point {
	sin, cos := math.Sincos(b.Heading)
	dxL, dyL := cos*b.Length/2, sin*b.Length/2
	dxW, dyW := -sin*b.Width/2, cos*b.Width/2
	c := b.Center
	return [4]geometry.Point{
		{X: c.X + dxL + dxW, Y: c.Y + dyL + dyW, Z: c.Z},
		{X: c.X - dxL + dxW, Y: c.Y - dyL + dyW, Z: c.Z},
		{X: c.X - dxL - dxW, Y: c.Y - dyL - dyW, Z: c.Z},
		{X: c.X + dxL - dxW, Y: c.Y + dyL - dyW, Z: c.Z},
	}
}

// SLBoundary 包围盒在参考线Frenet坐标系下的投影边界
// 说明：StartS<=EndS为纵向范围，StartL<=EndL为投影角点横向偏移的范围（左正右负）
type SLBoundary struct {
	StartS float64 // 纵向下界
	EndS   float64 // 纵向上界
	StartL float64 // 横向下界
	EndL   float64 // 横向上界
}

func (b SLBoundary) String() string {
	return fmt.Sprintf("SLBoundary{S=[%v,%v], L=[%v,%v]}", b.StartS, b.EndS, b.StartL, b.EndL)
}

// IsFinite 检查边界数值是否均为有限数
func (b SLBoundary) IsFinite() bool {
	for _, v := range []float64{b.StartS, b.EndS, b.StartL, b.EndL} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PathPoint 参考线离散点
type PathPoint struct {
	XYZ   geometry.Point // 位置
	S     float64        // 纵向位置
	Theta float64        // 切向角度（弧度）
}

// LerpAngle 航向角线性插值
// 功能：在两个角度之间按比例k插值，沿较短的圆弧方向
// 参数：a-起始角度（弧度），b-结束角度（弧度），k-插值比例[0,1]
// 返回：插值后的角度（弧度，归一化到(-π,π]）
func LerpAngle(a, b, k float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	r := a + d*k
	r = math.Mod(r, 2*math.Pi)
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// entity/obstacle/obstacle.go的依赖倒置
type IObstacle interface {
	ID() int32                                             // 获取障碍物ID
	HasTrajectory() bool                                   // 是否存在预测轨迹
	GetPointAtTime(t float64) TrajectoryPoint              // 获取相对时刻t的预测位姿
	GetBoundingBox(point TrajectoryPoint) BoundingBox      // 获取给定位姿下的包围盒
	Velocity() (vx float64, vy float64)                    // 获取当前感知速度
	String() string
}

// entity/refline/refline.go的依赖倒置
type IReferenceLine interface {
	Length() float64                                       // 参考线长度
	GetPositionByS(s float64) geometry.Point               // S坐标转为xy(z)坐标
	GetHeadingByS(s float64) float64                       // S坐标处的切向角度
	ProjectToSL(pos geometry.Point) (s float64, l float64) // 将xy(z)坐标投影为SL坐标
	GetSLBoundary(box BoundingBox) (SLBoundary, error)     // 计算包围盒的SL边界
	PathPoints(resolution float64) []PathPoint             // 按间隔离散化参考线
}
