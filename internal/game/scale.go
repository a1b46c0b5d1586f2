package game

// ScaleTier 窗口放大档：一个封闭的小状态机
// 只改窗口尺寸，逻辑画面永远是 128x128，引擎完全感知不到它
type ScaleTier int

const (
	Scale1x ScaleTier = iota
	Scale2x
	Scale3x
	Scale4x
)

// ClampScale 把配置文件里读出来的整数收拢到合法档位
func ClampScale(v int) ScaleTier {
	if v < int(Scale1x) {
		return Scale1x
	}
	if v > int(Scale4x) {
		return Scale4x
	}
	return ScaleTier(v)
}

// Factor 该档位的放大倍数
func (t ScaleTier) Factor() int { return int(t) + 1 }

// Up 放大一档，顶格后不动(饱和，不回绕)
func (t ScaleTier) Up() ScaleTier {
	if t >= Scale4x {
		return Scale4x
	}
	return t + 1
}

// Down 缩小一档，到底后不动
func (t ScaleTier) Down() ScaleTier {
	if t <= Scale1x {
		return Scale1x
	}
	return t - 1
}
