package lamp

import (
	"image/color"
	"time"
)

// Tier 档位：内存占用率被划分成四个离散档位
// 档位决定用哪张贴图、动画播多快
type Tier int

const (
	TierGreen  Tier = iota // 空闲 (<= 30%)
	TierYellow             // 繁忙 (<= 50%)
	TierOrange             // 紧张 (<= 80%)
	TierRed                // 危险 (> 80%)
)

// FallbackTier 兜底档位：目标贴图加载失败时退回绿色
const FallbackTier = TierGreen

// 静态配置表，启动后不会改
var tierTable = [...]struct {
	name     string
	asset    string
	interval time.Duration
	fill     color.RGBA
}{
	TierGreen:  {"绿色", "lavalampe_green.png", 200 * time.Millisecond, color.RGBA{0, 200, 80, 255}},
	TierYellow: {"黄色", "lavalampe_yellow.png", 150 * time.Millisecond, color.RGBA{230, 200, 0, 255}},
	TierOrange: {"橙色", "lavalampe_orange.png", 100 * time.Millisecond, color.RGBA{240, 130, 20, 255}},
	TierRed:    {"红色", "lavalampe_red.png", 60 * time.Millisecond, color.RGBA{220, 30, 30, 255}},
}

func (t Tier) String() string { return tierTable[t].name }

// Asset 该档位对应的贴图文件名
func (t Tier) Asset() string { return tierTable[t].asset }

// Interval 该档位下相邻两帧之间的墙钟间隔
func (t Tier) Interval() time.Duration { return tierTable[t].interval }

// Fill 该档位的标志色，降级渲染时用来铺纯色
func (t Tier) Fill() color.RGBA { return tierTable[t].fill }

// Classify 把占用率(百分比)归到档位上
// 边界取闭区间上界：正好 30.0 / 50.0 / 80.0 都算低档
// 超出 [0,100] 的输入也被同一组比较自然收拢，没有错误路径
func Classify(percent float64) Tier {
	switch {
	case percent <= 30.0:
		return TierGreen
	case percent <= 50.0:
		return TierYellow
	case percent <= 80.0:
		return TierOrange
	default:
		return TierRed
	}
}
