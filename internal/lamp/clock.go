package lamp

import "time"

// Clock 动画时钟：按档位给定的间隔推进帧下标
// 只存 (当前帧, 上次推进时间) 两个状态
type Clock struct {
	frame       int
	lastAdvance time.Time
	expected    int
	diag        *Diag
	now         func() time.Time // 测试时注入假时钟
}

// NewClock 创建时钟，expected <= 0 时用默认名义帧数
func NewClock(expected int, diag *Diag) *Clock {
	if expected <= 0 {
		expected = DefaultExpectedFrames
	}
	return &Clock{expected: expected, diag: diag, now: time.Now}
}

// EffectiveFrames 把贴图自带帧数和名义帧数对齐，取小的那个
// 帧数不一致只告警一次，之后安静地用校正值
func (c *Clock) EffectiveFrames(sheet *SpriteSheet, name string) int {
	actual := sheet.FrameCount()
	switch {
	case actual < c.expected:
		c.diag.Oncef("警告: 贴图 %q 只有 %d 帧(宽 %d)，期望 %d 帧，按 %d 帧播放",
			name, actual, sheet.Width, c.expected, actual)
		return actual
	case actual > c.expected:
		c.diag.Oncef("警告: 贴图 %q 有 %d 帧(宽 %d)，多于期望的 %d 帧，多出的忽略",
			name, actual, sheet.Width, c.expected)
		return c.expected
	default:
		return c.expected
	}
}

// Advance 时间到了就把帧下标往前挪一格(回绕到 0)，没到就原地不动
// 返回当前应该显示的帧下标，恒在 [0, effective) 里
func (c *Clock) Advance(effective int, interval time.Duration) int {
	if c.frame >= effective {
		// 换了张更短的贴图，下标先收回来
		c.frame = 0
	}
	if c.now().Sub(c.lastAdvance) >= interval {
		c.frame = (c.frame + 1) % effective
		c.lastAdvance = c.now()
	}
	return c.frame
}

// Reset 换贴图或进入降级态时从第 0 帧重新开始
func (c *Clock) Reset() {
	c.frame = 0
	c.lastAdvance = c.now()
}

// Frame 当前帧下标
func (c *Clock) Frame() int { return c.frame }
