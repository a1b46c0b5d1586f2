package lamp

import "image/color"

// background 没有内容可画时的底色(全透明黑)
var background = color.RGBA{0, 0, 0, 0}

// State 动画状态：整个核心里唯一会变的东西
// 单线程独占，每个渲染周期恰好更新一次
type State struct {
	loader *Loader
	clock  *Clock
	diag   *Diag

	requested Tier // 当前档位(由占用率算出)
	hasTier   bool
	sheet     *SpriteSheet // 当前持有的贴图，降级时为 nil
	fallback  bool         // 贴图属于兜底档位而不是 requested
}

// NewState 创建初始状态：还没分档、没加载任何贴图
func NewState(loader *Loader, clock *Clock, diag *Diag) *State {
	return &State{loader: loader, clock: clock, diag: diag}
}

// Tick 一个渲染周期：分档 -> 必要时换贴图 -> 推帧 -> 合成到 dst
// percent 是(可能缓存的)占用率；fresh 表示这个周期刚采了新样，
// 处在兜底/降级态时借新样本的机会重试一次目标贴图
func (s *State) Tick(percent float64, fresh bool, dst []byte) {
	tier := Classify(percent)

	switch {
	case !s.hasTier || tier != s.requested:
		s.switchTo(tier)
	case fresh && (s.sheet == nil || s.fallback):
		// 档位没变但上次没拿到目标贴图，重新走一遍解析
		s.switchTo(tier)
	}

	Fill(dst, background)

	if s.sheet == nil {
		// 降级渲染：还认得档位就铺档位色，否则留底色
		if s.hasTier {
			Fill(dst, s.requested.Fill())
		}
		return
	}

	name := s.requested.Asset()
	if s.fallback {
		name = FallbackTier.Asset()
	}
	effective := s.clock.EffectiveFrames(s.sheet, name)
	frame := s.clock.Advance(effective, s.requested.Interval())
	Composite(dst, s.sheet, frame)
}

// switchTo 换档：加载目标贴图，失败退兜底，再失败进降级态
// 一次 Tick 里最多走一遍，不在同周期内自动重试
func (s *State) switchTo(tier Tier) {
	s.requested = tier
	s.hasTier = true
	s.fallback = false

	s.diag.Oncef("需要贴图: %s (%s)", tier, tier.Asset())

	sheet, err := s.loader.Load(tier.Asset())
	if err == nil {
		s.sheet = sheet
		s.clock.Reset()
		s.diag.Oncef("加载成功: %s", tier.Asset())
		return
	}

	if tier != FallbackTier {
		s.diag.Oncef("尝试兜底: %s", FallbackTier.Asset())
		fb, err2 := s.loader.Load(FallbackTier.Asset())
		if err2 == nil {
			s.sheet = fb
			s.fallback = true
			s.clock.Reset()
			s.diag.Oncef("兜底加载成功: %s", FallbackTier.Asset())
			return
		}
		s.diag.Once("严重: 兜底贴图也加载失败，进入降级渲染")
	} else {
		s.diag.Once("严重: 兜底档位的贴图本身加载失败，进入降级渲染")
	}

	s.sheet = nil
	s.clock.Reset()
}

// CurrentTier 当前档位；还没分过档时第二个返回值为 false
func (s *State) CurrentTier() (Tier, bool) { return s.requested, s.hasTier }

// FallbackActive 当前贴图是否来自兜底档位
func (s *State) FallbackActive() bool { return s.fallback }

// Degraded 是否处在无贴图的降级态
func (s *State) Degraded() bool { return s.hasTier && s.sheet == nil }
