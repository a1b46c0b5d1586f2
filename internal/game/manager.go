package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/E-Geraet/RAM-Monitoring-Lavalampe/config"
	"github.com/E-Geraet/RAM-Monitoring-Lavalampe/internal/lamp"
	"github.com/E-Geraet/RAM-Monitoring-Lavalampe/internal/monitor"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// sampleInterval 内存占用率的采样间隔，两次采样之间复用旧值
const sampleInterval = time.Second

type Manager struct {
	cfg     *config.Config
	cfgPath string

	sampler *monitor.Sampler
	state   *lamp.State
	buf     []byte  // 128x128 的逻辑画面，RGBA
	percent float64 // 最近一次(可能是缓存的)占用率

	scale      ScaleTier
	isDragging bool // 是否正在拖拽
	dragStartX int  // 拖拽开始时，鼠标相对于窗口的X
	dragStartY int  // 拖拽开始时，鼠标相对于窗口的Y
}

func (g *Manager) Init(cfg *config.Config, cfgPath string) {
	g.cfg = cfg
	g.cfgPath = cfgPath

	// 1. 搭引擎：去重日志 -> 路径解析 -> 加载器 -> 时钟 -> 动画状态
	diag := lamp.NewDiag(nil)
	res := lamp.NewResolver(cfg.AssetDir)
	loader := lamp.NewLoader(res, diag, cfg.ExpectedFrames, cfg.StrictWidth)
	clock := lamp.NewClock(cfg.ExpectedFrames, diag)
	g.state = lamp.NewState(loader, clock, diag)

	// 2. 内存采样器(同步限频，不开协程)
	g.sampler = monitor.NewSampler(monitor.SystemMem{}, sampleInterval)

	// 3. 逻辑画面缓冲
	g.buf = make([]byte, lamp.FrameSize*lamp.FrameSize*4)

	// 4. 按上次退出时的放大档摆好窗口
	g.scale = ClampScale(cfg.ScaleTier)
	g.applyScale()
	ebiten.SetWindowPosition(200, 200)
}

// applyScale 把当前放大档换算成窗口尺寸
func (g *Manager) applyScale() {
	side := lamp.FrameSize * g.scale.Factor()
	ebiten.SetWindowSize(side, side)
}

// persistScale 把放大档写回配置文件，保存失败只记日志不影响运行
func persistScale(cfg *config.Config, path string, s ScaleTier) {
	cfg.ScaleTier = int(s)
	if err := config.Save(cfg, path); err != nil {
		log.Println("保存配置失败:", err)
	}
}

func (g *Manager) Update() error {
	// 1. 获取鼠标状态
	mx, my := ebiten.CursorPosition()
	isHover := mx >= 0 && mx <= lamp.FrameSize && my >= 0 && my <= lamp.FrameSize
	isPressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// 2. 动态调整 TPS
	// 有人在交互就 60 帧丝滑模式，没人理它时降到 30 省电
	// (红色档 60ms 一帧，再低动画就跟不上了)
	if isHover || isPressed {
		ebiten.SetTPS(60)
	} else {
		ebiten.SetTPS(30)
	}

	// 3. ESC 退出
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 4. +/- 调窗口放大档(饱和，不回绕)
	// 换档立即写盘：用系统关闭按钮退出时不会经过我们的代码，不能等退出时再存
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		if next := g.scale.Up(); next != g.scale {
			g.scale = next
			g.applyScale()
			persistScale(g.cfg, g.cfgPath, g.scale)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		if next := g.scale.Down(); next != g.scale {
			g.scale = next
			g.applyScale()
			persistScale(g.cfg, g.cfgPath, g.scale)
		}
	}

	// 5. 拖拽逻辑
	// 获取鼠标相对于窗口左上角的坐标
	if isPressed {
		if !g.isDragging {
			// 刚按下的瞬间，记录鼠标相对于窗口的偏移量
			g.isDragging = true
			g.dragStartX = mx
			g.dragStartY = my
		} else {
			// 正在拖拽中：计算新的窗口位置
			// 当前鼠标在屏幕的绝对位置 = wx + mx
			// 我们希望保持 (wx_new + dragStartX) = (wx + mx)
			// 所以 wx_new = wx + mx - dragStartX
			wx, wy := ebiten.WindowPosition()
			ebiten.SetWindowPosition(wx+mx-g.dragStartX, wy+my-g.dragStartY)
		}
	} else {
		g.isDragging = false
	}

	// 6. 引擎走一拍：采样 -> 分档 -> (换贴图) -> 推帧 -> 合成
	percent, fresh := g.sampler.Percent()
	g.percent = percent
	g.state.Tick(percent, fresh, g.buf)

	return nil
}

func (g *Manager) Draw(screen *ebiten.Image) {
	// 逻辑画面就是整个屏幕(Layout 固定 128x128)，直接上传像素
	screen.WritePixels(g.buf)

	if g.cfg.ShowMonitor {
		label := fmt.Sprintf("%.1f%%", g.percent)
		if tier, ok := g.state.CurrentTier(); ok {
			label = fmt.Sprintf("%.1f%% %s", g.percent, tier)
		}
		// 画在 (2, 11)：文字从基线开始画，往下挪一点防止头被切掉
		text.Draw(screen, label, basicfont.Face7x13, 2, 11, color.RGBA{0, 255, 0, 255})
	}
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 画布固定 128x128，窗口再大也由 Ebiten 负责拉伸
	return lamp.FrameSize, lamp.FrameSize
}
