package lamp

import (
	"strings"
	"testing"
)

func TestTickLoadsTierSheet(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, TierGreen.Asset(), 2, FrameSize, 255)

	diag, _ := captureDiag()
	loader := NewLoader(dirResolver(dir), diag, 2, false)
	state := NewState(loader, NewClock(2, diag), diag)

	dst := newDst(background)
	state.Tick(10, true, dst)

	tier, ok := state.CurrentTier()
	if !ok || tier != TierGreen {
		t.Fatalf("CurrentTier = %v, %v", tier, ok)
	}
	if state.FallbackActive() || state.Degraded() {
		t.Error("正常加载不该是兜底或降级态")
	}
}

func TestTickFallback(t *testing.T) {
	// 红色贴图缺失、绿色存在 -> 持有绿色贴图并标记兜底
	dir := t.TempDir()
	writeSheet(t, dir, TierGreen.Asset(), 2, FrameSize, 255)

	diag, _ := captureDiag()
	loader := NewLoader(dirResolver(dir), diag, 2, false)
	state := NewState(loader, NewClock(2, diag), diag)

	dst := newDst(background)
	state.Tick(95, true, dst)

	tier, _ := state.CurrentTier()
	if tier != TierRed {
		t.Errorf("CurrentTier = %v, 期望红色(档位跟指标走)", tier)
	}
	if !state.FallbackActive() {
		t.Error("兜底标志没立起来")
	}
	if state.Degraded() {
		t.Error("拿到兜底贴图就不算降级")
	}
}

func TestTickDegraded(t *testing.T) {
	// 目标和兜底都缺失 -> 无贴图，铺档位纯色
	dir := t.TempDir()

	diag, _ := captureDiag()
	loader := NewLoader(dirResolver(dir), diag, 2, false)
	state := NewState(loader, NewClock(2, diag), diag)

	dst := newDst(background)
	state.Tick(95, true, dst)

	if !state.Degraded() {
		t.Fatal("应该进降级态")
	}
	fill := TierRed.Fill()
	if got := pixelAt(dst, 64, 64); got != [4]byte{fill.R, fill.G, fill.B, fill.A} {
		t.Errorf("降级画面 = %v, 期望红色档位色", got)
	}
}

func TestTickDedupDiagnostics(t *testing.T) {
	// 同一个失败的加载连续触发两次，诊断只出一条
	dir := t.TempDir()

	diag, out := captureDiag()
	loader := NewLoader(dirResolver(dir), diag, 2, false)
	state := NewState(loader, NewClock(2, diag), diag)

	dst := newDst(background)
	state.Tick(95, true, dst)
	state.Tick(95, true, dst) // 新样本会重试加载

	needle := TierRed.Asset()
	n := strings.Count(out.String(), "警告: 贴图 \""+needle+"\"")
	if n != 1 {
		t.Errorf("找不到贴图的告警出现 %d 次, 期望 1 次\n日志:\n%s", n, out.String())
	}
}

func TestTickRetriesOnFreshSample(t *testing.T) {
	// 兜底期间目标贴图补上了：老样本不重试，新样本重试成功
	dir := t.TempDir()
	writeSheet(t, dir, TierGreen.Asset(), 2, FrameSize, 255)

	diag, _ := captureDiag()
	loader := NewLoader(dirResolver(dir), diag, 2, false)
	state := NewState(loader, NewClock(2, diag), diag)

	dst := newDst(background)
	state.Tick(95, true, dst)
	if !state.FallbackActive() {
		t.Fatal("前提不成立：应该先进兜底态")
	}

	writeSheet(t, dir, TierRed.Asset(), 2, FrameSize, 255)

	state.Tick(95, false, dst)
	if !state.FallbackActive() {
		t.Error("没有新样本不该重试")
	}

	state.Tick(95, true, dst)
	if state.FallbackActive() {
		t.Error("新样本应该把目标贴图捞回来")
	}
}

func TestTickTierSwitchReloads(t *testing.T) {
	// 档位变化触发重新加载，帧下标回到 0
	dir := t.TempDir()
	writeSheet(t, dir, TierGreen.Asset(), 2, FrameSize, 255)
	writeSheet(t, dir, TierOrange.Asset(), 2, FrameSize, 255)

	diag, _ := captureDiag()
	loader := NewLoader(dirResolver(dir), diag, 2, false)
	clock := NewClock(2, diag)
	state := NewState(loader, clock, diag)

	dst := newDst(background)
	state.Tick(10, true, dst)
	clock.frame = 1 // 假装动画已经走了一帧

	state.Tick(70, false, dst)
	tier, _ := state.CurrentTier()
	if tier != TierOrange {
		t.Errorf("CurrentTier = %v, 期望橙色", tier)
	}
	if clock.Frame() != 0 {
		t.Errorf("换档后帧下标 = %d, 期望重置到 0", clock.Frame())
	}
}

func TestTickBeforeFirstClassify(t *testing.T) {
	// 还没分过档时 CurrentTier 第二个返回值是 false
	diag, _ := captureDiag()
	loader := NewLoader(dirResolver(t.TempDir()), diag, 2, false)
	state := NewState(loader, NewClock(2, diag), diag)

	if _, ok := state.CurrentTier(); ok {
		t.Error("初始状态不该有档位")
	}
}
