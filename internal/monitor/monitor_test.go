package monitor

import (
	"errors"
	"testing"
	"time"
)

// fakeMem 可编程的内存计数来源
type fakeMem struct {
	total, used uint64
	err         error
	calls       int
}

func (f *fakeMem) Counters() (uint64, uint64, error) {
	f.calls++
	return f.total, f.used, f.err
}

func TestPercentComputation(t *testing.T) {
	src := &fakeMem{total: 1000, used: 250}
	s := NewSampler(src, time.Second)

	got, fresh := s.Percent()
	if !fresh {
		t.Error("第一次调用应该真的采样")
	}
	if got != 25.0 {
		t.Errorf("Percent = %v, 期望 25", got)
	}
}

func TestZeroTotal(t *testing.T) {
	// total 为 0 按 0% 处理，不能除零
	src := &fakeMem{total: 0, used: 123}
	s := NewSampler(src, time.Second)

	if got, _ := s.Percent(); got != 0 {
		t.Errorf("Percent = %v, 期望 0", got)
	}
}

func TestRateLimit(t *testing.T) {
	src := &fakeMem{total: 100, used: 50}
	s := NewSampler(src, time.Second)

	clock := time.Unix(1000, 0)
	s.now = func() time.Time { return clock }

	s.Percent()
	// 间隔没到：复用缓存，不碰数据源
	clock = clock.Add(500 * time.Millisecond)
	got, fresh := s.Percent()
	if fresh || got != 50 {
		t.Errorf("Percent = %v, fresh = %v, 期望缓存值", got, fresh)
	}
	if src.calls != 1 {
		t.Errorf("数据源被调了 %d 次, 期望 1 次", src.calls)
	}

	// 间隔到了：重新采样
	src.used = 80
	clock = clock.Add(600 * time.Millisecond)
	got, fresh = s.Percent()
	if !fresh || got != 80 {
		t.Errorf("Percent = %v, fresh = %v, 期望新样本 80", got, fresh)
	}
}

func TestSourceErrorKeepsCache(t *testing.T) {
	src := &fakeMem{total: 100, used: 40}
	s := NewSampler(src, time.Second)

	clock := time.Unix(1000, 0)
	s.now = func() time.Time { return clock }

	s.Percent()

	// 之后数据源坏了，继续用旧值，fresh 为 false
	src.err = errors.New("采样失败")
	clock = clock.Add(2 * time.Second)
	got, fresh := s.Percent()
	if fresh || got != 40 {
		t.Errorf("Percent = %v, fresh = %v, 期望沿用 40", got, fresh)
	}
}
