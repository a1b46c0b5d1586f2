package monitor

import (
	"time"

	"github.com/shirou/gopsutil/v3/mem"
)

// MemSource 内存计数来源：返回总量和已用量(字节)
// 真实现走 gopsutil，测试里塞假数
type MemSource interface {
	Counters() (total, used uint64, err error)
}

// SystemMem 用 gopsutil 读真实系统内存
type SystemMem struct{}

func (SystemMem) Counters() (uint64, uint64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return v.Total, v.Used, nil
}

// Sampler 限频采样器：最多每 interval 采一次，其间复用上次的值
// 同步调用，不开后台协程，渲染路径永远不会被它卡住
type Sampler struct {
	src      MemSource
	interval time.Duration
	now      func() time.Time // 测试时注入假时钟

	last   time.Time
	cached float64
	primed bool
}

// NewSampler 创建采样器，interval <= 0 时默认 1 秒
func NewSampler(src MemSource, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Sampler{src: src, interval: interval, now: time.Now}
}

// Percent 返回内存占用率(0-100)
// fresh 表示这次调用真的采了新样；没到点就返回缓存值
func (s *Sampler) Percent() (percent float64, fresh bool) {
	if s.primed && s.now().Sub(s.last) < s.interval {
		return s.cached, false
	}

	total, used, err := s.src.Counters()
	if err != nil {
		// 采样失败不致命，继续用旧值
		return s.cached, false
	}

	if total == 0 {
		s.cached = 0
	} else {
		s.cached = float64(used) / float64(total) * 100.0
	}
	s.last = s.now()
	s.primed = true
	return s.cached, true
}
