package lamp

import (
	"fmt"
	"log"
)

// Diag 去重日志：同一条消息整个进程生命周期只打印一次
// 消息文本本身就是去重键，缓存只增不清
type Diag struct {
	seen map[string]struct{}
	out  *log.Logger
}

// NewDiag 创建去重日志器，out 传 nil 时用标准 log
func NewDiag(out *log.Logger) *Diag {
	if out == nil {
		out = log.Default()
	}
	return &Diag{
		seen: make(map[string]struct{}),
		out:  out,
	}
}

// Once 打印一条消息；之前打过的直接吞掉
func (d *Diag) Once(msg string) {
	if _, ok := d.seen[msg]; ok {
		return
	}
	d.seen[msg] = struct{}{}
	d.out.Print(msg)
}

// Oncef 带格式化的 Once，先格式化再去重
func (d *Diag) Oncef(format string, args ...any) {
	d.Once(fmt.Sprintf(format, args...))
}
