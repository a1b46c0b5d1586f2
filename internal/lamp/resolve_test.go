package lamp

import (
	"path/filepath"
	"testing"
)

// fakeResolver 造一个候选目录固定、存在性可控的解析器
func fakeResolver(dirs []string, existing map[string]bool) *Resolver {
	r := &Resolver{
		exists: func(path string) bool { return existing[path] },
	}
	for _, dir := range dirs {
		dir := dir
		r.builders = append(r.builders, func(name string) (string, bool) {
			return filepath.Join(dir, name), true
		})
	}
	return r
}

func TestResolvePrecedence(t *testing.T) {
	dirs := []string{"a", "b", "c"}
	// 文件同时存在于 b 和 c，必须命中靠前的 b
	r := fakeResolver(dirs, map[string]bool{
		filepath.Join("b", "x.png"): true,
		filepath.Join("c", "x.png"): true,
	})
	path, ok := r.Resolve("x.png")
	if !ok {
		t.Fatal("应该找得到 x.png")
	}
	if want := filepath.Join("b", "x.png"); path != want {
		t.Errorf("Resolve = %q, 期望优先级更高的 %q", path, want)
	}
}

func TestResolveMiss(t *testing.T) {
	r := fakeResolver([]string{"a", "b"}, nil)
	if _, ok := r.Resolve("x.png"); ok {
		t.Error("所有候选都不存在时应该返回 false")
	}
}

func TestResolveSkipsBrokenBuilder(t *testing.T) {
	// 拿不到环境(比如可执行文件路径)的候选要跳过，不能把后面的挡住
	r := &Resolver{exists: func(string) bool { return true }}
	r.builders = append(r.builders, func(string) (string, bool) { return "", false })
	r.builders = append(r.builders, func(name string) (string, bool) {
		return filepath.Join("ok", name), true
	})
	path, ok := r.Resolve("x.png")
	if !ok || path != filepath.Join("ok", "x.png") {
		t.Errorf("Resolve = %q, %v", path, ok)
	}
}

func TestNewResolverExtraDirFirst(t *testing.T) {
	// 配置里指定的目录要排在内置顺序前面
	r := NewResolver("extra")
	r.exists = func(string) bool { return true }
	path, ok := r.Resolve("x.png")
	if !ok || path != filepath.Join("extra", "x.png") {
		t.Errorf("Resolve = %q, %v, 期望 extra 目录优先", path, ok)
	}
}
