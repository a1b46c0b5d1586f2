package lamp

import (
	"os"
	"path/filepath"
)

// AppName 用户级共享目录 ($HOME/.local/share/<AppName>) 里的应用名
const AppName = "ram-lavalampe"

// pathBuilder 把文件名拼成一个候选路径；环境缺失(比如拿不到可执行文件路径)时返回 false
type pathBuilder func(name string) (string, bool)

// Resolver 按固定优先级在几个资源目录里找文件
// 纯查找，不缓存：每次换档重新解析一遍
type Resolver struct {
	exists   func(path string) bool
	builders []pathBuilder
}

// NewResolver 创建默认解析器
// 查找顺序：extraDir(配置里指定的，可为空) -> 工作目录 assets ->
// 可执行文件旁边的 assets -> 上一级 -> 上两级 -> ~/.local/share/<app>/assets
func NewResolver(extraDir string) *Resolver {
	r := &Resolver{
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}

	if extraDir != "" {
		r.builders = append(r.builders, func(name string) (string, bool) {
			return filepath.Join(extraDir, name), true
		})
	}

	r.builders = append(r.builders, func(name string) (string, bool) {
		return filepath.Join("assets", name), true
	})

	// 基于可执行文件位置的三个候选：assets、../assets、../../assets
	for _, up := range []string{".", "..", filepath.Join("..", "..")} {
		up := up
		r.builders = append(r.builders, func(name string) (string, bool) {
			exe, err := os.Executable()
			if err != nil {
				return "", false
			}
			return filepath.Join(filepath.Dir(exe), up, "assets", name), true
		})
	}

	r.builders = append(r.builders, func(name string) (string, bool) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return filepath.Join(home, ".local", "share", AppName, "assets", name), true
	})

	return r
}

// Resolve 返回第一个真实存在的候选路径；全都不存在返回 false
func (r *Resolver) Resolve(name string) (string, bool) {
	for _, build := range r.builders {
		path, ok := build(name)
		if !ok {
			continue
		}
		if r.exists(path) {
			return path, true
		}
	}
	return "", false
}
