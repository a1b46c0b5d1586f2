package config

import (
	"encoding/json"
	"os"
)

// Config 结构体：对应 config.json 的内容
type Config struct {
	AssetDir       string `json:"asset_dir"`          // 额外的贴图目录，优先于内置查找顺序，可留空
	ExpectedFrames int    `json:"expected_frames"`    // 名义帧数，贴图帧数和它对不上会告警
	StrictWidth    bool   `json:"strict_sheet_width"` // 严格模式：宽度必须正好等于 名义帧数*帧宽
	ShowMonitor    bool   `json:"show_monitor"`       // 是否把占用率文字叠在画面上
	ScaleTier      int    `json:"scale_tier"`         // 上次退出时的窗口放大档
}

// NewDefault 生成一份默认配置
// 当找不到配置文件，或者读取失败时，用这个“保底”
func NewDefault() *Config {
	return &Config{
		AssetDir:       "",
		ExpectedFrames: 90,
		StrictWidth:    false,
		ShowMonitor:    false,
		ScaleTier:      0,
	}
}

// Load 从硬盘读取配置
func Load(filename string) (*Config, error) {
	// 1. 尝试打开文件
	file, err := os.Open(filename)
	if err != nil {
		// 如果文件不存在，直接返回默认配置，不算报错
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}
	defer file.Close()

	// 2. 解析 JSON
	cfg := &Config{}
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		// 如果 JSON 格式坏了，也返回默认配置
		return NewDefault(), nil
	}

	// 旧版本的配置文件里可能没有这个字段
	if cfg.ExpectedFrames <= 0 {
		cfg.ExpectedFrames = 90
	}

	return cfg, nil
}

// Save 把当前配置写入硬盘
func Save(cfg *Config, filename string) error {
	// 1. 创建/覆盖文件
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	// 2. 写入 JSON (SetIndent 让生成的 JSON 带缩进，方便人类阅读)
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
