package main

import (
	"log"

	"github.com/E-Geraet/RAM-Monitoring-Lavalampe/config"
	"github.com/E-Geraet/RAM-Monitoring-Lavalampe/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

const configFile = "config.json"

func main() {
	// 1. 基础窗口设置
	ebiten.SetWindowDecorated(false)  // 无边框
	ebiten.SetScreenTransparent(true) // 透明背景
	ebiten.SetWindowFloating(true)    // 始终置顶
	ebiten.SetWindowTitle("RAM Lavalampe")

	// 2. 读配置(文件缺失或损坏都会退回默认值)
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Println("读取配置失败，用默认配置:", err)
		cfg = config.NewDefault()
	}

	// 3. 初始化逻辑(里面会按配置算窗口尺寸)
	mgr := &game.Manager{}
	mgr.Init(cfg, configFile)

	// 4. 启动
	// 展示面出错是唯一的致命错误，直接退出
	if err := ebiten.RunGame(mgr); err != nil {
		log.Fatal(err)
	}
}
