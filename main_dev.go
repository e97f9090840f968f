//go:build dev
// +build dev

/*
 * @Description: 开发模式入口
 */
package main

import (
	"embed"
	"log"

	"github.com/dsp2b/dsp2b/cmd/server"
)

// 开发模式下使用空的 embed.FS
var content embed.FS

func main() {
	log.Println("🔧 开发模式启动 - 前端请单独运行 npm run dev")

	// 开发模式下传入空的 embed.FS，只提供 API 服务
	app, cleanup, err := server.NewApp(content)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	defer cleanup()
	defer app.Stop()

	if err := app.Run(); err != nil {
		log.Fatalf("应用运行失败: %v", err)
	}
}
