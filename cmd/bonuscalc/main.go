package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bonuscalc/internal/config"
	"bonuscalc/internal/server"
	"bonuscalc/internal/util"
)

var (
	port    = flag.Int("port", 0, "服務埠號 (config.toml 優先)")
	devMode = flag.Bool("dev", false, "開發模式")
	dataDir = flag.String("dataDir", "", "資料目錄 (覆蓋設定檔)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  分店獎金計算系統")
	fmt.Println("==========================================")

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("載入設定失敗，使用預設設定: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令列參數覆蓋設定
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 確保資料目錄存在
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("建立資料目錄失敗: %v", err)
	} else {
		fmt.Printf("資料目錄: %s\n", dir)
	}

	// 建立伺服器
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 啟動伺服器
	go func() {
		fmt.Printf("服務啟動中，監聽埠號 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服務啟動失敗: %v", err)
		}
	}()

	// 開啟瀏覽器
	if !cfg.Server.DevMode {
		fmt.Printf("正在開啟瀏覽器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("無法自動開啟瀏覽器，請手動開啟: %s\n", url)
		}
	} else {
		fmt.Printf("開發模式: 請開啟 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服務...")

	// 等待訊號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在關閉服務...")
	if err := srv.SaveNow(); err != nil {
		log.Printf("退出前存檔失敗: %v", err)
	}
	if err := srv.Close(); err != nil {
		log.Printf("關閉儲存層失敗: %v", err)
	}
}
