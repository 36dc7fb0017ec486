package server

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"bonuscalc/internal/api"
	"bonuscalc/internal/config"
	"bonuscalc/internal/session"
	"bonuscalc/internal/store"
)

// Server HTTP 伺服器
type Server struct {
	router  *gin.Engine
	session *session.Session
	store   *store.Store
	api     *api.Handler

	autoSaveInterval time.Duration
	stopAutoSave     chan struct{}
}

// NewServer 建立伺服器
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "bonuscalc.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sess := session.New()
	exportDir := filepath.Join(dataDir, "exports")
	apiHandler := api.NewHandler(sess, sqliteStore, exportDir, cfg.Export.FilenamePrefix)

	interval := time.Duration(cfg.Data.AutoSaveInterval) * time.Minute
	if interval <= 0 {
		interval = 3 * time.Minute
	}

	s := &Server{
		router:           gin.Default(),
		session:          sess,
		store:            sqliteStore,
		api:              apiHandler,
		autoSaveInterval: interval,
		stopAutoSave:     make(chan struct{}),
	}

	s.setupRoutes()
	s.startAutoSave()

	return s
}

// setupRoutes 設定路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// 服務資訊
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "分店獎金計算系統",
			"version": api.Version,
		})
	})
}

// startAutoSave 啟動定時自動存檔
// 只在已有匯入資料時寫入，避免空狀態覆蓋既有存檔
func (s *Server) startAutoSave() {
	go func() {
		ticker := time.NewTicker(s.autoSaveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.session.HasData() {
					continue
				}
				state := s.session.Snapshot()
				if err := s.store.SaveSnapshot(state); err != nil {
					log.Printf("自動存檔失敗: %v", err)
					continue
				}
				log.Printf("自動存檔完成: %s", time.UnixMilli(state.Timestamp).Format("15:04:05"))
			case <-s.stopAutoSave:
				return
			}
		}
	}()
}

// Run 啟動伺服器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// SaveNow 立即持久化目前狀態
func (s *Server) SaveNow() error {
	if !s.session.HasData() {
		return nil
	}
	return s.store.SaveSnapshot(s.session.Snapshot())
}

// Close 停止自動存檔並關閉儲存層
func (s *Server) Close() error {
	close(s.stopAutoSave)
	return s.store.Close()
}

// GetSession 取得 Session（測試用）
func (s *Server) GetSession() *session.Session {
	return s.session
}
