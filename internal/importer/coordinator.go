package importer

import (
	"fmt"
	"io"
	"time"

	"bonuscalc/internal/session"
	"bonuscalc/internal/store"
)

// Coordinator 銷售報表匯入協調器
// 讀檔、重建處理結果並記錄匯入日誌，進度以事件通道回報
type Coordinator struct {
	session *session.Session
	store   *store.Store
}

// NewCoordinator 建立匯入協調器
func NewCoordinator(sess *session.Session, st *store.Store) *Coordinator {
	return &Coordinator{
		session: sess,
		store:   st,
	}
}

// ImportOptions 匯入選項
type ImportOptions struct {
	Reader   io.Reader
	Filename string
}

// ProgressEvent 進度事件
type ProgressEvent struct {
	Type      string    `json:"type"`    // start/info/done/error
	Message   string    `json:"message"` // 事件訊息
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Import 執行匯入，回傳進度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 16)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	send := func(eventType, message string, data any) {
		progressChan <- ProgressEvent{
			Type:      eventType,
			Message:   message,
			Data:      data,
			Timestamp: time.Now(),
		}
	}

	send("start", "開始匯入銷售報表", map[string]string{
		"filename": opts.Filename,
	})

	logID, logErr := c.store.CreateImportLog(opts.Filename)

	fail := func(message string) {
		if logErr == nil {
			_ = c.store.UpdateImportLog(logID, 0, 0, 0, 0, "error", message)
		}
		send("error", message, nil)
	}

	if !c.session.ConfigReady() {
		fail(session.ErrConfigMissing.Error())
		return
	}

	_, rows, err := ReadWorkbook(opts.Reader)
	if err != nil {
		fail(fmt.Sprintf("讀取報表失敗: %v", err))
		return
	}

	send("info", fmt.Sprintf("讀取 %d 筆原始列", len(rows)), map[string]int{
		"rawRows": len(rows),
	})

	stats, err := c.session.ImportSales(rows)
	if err != nil {
		fail(err.Error())
		return
	}

	if logErr == nil {
		_ = c.store.UpdateImportLog(logID, stats.RawRows, stats.Persons, stats.Stage1Rows, stats.Stage2Rows, "done", "")
	}

	send("done", "匯入完成", stats)
}
