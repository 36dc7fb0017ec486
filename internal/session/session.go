package session

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"bonuscalc/internal/model"
	"bonuscalc/internal/processor"
)

var (
	// ErrConfigMissing 尚未匯入兩份設定清單就嘗試匯入銷售報表
	ErrConfigMissing = errors.New("請先匯入排除清單與獎勵清單")
	// ErrPersonNotFound 指定的銷售人員不存在
	ErrPersonNotFound = errors.New("銷售人員不存在")
	// ErrRowNotFound 指定的列不存在
	ErrRowNotFound = errors.New("資料列不存在")
	// ErrInvalidStatus 不合法的狀態值
	ErrInvalidStatus = errors.New("不合法的狀態值")
)

// Session 應用主狀態
// 持有設定清單、原始列與處理結果，所有變更都經由具名操作，
// 匯入期間持寫鎖，單列編輯不可能與匯入交錯
type Session struct {
	mu sync.RWMutex

	exclusionList []model.ExclusionItem
	rewardRules   []model.RewardRule
	rawSalesData  []model.RawRow
	processed     model.ProcessedData

	activePerson    string
	selectedPersons map[string]struct{}
}

// New 建立空白 Session
func New() *Session {
	return &Session{
		processed:       make(model.ProcessedData),
		selectedPersons: make(map[string]struct{}),
	}
}

// SetExclusionList 設定排除清單，覆蓋舊值
func (s *Session) SetExclusionList(list []model.ExclusionItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exclusionList = list
}

// SetRewardRules 設定獎勵規則，覆蓋舊值
func (s *Session) SetRewardRules(rules []model.RewardRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewardRules = rules
}

// ConfigReady 兩份設定清單是否皆已匯入
func (s *Session) ConfigReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exclusionList) > 0 && len(s.rewardRules) > 0
}

// ImportStats 匯入結果統計
type ImportStats struct {
	RawRows    int `json:"rawRows"`
	Persons    int `json:"persons"`
	Stage1Rows int `json:"stage1Rows"`
	Stage2Rows int `json:"stage2Rows"`
}

// ImportSales 匯入銷售報表並重建全部處理結果
// 兩份設定清單缺一即拒絕；新結果完整建好才替換舊狀態，
// 中途失敗時舊狀態原封不動
func (s *Session) ImportSales(rawData []model.RawRow) (ImportStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.exclusionList) == 0 || len(s.rewardRules) == 0 {
		return ImportStats{}, ErrConfigMissing
	}

	processed, err := processor.BuildProcessedData(rawData, s.exclusionList, s.rewardRules)
	if err != nil {
		return ImportStats{}, fmt.Errorf("銷售報表處理失敗: %w", err)
	}

	s.rawSalesData = rawData
	s.processed = processed

	// 預設全選，啟用名稱排序後的第一人
	s.selectedPersons = make(map[string]struct{}, len(processed))
	names := make([]string, 0, len(processed))
	for person := range processed {
		s.selectedPersons[person] = struct{}{}
		names = append(names, person)
	}
	sort.Strings(names)
	s.activePerson = ""
	if len(names) > 0 {
		s.activePerson = names[0]
	}

	stats := ImportStats{
		RawRows: len(rawData),
		Persons: len(processed),
	}
	for _, data := range processed {
		stats.Stage1Rows += len(data.Stage1)
		stats.Stage2Rows += len(data.Stage2)
	}
	return stats, nil
}

// HasData 是否已有匯入結果
func (s *Session) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rawSalesData) > 0
}

// Persons 所有銷售人員名稱，字典序
func (s *Session) Persons() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.processed))
	for person := range s.processed {
		names = append(names, person)
	}
	sort.Strings(names)
	return names
}

// ActivePerson 當前檢視的銷售人員
func (s *Session) ActivePerson() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePerson
}

// SetActivePerson 切換當前檢視的銷售人員
func (s *Session) SetActivePerson(person string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.processed[person]; !ok {
		return ErrPersonNotFound
	}
	s.activePerson = person
	return nil
}

// SelectedPersons 匯出勾選名單，字典序
func (s *Session) SelectedPersons() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.selectedPersons))
	for person := range s.selectedPersons {
		names = append(names, person)
	}
	sort.Strings(names)
	return names
}

// SelectPersons 重設匯出勾選名單，未知名稱忽略
func (s *Session) SelectPersons(persons []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedPersons = make(map[string]struct{}, len(persons))
	for _, person := range persons {
		if _, ok := s.processed[person]; ok {
			s.selectedPersons[person] = struct{}{}
		}
	}
}

// TogglePersonSelected 切換單人勾選狀態
func (s *Session) TogglePersonSelected(person string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.processed[person]; !ok {
		return ErrPersonNotFound
	}
	if _, ok := s.selectedPersons[person]; ok {
		delete(s.selectedPersons, person)
	} else {
		s.selectedPersons[person] = struct{}{}
	}
	return nil
}

// PersonData 單人三階段結果的深拷貝
func (s *Session) PersonData(person string) (*model.PersonData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.processed[person]
	if !ok {
		return nil, ErrPersonNotFound
	}
	return data.Clone(), nil
}

// UpdateStage1Status 變更點數表單列狀態並重算該列點數
// 只觸及單列，回傳更新後的拷貝
func (s *Session) UpdateStage1Status(person, id string, status model.Stage1Status) (*model.Stage1Row, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.processed[person]
	if !ok {
		return nil, ErrPersonNotFound
	}

	for _, row := range data.Stage1 {
		if row.ID != id {
			continue
		}
		row.Status = status
		row.CalculatedPoints = processor.RecalculateStage1Points(row)
		updated := *row
		return &updated, nil
	}
	return nil, ErrRowNotFound
}

// ToggleStage2Deleted 切換獎勵表單列的軟刪除旗標
func (s *Session) ToggleStage2Deleted(person, id string) (*model.Stage2Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.processed[person]
	if !ok {
		return nil, ErrPersonNotFound
	}

	for _, row := range data.Stage2 {
		if row.ID != id {
			continue
		}
		row.IsDeleted = !row.IsDeleted
		updated := *row
		return &updated, nil
	}
	return nil, ErrRowNotFound
}

// SetStage2CustomReward 以自由輸入文字設定獎勵覆寫金額
// 空白或無法解析的輸入視為清除覆寫，不報錯
func (s *Session) SetStage2CustomReward(person, id, rawValue string) (*model.Stage2Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.processed[person]
	if !ok {
		return nil, ErrPersonNotFound
	}

	for _, row := range data.Stage2 {
		if row.ID != id {
			continue
		}
		row.CustomReward = parseCustomReward(rawValue)
		updated := *row
		return &updated, nil
	}
	return nil, ErrRowNotFound
}

func parseCustomReward(rawValue string) *float64 {
	trimmed := strings.TrimSpace(rawValue)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}

// Stage1TotalPoints 單人未刪除列的點數總和
func (s *Session) Stage1TotalPoints(person string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.processed[person]
	if !ok {
		return 0, ErrPersonNotFound
	}

	total := 0.0
	for _, row := range data.Stage1 {
		if row.Status != model.StatusDelete {
			total += row.CalculatedPoints
		}
	}
	return total, nil
}

// Stage2Totals 單人現金總額與禮券張數
func (s *Session) Stage2Totals(person string) (cashTotal, voucherCount float64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.processed[person]
	if !ok {
		return 0, 0, ErrPersonNotFound
	}
	cashTotal, voucherCount = processor.Stage2Totals(data.Stage2)
	return cashTotal, voucherCount, nil
}

// ExportView 匯出視圖：處理結果深拷貝與勾選名單
func (s *Session) ExportView() (model.ProcessedData, map[string]bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make(map[string]bool, len(s.selectedPersons))
	for person := range s.selectedPersons {
		selected[person] = true
	}
	return s.processed.Clone(), selected
}

// Snapshot 目前完整狀態的快照，時間戳為呼叫當下
func (s *Session) Snapshot() *model.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make([]string, 0, len(s.selectedPersons))
	for person := range s.selectedPersons {
		selected = append(selected, person)
	}
	sort.Strings(selected)

	return &model.AppState{
		ExclusionList:   append([]model.ExclusionItem(nil), s.exclusionList...),
		RewardRules:     append([]model.RewardRule(nil), s.rewardRules...),
		RawSalesData:    append([]model.RawRow(nil), s.rawSalesData...),
		ProcessedData:   s.processed.Clone(),
		ActivePerson:    s.activePerson,
		SelectedPersons: selected,
		Timestamp:       time.Now().UnixMilli(),
	}
}

// Restore 以快照整體取代目前狀態
func (s *Session) Restore(state *model.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exclusionList = state.ExclusionList
	s.rewardRules = state.RewardRules
	s.rawSalesData = state.RawSalesData
	s.processed = state.ProcessedData
	if s.processed == nil {
		s.processed = make(model.ProcessedData)
	}
	s.activePerson = state.ActivePerson
	s.selectedPersons = make(map[string]struct{}, len(state.SelectedPersons))
	for _, person := range state.SelectedPersons {
		s.selectedPersons[person] = struct{}{}
	}
}
