package model

// AppState 應用完整狀態的快照
// 供自動存檔持久化與還原使用，核心只定義形狀，不負責儲存
type AppState struct {
	ExclusionList   []ExclusionItem `json:"exclusionList"`
	RewardRules     []RewardRule    `json:"rewardRules"`
	RawSalesData    []RawRow        `json:"rawSalesData"`
	ProcessedData   ProcessedData   `json:"processedData"`
	ActivePerson    string          `json:"activePerson"`
	SelectedPersons []string        `json:"selectedPersons"`
	Timestamp       int64           `json:"timestamp"` // Unix 毫秒
}
