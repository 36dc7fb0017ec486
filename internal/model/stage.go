package model

// Stage1Status 第一階段列狀態
type Stage1Status string

const (
	StatusDevelop    Stage1Status = "develop"    // 開發
	StatusHalfYear   Stage1Status = "halfYear"   // 隔半年
	StatusRepurchase Stage1Status = "repurchase" // 回購
	StatusDelete     Stage1Status = "delete"     // 刪除
)

// Valid 檢查狀態值是否合法
func (s Stage1Status) Valid() bool {
	switch s {
	case StatusDevelop, StatusHalfYear, StatusRepurchase, StatusDelete:
		return true
	}
	return false
}

// Stage1Row 點數表列
type Stage1Row struct {
	ID               string       `json:"id"`
	SalesPerson      string       `json:"salesPerson"`
	Date             string       `json:"date"` // 單號第 5-6 位的兩碼日期
	CustomerID       string       `json:"customerID"`
	CustomerName     string       `json:"customerName"`
	ItemID           string       `json:"itemID"`
	ItemName         string       `json:"itemName"`
	Quantity         float64      `json:"quantity"`
	OriginalPoints   float64      `json:"originalPoints"`
	CalculatedPoints float64      `json:"calculatedPoints"` // 隨狀態變更重算
	Category         string       `json:"category"`         // 重新分類後的顯示分類
	Status           Stage1Status `json:"status"`
	Raw              RawRow       `json:"raw"` // 原始列引用
}

// Stage2Row 現金獎勵表列
type Stage2Row struct {
	ID           string   `json:"id"`
	SalesPerson  string   `json:"salesPerson"`
	DisplayDate  string   `json:"displayDate"`
	SortDate     string   `json:"sortDate"` // 原始銷售日期，保留供時序排序
	CustomerID   string   `json:"customerID"`
	CustomerName string   `json:"customerName"`
	ItemID       string   `json:"itemID"`
	ItemName     string   `json:"itemName"`
	Quantity     float64  `json:"quantity"`
	Category     string   `json:"category"`
	Note         string   `json:"note"`
	Reward       float64  `json:"reward"`
	RewardLabel  string   `json:"rewardLabel"`
	CustomReward *float64 `json:"customReward,omitempty"` // 使用者覆寫的總金額
	Format       string   `json:"format"`
	IsDeleted    bool     `json:"isDeleted"` // 軟刪除，可還原
}

// EffectiveReward 現金列的有效金額：有覆寫用覆寫，否則數量×單件獎勵
func (r *Stage2Row) EffectiveReward() float64 {
	if r.CustomReward != nil {
		return *r.CustomReward
	}
	return r.Quantity * r.Reward
}

// Stage3Row 美妝品牌小計列
type Stage3Row struct {
	CategoryName string  `json:"categoryName"`
	SubTotal     float64 `json:"subTotal"`
}

// Stage3Summary 單一銷售人員的美妝金額彙總
// 列順序固定，無銷售的品牌小計為 0
type Stage3Summary struct {
	SalesPerson string      `json:"salesPerson"`
	Rows        []Stage3Row `json:"rows"`
	Total       float64     `json:"total"`
}

// PersonData 單一銷售人員的三階段結果
type PersonData struct {
	Stage1 []*Stage1Row   `json:"stage1"`
	Stage2 []*Stage2Row   `json:"stage2"`
	Stage3 *Stage3Summary `json:"stage3"`
}

// ProcessedData 銷售人員名稱到三階段結果的映射，匯入後的主狀態
type ProcessedData map[string]*PersonData

// Clone 深拷貝單人資料
func (p *PersonData) Clone() *PersonData {
	if p == nil {
		return nil
	}
	out := &PersonData{
		Stage1: make([]*Stage1Row, len(p.Stage1)),
		Stage2: make([]*Stage2Row, len(p.Stage2)),
	}
	for i, r := range p.Stage1 {
		row := *r
		out.Stage1[i] = &row
	}
	for i, r := range p.Stage2 {
		row := *r
		if r.CustomReward != nil {
			v := *r.CustomReward
			row.CustomReward = &v
		}
		out.Stage2[i] = &row
	}
	if p.Stage3 != nil {
		s3 := *p.Stage3
		s3.Rows = append([]Stage3Row(nil), p.Stage3.Rows...)
		out.Stage3 = &s3
	}
	return out
}

// Clone 深拷貝整份處理結果
func (d ProcessedData) Clone() ProcessedData {
	if d == nil {
		return nil
	}
	out := make(ProcessedData, len(d))
	for person, data := range d {
		out[person] = data.Clone()
	}
	return out
}
