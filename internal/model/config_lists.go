package model

// ExclusionItem 藥師點數排除清單項目
// 出現在清單中的品項編號不納入第一階段點數表
type ExclusionItem struct {
	ItemID string `json:"itemID"`
}

// RewardRule 現金獎勵規則
// 以品項編號為鍵，一個品項至多對應一條規則
type RewardRule struct {
	ItemID      string  `json:"itemID"`
	Note        string  `json:"note"`        // 備註
	Category    string  `json:"category"`    // 類別
	Reward      float64 `json:"reward"`      // 單件獎勵金額
	RewardLabel string  `json:"rewardLabel"` // 原始獎勵文字（禮券顯示用）
	Format      string  `json:"format"`      // 形式：現金 / 禮券
}

// 獎勵形式
const (
	FormatCash    = "現金"
	FormatVoucher = "禮券"
)
