package processor

// CategoryMapping 品類一代碼到顯示分類的對照表
// 未收錄的代碼一律歸入「其他」
var CategoryMapping = map[string]string{
	"04-6": "小兒營養素",
	"04-7": "成人保健品",
	"05-1": "成人奶粉",
	"05-2": "成人奶水",
	"05-3": "現金-小兒銷售",
}

// 成人奶類分類：點數須除以數量
const (
	CategoryAdultMilkPowder = "成人奶粉"
	CategoryAdultMilkLiquid = "成人奶水"
	CategoryOther           = "其他"
)

// 罐瓶排除規則：品類一為此代碼且單位為罐/瓶的列不納入
const milkLiquidCat1 = "05-2"

// Stage1SortOrder 第一階段分類排序優先度，數字小者在前
// 表中缺漏的分類共用 99，排在所有已知分類之後並保持輸入順序
var Stage1SortOrder = map[string]int{
	"小兒營養素":   1,
	"成人奶粉":    2,
	"成人奶水":    3,
	"其他":      4,
	"成人保健品":   5,
	"現金-小兒銷售": 6,
}

const stage1SortFallback = 99

// CosmeticCodes 品類二代碼到美妝品牌名稱的對照表
var CosmeticCodes = map[string]string{
	"6292": "理膚",
	"6293": "適樂膚",
	"6294": "芙樂思",
	"467":  "Dr.Satin",
	"2089": "舒特膚",
}

// CosmeticDisplayOrder 第三階段品牌固定顯示順序
var CosmeticDisplayOrder = []string{
	"理膚",
	"芙樂思",
	"適樂膚",
	"Dr.Satin",
	"舒特膚",
}
