package processor

import (
	"fmt"

	"bonuscalc/internal/model"
)

// BuildProcessedData 執行三階段分類並按銷售人員分組
// 完整建好新結果後才回傳；任何階段出錯只回傳錯誤，
// 不會留下半成品狀態
func BuildProcessedData(rawData []model.RawRow, exclusionList []model.ExclusionItem, rewardRules []model.RewardRule) (result model.ProcessedData, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("資料篩選運算錯誤: %v", r)
		}
	}()

	s1 := Stage1(rawData, exclusionList)
	s2 := Stage2(rawData, rewardRules)
	s3 := Stage3(rawData)

	// 三階段各自出現過的銷售人員全部納入
	grouped := make(model.ProcessedData)

	personData := func(person string) *model.PersonData {
		data, ok := grouped[person]
		if !ok {
			data = &model.PersonData{
				Stage1: make([]*model.Stage1Row, 0),
				Stage2: make([]*model.Stage2Row, 0),
			}
			grouped[person] = data
		}
		return data
	}

	for _, row := range s1 {
		data := personData(row.SalesPerson)
		data.Stage1 = append(data.Stage1, row)
	}
	for _, row := range s2 {
		data := personData(row.SalesPerson)
		data.Stage2 = append(data.Stage2, row)
	}
	for _, summary := range s3 {
		data := personData(summary.SalesPerson)
		data.Stage3 = summary
	}

	// 無美妝銷售者補全零彙總，確保每人都有第三階段
	for person, data := range grouped {
		if data.Stage3 == nil {
			data.Stage3 = EmptyStage3(person)
		}
	}

	return grouped, nil
}
