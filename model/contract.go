package model

import (
	"fmt"
	"time"
)

// ContractType selects which of the two contract variants a document uses.
// The set is closed; handlers must reject anything else before it reaches
// the model.
type ContractType string

const (
	TypeProcurement ContractType = "PROCUREMENT"
	TypeFreight     ContractType = "FREIGHT"
)

// Valid reports whether t is one of the two supported contract types.
func (t ContractType) Valid() bool {
	return t == TypeProcurement || t == TypeFreight
}

// Party is one of the two contracting entities. All fields are free text;
// empty values are allowed.
type Party struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Representative string `json:"representative"`
	Phone          string `json:"phone"`
}

// ContractItem is one row of purchased or shipped goods.
type ContractItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

// Clauses is the fixed record of named contract clause texts.
type Clauses struct {
	Payment    string `json:"payment"`
	Delivery   string `json:"delivery"`
	Inspection string `json:"inspection"`
	Dispute    string `json:"dispute"`
	Custom     string `json:"custom"`
}

// ContractData is the document aggregate. Items keep insertion order, which
// is also the print order. Mutations replace the whole value; see mutation.go.
type ContractData struct {
	Type           ContractType   `json:"type"`
	ContractNumber string         `json:"contract_number"`
	Date           string         `json:"date"`
	PartyA         Party          `json:"party_a"`
	PartyB         Party          `json:"party_b"`
	Items          []ContractItem `json:"items"`
	Clauses        Clauses        `json:"clauses"`
}

// NewContractData builds the initial editing template. The clock is injected
// so construction stays deterministic in tests; production callers pass
// time.Now().
func NewContractData(now time.Time) ContractData {
	return ContractData{
		Type:           TypeProcurement,
		ContractNumber: fmt.Sprintf("CTR-%d-001", now.Year()),
		Date:           now.Format("2006-01-02"),
		PartyA: Party{
			Name:           "未来科技股份有限公司",
			Address:        "北京市海淀区科技园路88号",
			Representative: "张三",
			Phone:          "010-12345678",
		},
		PartyB: Party{
			Name:           "环球供应链有限公司",
			Address:        "深圳市南山区高新南道99号",
			Representative: "李四",
			Phone:          "0755-87654321",
		},
		Items: []ContractItem{
			{ID: "1", Description: "高性能处理器 A1", Quantity: 1000, Unit: "个", UnitPrice: 250.50},
			{ID: "2", Description: "装配模组 B2", Quantity: 500, Unit: "套", UnitPrice: 1500.00},
		},
		Clauses: Clauses{
			Payment:    "合同签订后3个工作日内，甲方向乙方支付合同总额的30%作为预付款；剩余70%款项应在发货前付清。付款方式为银行转账。",
			Delivery:   "乙方应在收到预付款后45天内将货物运送至甲方指定仓库。运输费用及保险费由乙方承担。",
			Inspection: "甲方有权在收到货物后3日内进行验收。如发现货物规格、数量或质量与合同不符，甲方有权要求退换货或索赔。",
			Dispute:    "本合同履行过程中发生的一切争议，双方应通过友好协商解决。如协商不成，任何一方均可向甲方所在地人民法院提起诉讼。",
			Custom:     "",
		},
	}
}

// LineAmount returns quantity * unit price for a single item.
func LineAmount(item ContractItem) float64 {
	return item.Quantity * item.UnitPrice
}

// TotalAmount sums the line amounts over all items. The total is never
// stored on the aggregate, so it cannot drift from the item list.
func TotalAmount(d ContractData) float64 {
	var total float64
	for _, item := range d.Items {
		total += LineAmount(item)
	}
	return total
}
