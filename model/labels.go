package model

import "fmt"

// LabelSet is the wording variant a contract type projects onto both the
// editing form and the printed document. Keeping the projection in one place
// guarantees the two views never diverge for a given type.
type LabelSet struct {
	Title            string `json:"title"`
	PartyA           string `json:"party_a"`
	PartyB           string `json:"party_b"`
	ArticleOne       string `json:"article_one"`
	ItemsFormHeading string `json:"items_form_heading"`
	PreambleAction   string `json:"preamble_action"`
	DraftTypeLabel   string `json:"draft_type_label"`
}

// Labels returns the fixed wording set for the contract type. The enum is
// closed; an unknown value here means a handler let an unvalidated type
// through, so this panics rather than guessing.
func (t ContractType) Labels() LabelSet {
	switch t {
	case TypeProcurement:
		return LabelSet{
			Title:            "采 购 合 同",
			PartyA:           "甲方 (采购方 / Buyer)",
			PartyB:           "乙方 (供货方 / Seller)",
			ArticleOne:       "采购标的",
			ItemsFormHeading: "采购产品清单",
			PreambleAction:   "甲方采购乙方货物",
			DraftTypeLabel:   "采购合同",
		}
	case TypeFreight:
		return LabelSet{
			Title:            "货 运 代 理 合 同",
			PartyA:           "甲方 (托运人 / Shipper)",
			PartyB:           "乙方 (承运方 / Forwarder)",
			ArticleOne:       "货物详情",
			ItemsFormHeading: "货物详情",
			PreambleAction:   "甲方委托乙方代理货物运输",
			DraftTypeLabel:   "物流运输合同",
		}
	default:
		panic(fmt.Sprintf("unknown contract type %q", string(t)))
	}
}
