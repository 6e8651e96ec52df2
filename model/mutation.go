package model

import (
	"math"
	"strconv"
)

// PartySide names which of the two parties a mutation targets.
type PartySide string

const (
	SideA PartySide = "a"
	SideB PartySide = "b"
)

// Valid reports whether s targets one of the two parties.
func (s PartySide) Valid() bool {
	return s == SideA || s == SideB
}

// Party field names accepted by UpdateParty.
const (
	PartyFieldName           = "name"
	PartyFieldAddress        = "address"
	PartyFieldRepresentative = "representative"
	PartyFieldPhone          = "phone"
)

// Item field names accepted by UpdateItem.
const (
	ItemFieldDescription = "description"
	ItemFieldQuantity    = "quantity"
	ItemFieldUnit        = "unit"
	ItemFieldUnitPrice   = "unit_price"
)

// Clause keys accepted by UpdateClause.
const (
	ClausePayment    = "payment"
	ClauseDelivery   = "delivery"
	ClauseInspection = "inspection"
	ClauseDispute    = "dispute"
	ClauseCustom     = "custom"
)

// ValidClauseKey reports whether key names one of the five clause fields.
func ValidClauseKey(key string) bool {
	switch key {
	case ClausePayment, ClauseDelivery, ClauseInspection, ClauseDispute, ClauseCustom:
		return true
	}
	return false
}

// Every mutation below is a pure function: it returns a new aggregate and
// leaves its input untouched. The items slice is the only shared backing
// store, so it is copied whenever it changes.

func cloneItems(items []ContractItem) []ContractItem {
	out := make([]ContractItem, len(items))
	copy(out, items)
	return out
}

// SetType replaces the contract type and nothing else. Clause and party text
// already entered is kept as-is; only the projected labels change.
func SetType(d ContractData, t ContractType) ContractData {
	d.Type = t
	return d
}

// UpdateParty replaces one field of one party. An unknown field name leaves
// the aggregate unchanged.
func UpdateParty(d ContractData, side PartySide, field, value string) ContractData {
	p := d.PartyA
	if side == SideB {
		p = d.PartyB
	}

	switch field {
	case PartyFieldName:
		p.Name = value
	case PartyFieldAddress:
		p.Address = value
	case PartyFieldRepresentative:
		p.Representative = value
	case PartyFieldPhone:
		p.Phone = value
	default:
		return d
	}

	if side == SideB {
		d.PartyB = p
	} else {
		d.PartyA = p
	}
	return d
}

// UpdateClause replaces one named clause text. An unknown key leaves the
// aggregate unchanged.
func UpdateClause(d ContractData, key, value string) ContractData {
	switch key {
	case ClausePayment:
		d.Clauses.Payment = value
	case ClauseDelivery:
		d.Clauses.Delivery = value
	case ClauseInspection:
		d.Clauses.Inspection = value
	case ClauseDispute:
		d.Clauses.Dispute = value
	case ClauseCustom:
		d.Clauses.Custom = value
	}
	return d
}

// AddItem appends a blank item with the given id at the end of the sequence.
// The caller mints the id (a fresh UUID in the handler) so the function
// itself stays deterministic.
func AddItem(d ContractData, id string) ContractData {
	items := cloneItems(d.Items)
	d.Items = append(items, ContractItem{
		ID:        id,
		Quantity:  1,
		Unit:      "件",
		UnitPrice: 0,
	})
	return d
}

// RemoveItem drops the item with the given id, keeping the relative order of
// the rest. A missing id is a silent no-op.
func RemoveItem(d ContractData, id string) ContractData {
	items := make([]ContractItem, 0, len(d.Items))
	for _, item := range d.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	d.Items = items
	return d
}

// UpdateItem replaces one field of the item with the given id. Numeric
// fields pass through NormalizeAmount so the stored value is always a finite
// non-negative number. A missing id or unknown field is a silent no-op.
func UpdateItem(d ContractData, id, field, value string) ContractData {
	items := cloneItems(d.Items)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		switch field {
		case ItemFieldDescription:
			items[i].Description = value
		case ItemFieldQuantity:
			items[i].Quantity = NormalizeAmount(value)
		case ItemFieldUnit:
			items[i].Unit = value
		case ItemFieldUnitPrice:
			items[i].UnitPrice = NormalizeAmount(value)
		}
		break
	}
	d.Items = items
	return d
}

// NormalizeAmount parses user-entered numeric text. Anything that is not a
// finite non-negative number becomes 0; the user is not shown an error.
func NormalizeAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
