package billing

import (
	"encoding/json"

	"rxsupply/internal/domain/entity"
)

// Stored invoices carry customer_info and items as JSON columns, and older
// writers double-encoded them (a JSON string containing the record instead
// of the record itself). The normalizers below accept either shape and
// degrade to zero values on malformed input: a notification with an empty
// recipient name is preferable to a failed invoice action.

// NormalizeCustomerInfo decodes a raw customer_info column value. It accepts
// a JSON object or a JSON string wrapping one; anything else yields a zero
// CustomerInfo.
func NormalizeCustomerInfo(raw []byte) entity.CustomerInfo {
	var info entity.CustomerInfo
	if len(raw) == 0 {
		return info
	}

	if err := json.Unmarshal(raw, &info); err == nil {
		return info
	}

	// Double-encoded: unwrap the string, then decode the object inside.
	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return entity.CustomerInfo{}
	}
	if err := json.Unmarshal([]byte(wrapped), &info); err != nil {
		return entity.CustomerInfo{}
	}

	return info
}

// NormalizeItems decodes a raw items column value, accepting a JSON array or
// a JSON string wrapping one. Malformed input yields no items.
func NormalizeItems(raw []byte) []entity.InvoiceItem {
	if len(raw) == 0 {
		return nil
	}

	var items []entity.InvoiceItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}

	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(wrapped), &items); err != nil {
		return nil
	}

	return items
}
