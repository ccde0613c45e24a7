package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceValidate(t *testing.T) {
	valid := &Invoice{
		Amount:      100.00,
		TaxAmount:   8.25,
		TotalAmount: 108.25,
		Items: []InvoiceItem{
			{Description: "Amber vials", Quantity: 10, Rate: 10, Amount: 100},
		},
	}
	require.NoError(t, valid.Validate())

	totalMismatch := &Invoice{
		Amount:      100.00,
		TaxAmount:   8.25,
		TotalAmount: 110.00,
	}
	assert.ErrorIs(t, totalMismatch.Validate(), ErrInvoiceTotalMismatch)

	badQuantity := &Invoice{
		TotalAmount: 0,
		Items: []InvoiceItem{
			{Description: "Rx labels", Quantity: 0, Rate: 10, Amount: 0},
		},
	}
	assert.ErrorIs(t, badQuantity.Validate(), ErrInvoiceItemInvalid)

	badLineAmount := &Invoice{
		Amount:      60,
		TotalAmount: 60,
		Items: []InvoiceItem{
			{Description: "Rx labels", Quantity: 2, Rate: 30, Amount: 65},
		},
	}
	assert.ErrorIs(t, badLineAmount.Validate(), ErrInvoiceItemInvalid)
}

func TestInvoiceValidate_ToleratesFloatRounding(t *testing.T) {
	inv := &Invoice{
		Amount:      0.1,
		TaxAmount:   0.2,
		TotalAmount: 0.3,
		Items: []InvoiceItem{
			{Description: "Dram vials", Quantity: 3, Rate: 0.1, Amount: 0.3},
		},
	}
	assert.NoError(t, inv.Validate())
}
