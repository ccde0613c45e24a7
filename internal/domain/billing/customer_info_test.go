package billing

import (
	"testing"

	"rxsupply/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCustomerInfo_PlainObject(t *testing.T) {
	raw := []byte(`{"name":"Lakeview Pharmacy","email":"ap@lakeviewrx.com","phone":"555-0102"}`)

	info := NormalizeCustomerInfo(raw)
	assert.Equal(t, "Lakeview Pharmacy", info.Name)
	assert.Equal(t, "ap@lakeviewrx.com", info.Email)
	assert.Equal(t, "555-0102", info.Phone)
}

func TestNormalizeCustomerInfo_DoubleEncoded(t *testing.T) {
	raw := []byte(`"{\"name\":\"Lakeview Pharmacy\",\"email\":\"ap@lakeviewrx.com\",\"phone\":\"\"}"`)

	info := NormalizeCustomerInfo(raw)
	assert.Equal(t, "Lakeview Pharmacy", info.Name)
	assert.Equal(t, "ap@lakeviewrx.com", info.Email)
}

func TestNormalizeCustomerInfo_Malformed(t *testing.T) {
	for _, raw := range [][]byte{
		nil,
		[]byte(``),
		[]byte(`garbage`),
		[]byte(`"not json inside"`),
		[]byte(`42`),
	} {
		info := NormalizeCustomerInfo(raw)
		assert.Equal(t, entity.CustomerInfo{}, info, "raw %q should yield zero value", raw)
	}
}

func TestNormalizeItems_PlainArray(t *testing.T) {
	raw := []byte(`[{"description":"Amber vials 13 dram","quantity":10,"rate":12.5,"amount":125}]`)

	items := NormalizeItems(raw)
	assert.Len(t, items, 1)
	assert.Equal(t, "Amber vials 13 dram", items[0].Description)
	assert.Equal(t, 10.0, items[0].Quantity)
	assert.Equal(t, 12.5, items[0].Rate)
	assert.Equal(t, 125.0, items[0].Amount)
}

func TestNormalizeItems_DoubleEncoded(t *testing.T) {
	raw := []byte(`"[{\"description\":\"Rx labels\",\"quantity\":2,\"rate\":30,\"amount\":60}]"`)

	items := NormalizeItems(raw)
	assert.Len(t, items, 1)
	assert.Equal(t, "Rx labels", items[0].Description)
	assert.Equal(t, 60.0, items[0].Amount)
}

func TestNormalizeItems_Malformed(t *testing.T) {
	for _, raw := range [][]byte{
		nil,
		[]byte(``),
		[]byte(`garbage`),
		[]byte(`"not an array"`),
		[]byte(`{"description":"object not array"}`),
	} {
		assert.Nil(t, NormalizeItems(raw), "raw %q should yield no items", raw)
	}
}
