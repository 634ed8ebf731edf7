package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstimateRecalculate(t *testing.T) {
	e := Estimate{
		Parts: []EstimatePart{
			{Name: "Oil filter", Quantity: 1, UnitPrice: decimal.RequireFromString("39.99")},
			{Name: "Engine oil 1L", Quantity: 5, UnitPrice: decimal.RequireFromString("42.10")},
		},
		Services: []EstimateService{
			{Name: "Oil change", Quantity: 1, UnitPrice: decimal.RequireFromString("80")},
		},
	}

	e.Recalculate()

	assert.Equal(t, "210.50", e.Parts[1].Total.StringFixed(2))
	assert.Equal(t, "250.49", e.PartsTotal.StringFixed(2))
	assert.Equal(t, "80.00", e.ServicesTotal.StringFixed(2))
	assert.Equal(t, "330.49", e.Total.StringFixed(2))
}

func TestEstimateRecalculate_Empty(t *testing.T) {
	e := Estimate{}
	e.Recalculate()
	assert.True(t, e.Total.IsZero())
}
