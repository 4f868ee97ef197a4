package validator

import (
	"testing"

	"smart-global-hub/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TransactionRequest(t *testing.T) {
	v := New()
	negative := decimal.RequireFromString("-1")
	huge := decimal.NewFromInt(5000000)

	tests := []struct {
		name       string
		req        dto.TransactionRequest
		wantFields []string
	}{
		{
			name: "valid with resolved rates",
			req: dto.TransactionRequest{
				AgentID:       "8c1f6f4e-4f6a-4d4b-9d3c-8b8a3f9a2e10",
				SupplierID:    "0b9d1d2e-2f4c-4b2a-8f5e-3a6c9e1b7d20",
				BaseCurrency:  "CNY",
				QuoteCurrency: "USD",
				BaseAmount:    decimal.NewFromInt(10000),
			},
		},
		{
			name: "missing ids and zero amount",
			req: dto.TransactionRequest{
				BaseCurrency:  "CNY",
				QuoteCurrency: "USD",
			},
			wantFields: []string{"agentId", "supplierId", "baseAmount"},
		},
		{
			name: "same currencies and negative rate",
			req: dto.TransactionRequest{
				AgentID:       "8c1f6f4e-4f6a-4d4b-9d3c-8b8a3f9a2e10",
				SupplierID:    "0b9d1d2e-2f4c-4b2a-8f5e-3a6c9e1b7d20",
				BaseCurrency:  "USD",
				QuoteCurrency: "USD",
				BaseAmount:    decimal.NewFromInt(1),
				BuyRate:       &negative,
			},
			wantFields: []string{"quoteCurrency", "buyRate"},
		},
		{
			name: "bad currency code",
			req: dto.TransactionRequest{
				AgentID:       "8c1f6f4e-4f6a-4d4b-9d3c-8b8a3f9a2e10",
				SupplierID:    "0b9d1d2e-2f4c-4b2a-8f5e-3a6c9e1b7d20",
				BaseCurrency:  "US1",
				QuoteCurrency: "AED",
				BaseAmount:    decimal.NewFromInt(1),
			},
			wantFields: []string{"baseCurrency"},
		},
		{
			name: "commission rate above one hundred percent",
			req: dto.TransactionRequest{
				AgentID:        "8c1f6f4e-4f6a-4d4b-9d3c-8b8a3f9a2e10",
				SupplierID:     "0b9d1d2e-2f4c-4b2a-8f5e-3a6c9e1b7d20",
				BaseCurrency:   "CNY",
				QuoteCurrency:  "USD",
				BaseAmount:     decimal.NewFromInt(1),
				CommissionRate: &huge,
			},
			wantFields: []string{"commissionRate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestValidate_CommissionRateBounds(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(dto.CommissionRateRequest{Rate: decimal.RequireFromString("0.5")}))
	assert.Error(t, v.Validate(dto.CommissionRateRequest{Rate: decimal.RequireFromString("100.01")}))
	assert.Error(t, v.Validate(dto.CommissionRateRequest{Rate: decimal.RequireFromString("-0.01")}))

	quote := dto.QuoteRequest{BaseAmount: decimal.NewFromInt(1), CommissionRate: decimal.NewFromInt(5000000)}
	var verr *ValidationError
	require.ErrorAs(t, v.Validate(quote), &verr)
	assert.Equal(t, "commissionRate", verr.Fields[0].Field)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "email", Message: "is required"}}}
	assert.Equal(t, "validation failed: email: is required", err.Error())
}
