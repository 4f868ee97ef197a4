package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		in            Input
		buy           string
		sell          string
		commission    string
		profit        string
		totalEarnings string
	}{
		{
			name:          "reference example",
			in:            Input{BaseAmount: d("10000"), BuyRate: d("0.1449"), SellRate: d("0.1451"), CommissionRate: d("0.5")},
			buy:           "1449",
			sell:          "1451",
			commission:    "7.255",
			profit:        "2",
			totalEarnings: "9.255",
		},
		{
			name:          "selling below cost yields negative profit",
			in:            Input{BaseAmount: d("100"), BuyRate: d("3.70"), SellRate: d("3.65"), CommissionRate: d("0")},
			buy:           "370",
			sell:          "365",
			commission:    "0",
			profit:        "-5",
			totalEarnings: "-5",
		},
		{
			name:          "missing buy leg floors profit at zero",
			in:            Input{BaseAmount: d("100"), BuyRate: d("0"), SellRate: d("2"), CommissionRate: d("1")},
			buy:           "0",
			sell:          "200",
			commission:    "2",
			profit:        "0",
			totalEarnings: "2",
		},
		{
			name:          "missing sell leg floors profit at zero",
			in:            Input{BaseAmount: d("100"), BuyRate: d("2"), SellRate: d("0"), CommissionRate: d("1")},
			buy:           "200",
			sell:          "0",
			commission:    "0",
			profit:        "0",
			totalEarnings: "0",
		},
		{
			name:          "zero base amount",
			in:            Input{BaseAmount: d("0"), BuyRate: d("1.1"), SellRate: d("1.2"), CommissionRate: d("3")},
			buy:           "0",
			sell:          "0",
			commission:    "0",
			profit:        "0",
			totalEarnings: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.in)

			assert.True(t, got.QuoteAmountBuy.Equal(d(tt.buy)), "buy: %s", got.QuoteAmountBuy)
			assert.True(t, got.QuoteAmountSell.Equal(d(tt.sell)), "sell: %s", got.QuoteAmountSell)
			assert.True(t, got.Commission.Equal(d(tt.commission)), "commission: %s", got.Commission)
			assert.True(t, got.Profit.Equal(d(tt.profit)), "profit: %s", got.Profit)
			assert.True(t, got.TotalEarnings.Equal(d(tt.totalEarnings)), "total: %s", got.TotalEarnings)
		})
	}
}

func TestCompute_TotalEarningsIsProfitPlusCommission(t *testing.T) {
	amounts := []string{"0", "1", "250.75", "10000", "987654.321"}
	rates := []string{"0", "0.0001", "0.1449", "1", "3.6725"}
	commissions := []string{"0", "0.25", "0.5", "2"}

	for _, a := range amounts {
		for _, b := range rates {
			for _, s := range rates {
				for _, c := range commissions {
					f := Compute(Input{BaseAmount: d(a), BuyRate: d(b), SellRate: d(s), CommissionRate: d(c)})
					assert.True(t, f.TotalEarnings.Equal(f.Profit.Add(f.Commission)))
					assert.True(t, f.QuoteAmountBuy.Equal(d(a).Mul(d(b))))
					assert.True(t, f.QuoteAmountSell.Equal(d(a).Mul(d(s))))
				}
			}
		}
	}
}

func TestFigures_Dues(t *testing.T) {
	f := Compute(Input{BaseAmount: d("10000"), BuyRate: d("0.1449"), SellRate: d("0.1451"), CommissionRate: d("0.5")})

	assert.True(t, f.AgentDue().Equal(d("1458.255")))
	assert.True(t, f.SupplierDue().Equal(d("1449")))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Input{BaseAmount: d("1"), BuyRate: d("0"), SellRate: d("1"), CommissionRate: d("0")}))
	assert.ErrorIs(t, Validate(Input{BaseAmount: d("-1")}), ErrNegativeInput)
	assert.ErrorIs(t, Validate(Input{BaseAmount: d("1"), CommissionRate: d("-0.1")}), ErrNegativeInput)
}
