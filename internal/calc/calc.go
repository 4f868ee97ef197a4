// Package calc derives the figures of an exchange transaction from its base
// amount and rates. It is the only place these formulas live.
package calc

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeInput = errors.New("amounts and rates must not be negative")

type Input struct {
	BaseAmount     decimal.Decimal
	BuyRate        decimal.Decimal
	SellRate       decimal.Decimal
	CommissionRate decimal.Decimal // percent
}

type Figures struct {
	QuoteAmountBuy  decimal.Decimal
	QuoteAmountSell decimal.Decimal
	Commission      decimal.Decimal
	Profit          decimal.Decimal
	TotalEarnings   decimal.Decimal
}

func Validate(in Input) error {
	for _, v := range []decimal.Decimal{in.BaseAmount, in.BuyRate, in.SellRate, in.CommissionRate} {
		if v.IsNegative() {
			return ErrNegativeInput
		}
	}
	return nil
}

// Compute is exact: no rounding is applied to any figure.
func Compute(in Input) Figures {
	buy := in.BaseAmount.Mul(in.BuyRate)
	sell := in.BaseAmount.Mul(in.SellRate)
	commission := sell.Mul(in.CommissionRate).Shift(-2)

	profit := decimal.Zero
	if buy.IsPositive() && sell.IsPositive() {
		profit = sell.Sub(buy)
	}

	return Figures{
		QuoteAmountBuy:  buy,
		QuoteAmountSell: sell,
		Commission:      commission,
		Profit:          profit,
		TotalEarnings:   profit.Add(commission),
	}
}

// AgentDue is what the agent owes in quote currency.
func (f Figures) AgentDue() decimal.Decimal {
	return f.QuoteAmountSell.Add(f.Commission)
}

// SupplierDue is what the brokerage owes the supplier in quote currency.
func (f Figures) SupplierDue() decimal.Decimal {
	return f.QuoteAmountBuy
}
