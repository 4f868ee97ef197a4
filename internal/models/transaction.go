package models

import (
	"time"

	"smart-global-hub/internal/calc"
	"smart-global-hub/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	TenantID        uuid.UUID       `db:"tenant_id"`
	AgentID         uuid.UUID       `db:"agent_id"`
	SupplierID      uuid.UUID       `db:"supplier_id"`
	BaseCurrency    string          `db:"base_currency"`
	QuoteCurrency   string          `db:"quote_currency"`
	BaseAmount      decimal.Decimal `db:"base_amount"`
	BuyRate         decimal.Decimal `db:"buy_rate"`
	SellRate        decimal.Decimal `db:"sell_rate"`
	CommissionRate  decimal.Decimal `db:"commission_rate"`
	QuoteAmountBuy  decimal.Decimal `db:"quote_amount_buy"`
	QuoteAmountSell decimal.Decimal `db:"quote_amount_sell"`
	Commission      decimal.Decimal `db:"commission"`
	Profit          decimal.Decimal `db:"profit"`
	TotalEarnings   decimal.Decimal `db:"total_earnings"`
	AgentDue        decimal.Decimal `db:"agent_due"`
	AgentPaid       decimal.Decimal `db:"agent_paid"`
	SupplierDue     decimal.Decimal `db:"supplier_due"`
	SupplierPaid    decimal.Decimal `db:"supplier_paid"`
	AgentStatus     ledger.Status   `db:"agent_status"`
	SupplierStatus  ledger.Status   `db:"supplier_status"`
	Note            string          `db:"note"`
	CreatedBy       uuid.UUID       `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// ApplyFigures stores the derived amounts and resets both settlement sides.
func (t *Transaction) ApplyFigures(f calc.Figures) {
	t.QuoteAmountBuy = f.QuoteAmountBuy
	t.QuoteAmountSell = f.QuoteAmountSell
	t.Commission = f.Commission
	t.Profit = f.Profit
	t.TotalEarnings = f.TotalEarnings
	t.AgentDue = f.AgentDue()
	t.SupplierDue = f.SupplierDue()
	t.AgentStatus = ledger.StatusFor(t.AgentPaid, t.AgentDue)
	t.SupplierStatus = ledger.StatusFor(t.SupplierPaid, t.SupplierDue)
}

func (t *Transaction) CalcInput() calc.Input {
	return calc.Input{
		BaseAmount:     t.BaseAmount,
		BuyRate:        t.BuyRate,
		SellRate:       t.SellRate,
		CommissionRate: t.CommissionRate,
	}
}

// HasPayments reports whether any payment was applied to either side.
func (t *Transaction) HasPayments() bool {
	return t.AgentPaid.IsPositive() || t.SupplierPaid.IsPositive()
}

func (t *Transaction) Outstanding(party Party) decimal.Decimal {
	if party == PartySupplier {
		return ledger.Outstanding(t.SupplierDue, t.SupplierPaid)
	}
	return ledger.Outstanding(t.AgentDue, t.AgentPaid)
}

func (t *Transaction) CounterpartyID(party Party) uuid.UUID {
	if party == PartySupplier {
		return t.SupplierID
	}
	return t.AgentID
}

// TransactionFilter narrows transaction listings. Zero values mean "any".
type TransactionFilter struct {
	AgentID       uuid.UUID
	SupplierID    uuid.UUID
	QuoteCurrency string
	Status        ledger.Status
	From          *time.Time
	To            *time.Time
}

// TransactionOverview aggregates a filtered transaction set for one quote currency.
type TransactionOverview struct {
	QuoteCurrency       string          `db:"quote_currency"`
	Count               int64           `db:"count"`
	QuoteAmountBuy      decimal.Decimal `db:"quote_amount_buy"`
	QuoteAmountSell     decimal.Decimal `db:"quote_amount_sell"`
	Commission          decimal.Decimal `db:"commission"`
	Profit              decimal.Decimal `db:"profit"`
	TotalEarnings       decimal.Decimal `db:"total_earnings"`
	AgentOutstanding    decimal.Decimal `db:"agent_outstanding"`
	SupplierOutstanding decimal.Decimal `db:"supplier_outstanding"`
}
