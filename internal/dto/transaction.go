package dto

import "github.com/shopspring/decimal"

// TransactionRequest creates or updates a transaction. Omitted rates are
// resolved from the latest configured exchange and commission rates.
type TransactionRequest struct {
	AgentID        string           `json:"agentId" validate:"required,uuid"`
	SupplierID     string           `json:"supplierId" validate:"required,uuid"`
	BaseCurrency   string           `json:"baseCurrency" validate:"required,currency"`
	QuoteCurrency  string           `json:"quoteCurrency" validate:"required,currency,nefield=BaseCurrency"`
	BaseAmount     decimal.Decimal  `json:"baseAmount" validate:"gt=0"`
	BuyRate        *decimal.Decimal `json:"buyRate,omitempty" validate:"omitempty,gte=0"`
	SellRate       *decimal.Decimal `json:"sellRate,omitempty" validate:"omitempty,gte=0"`
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Note           string           `json:"note" validate:"max=1000"`
}

type QuoteRequest struct {
	BaseAmount     decimal.Decimal `json:"baseAmount" validate:"gte=0"`
	BuyRate        decimal.Decimal `json:"buyRate" validate:"gte=0"`
	SellRate       decimal.Decimal `json:"sellRate" validate:"gte=0"`
	CommissionRate decimal.Decimal `json:"commissionRate" validate:"gte=0,lte=100"`
}

type QuoteResponse struct {
	QuoteAmountBuy  decimal.Decimal `json:"quoteAmountBuy"`
	QuoteAmountSell decimal.Decimal `json:"quoteAmountSell"`
	Commission      decimal.Decimal `json:"commission"`
	Profit          decimal.Decimal `json:"profit"`
	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	AgentDue        decimal.Decimal `json:"agentDue"`
	SupplierDue     decimal.Decimal `json:"supplierDue"`
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenantId"`
	AgentID         string          `json:"agentId"`
	SupplierID      string          `json:"supplierId"`
	BaseCurrency    string          `json:"baseCurrency"`
	QuoteCurrency   string          `json:"quoteCurrency"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	BuyRate         decimal.Decimal `json:"buyRate"`
	SellRate        decimal.Decimal `json:"sellRate"`
	CommissionRate  decimal.Decimal `json:"commissionRate"`
	QuoteAmountBuy  decimal.Decimal `json:"quoteAmountBuy"`
	QuoteAmountSell decimal.Decimal `json:"quoteAmountSell"`
	Commission      decimal.Decimal `json:"commission"`
	Profit          decimal.Decimal `json:"profit"`
	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	AgentDue        decimal.Decimal `json:"agentDue"`
	AgentPaid       decimal.Decimal `json:"agentPaid"`
	SupplierDue     decimal.Decimal `json:"supplierDue"`
	SupplierPaid    decimal.Decimal `json:"supplierPaid"`
	AgentStatus     string          `json:"agentStatus"`
	SupplierStatus  string          `json:"supplierStatus"`
	Note            string          `json:"note"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type TransactionOverview struct {
	QuoteCurrency       string          `json:"quoteCurrency"`
	Count               int64           `json:"count"`
	QuoteAmountBuy      decimal.Decimal `json:"quoteAmountBuy"`
	QuoteAmountSell     decimal.Decimal `json:"quoteAmountSell"`
	Commission          decimal.Decimal `json:"commission"`
	Profit              decimal.Decimal `json:"profit"`
	TotalEarnings       decimal.Decimal `json:"totalEarnings"`
	AgentOutstanding    decimal.Decimal `json:"agentOutstanding"`
	SupplierOutstanding decimal.Decimal `json:"supplierOutstanding"`
}
