package dto

import "github.com/shopspring/decimal"

type ExchangeRateRequest struct {
	BaseCurrency  string          `json:"baseCurrency" validate:"required,currency"`
	QuoteCurrency string          `json:"quoteCurrency" validate:"required,currency,nefield=BaseCurrency"`
	BuyRate       decimal.Decimal `json:"buyRate" validate:"gt=0"`
	SellRate      decimal.Decimal `json:"sellRate" validate:"gt=0"`
}

type ExchangeRateResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenantId"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	BuyRate       decimal.Decimal `json:"buyRate"`
	SellRate      decimal.Decimal `json:"sellRate"`
	CreatedAt     string          `json:"createdAt"`
}

type CommissionRateRequest struct {
	Rate decimal.Decimal `json:"rate" validate:"gte=0,lte=100"`
}

type CommissionRateResponse struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenantId"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt string          `json:"createdAt"`
}
