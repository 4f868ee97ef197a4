package dto

import "github.com/shopspring/decimal"

type CounterpartyStatisticResponse struct {
	CounterpartyID   string          `json:"counterpartyId"`
	CounterpartyName string          `json:"counterpartyName"`
	Currency         string          `json:"currency"`
	Transactions     int64           `json:"transactions"`
	Due              decimal.Decimal `json:"due"`
	Paid             decimal.Decimal `json:"paid"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	Credit           decimal.Decimal `json:"credit"`
}

type DailyEarningsResponse struct {
	Day           string          `json:"day"`
	QuoteCurrency string          `json:"quoteCurrency"`
	Transactions  int64           `json:"transactions"`
	Profit        decimal.Decimal `json:"profit"`
	Commission    decimal.Decimal `json:"commission"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}
