package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CounterpartyStatistic struct {
	CounterpartyID   uuid.UUID       `db:"counterparty_id"`
	CounterpartyName string          `db:"counterparty_name"`
	Currency         string          `db:"currency"`
	Transactions     int64           `db:"transactions"`
	Due              decimal.Decimal `db:"due"`
	Paid             decimal.Decimal `db:"paid"`
	Outstanding      decimal.Decimal `db:"outstanding"`
	Credit           decimal.Decimal `db:"credit"`
}

type DailyEarnings struct {
	Day           time.Time       `db:"day"`
	QuoteCurrency string          `db:"quote_currency"`
	Transactions  int64           `db:"transactions"`
	Profit        decimal.Decimal `db:"profit"`
	Commission    decimal.Decimal `db:"commission"`
	TotalEarnings decimal.Decimal `db:"total_earnings"`
}
