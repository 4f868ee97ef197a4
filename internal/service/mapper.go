package service

import (
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toCounterpartyResponse(cp *models.Counterparty) dto.CounterpartyResponse {
	return dto.CounterpartyResponse{
		ID:        cp.ID.String(),
		TenantID:  cp.TenantID.String(),
		Name:      cp.Name,
		Phone:     cp.Phone,
		Email:     cp.Email,
		Address:   cp.Address,
		Note:      cp.Note,
		CreatedAt: formatTime(cp.CreatedAt),
		UpdatedAt: formatTime(cp.UpdatedAt),
	}
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              tx.ID.String(),
		TenantID:        tx.TenantID.String(),
		AgentID:         tx.AgentID.String(),
		SupplierID:      tx.SupplierID.String(),
		BaseCurrency:    tx.BaseCurrency,
		QuoteCurrency:   tx.QuoteCurrency,
		BaseAmount:      tx.BaseAmount,
		BuyRate:         tx.BuyRate,
		SellRate:        tx.SellRate,
		CommissionRate:  tx.CommissionRate,
		QuoteAmountBuy:  tx.QuoteAmountBuy,
		QuoteAmountSell: tx.QuoteAmountSell,
		Commission:      tx.Commission,
		Profit:          tx.Profit,
		TotalEarnings:   tx.TotalEarnings,
		AgentDue:        tx.AgentDue,
		AgentPaid:       tx.AgentPaid,
		SupplierDue:     tx.SupplierDue,
		SupplierPaid:    tx.SupplierPaid,
		AgentStatus:     string(tx.AgentStatus),
		SupplierStatus:  string(tx.SupplierStatus),
		Note:            tx.Note,
		CreatedAt:       formatTime(tx.CreatedAt),
		UpdatedAt:       formatTime(tx.UpdatedAt),
	}
}

func toOverviewResponse(o *models.TransactionOverview) dto.TransactionOverview {
	return dto.TransactionOverview{
		QuoteCurrency:       o.QuoteCurrency,
		Count:               o.Count,
		QuoteAmountBuy:      o.QuoteAmountBuy,
		QuoteAmountSell:     o.QuoteAmountSell,
		Commission:          o.Commission,
		Profit:              o.Profit,
		TotalEarnings:       o.TotalEarnings,
		AgentOutstanding:    o.AgentOutstanding,
		SupplierOutstanding: o.SupplierOutstanding,
	}
}

func toPaymentResponse(p *models.Payment) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ID:             p.ID.String(),
		TenantID:       p.TenantID.String(),
		Party:          string(p.Party),
		CounterpartyID: p.CounterpartyID.String(),
		Currency:       p.Currency,
		Amount:         p.Amount,
		AppliedAmount:  p.AppliedAmount,
		CreditedAmount: p.CreditedAmount,
		Direct:         p.Direct,
		Reference:      p.Reference,
		Note:           p.Note,
		PaidAt:         formatTime(p.PaidAt),
		CreatedAt:      formatTime(p.CreatedAt),
	}
	for _, a := range p.Allocations {
		resp.Allocations = append(resp.Allocations, dto.PaymentAllocationResponse{
			TransactionID: a.TransactionID.String(),
			Amount:        a.Amount,
		})
	}
	return resp
}

func toBalanceResponse(b *models.Balance) dto.BalanceResponse {
	return dto.BalanceResponse{
		Party:            string(b.Party),
		CounterpartyID:   b.CounterpartyID.String(),
		CounterpartyName: b.CounterpartyName,
		Currency:         b.Currency,
		Amount:           b.Amount,
		UpdatedAt:        formatTime(b.UpdatedAt),
	}
}

func toExchangeRateResponse(er *models.ExchangeRate) dto.ExchangeRateResponse {
	return dto.ExchangeRateResponse{
		ID:            er.ID.String(),
		TenantID:      er.TenantID.String(),
		BaseCurrency:  er.BaseCurrency,
		QuoteCurrency: er.QuoteCurrency,
		BuyRate:       er.BuyRate,
		SellRate:      er.SellRate,
		CreatedAt:     formatTime(er.CreatedAt),
	}
}

func toCommissionRateResponse(cr *models.CommissionRate) dto.CommissionRateResponse {
	return dto.CommissionRateResponse{
		ID:        cr.ID.String(),
		TenantID:  cr.TenantID.String(),
		Rate:      cr.Rate,
		CreatedAt: formatTime(cr.CreatedAt),
	}
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID.String(),
		TenantID: u.TenantID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
