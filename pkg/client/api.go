package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"smart-global-hub/internal/dto"
)

// Party selects the agent or supplier side of payment and balance calls.
type Party string

const (
	Agent    Party = "agent"
	Supplier Party = "supplier"
)

func (p Party) collection() string {
	if p == Supplier {
		return "/suppliers"
	}
	return "/agents"
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.UserResponse, error) {
	var resp dto.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.authenticated(&resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Refresh exchanges the stored refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context) error {
	token := c.session.refreshToken()
	if token == "" {
		return &APIError{StatusCode: http.StatusUnauthorized, Message: "not logged in"}
	}

	var resp dto.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, dto.RefreshTokenRequest{RefreshToken: token}, &resp); err != nil {
		return err
	}
	return c.authenticated(&resp)
}

func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if _, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if _, err := c.do(ctx, http.MethodPost, "/users", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCounterparties(ctx context.Context, party Party, page, limit int, search string) (*Page[dto.CounterpartyResponse], error) {
	q := pageQuery(page, limit)
	if search != "" {
		q.Set("search", search)
	}
	p, _, err := list[dto.CounterpartyResponse](ctx, c, party.collection(), q)
	return p, err
}

func (c *Client) CreateCounterparty(ctx context.Context, party Party, req dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	var out dto.CounterpartyResponse
	if _, err := c.do(ctx, http.MethodPost, party.collection(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCounterparty(ctx context.Context, party Party, id string) error {
	_, err := c.do(ctx, http.MethodDelete, party.collection()+"/"+url.PathEscape(id), nil, nil, nil)
	return err
}

// TransactionQuery filters ListTransactions. Empty fields are omitted.
type TransactionQuery struct {
	Page       int
	Limit      int
	AgentID    string
	SupplierID string
	Currency   string
	Status     string
	From       string
	To         string
}

func (q TransactionQuery) values() url.Values {
	v := pageQuery(q.Page, q.Limit)
	for key, val := range map[string]string{
		"agentId":    q.AgentID,
		"supplierId": q.SupplierID,
		"currency":   q.Currency,
		"status":     q.Status,
		"from":       q.From,
		"to":         q.To,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

func (c *Client) ListTransactions(ctx context.Context, q TransactionQuery) (*Page[dto.TransactionResponse], []dto.TransactionOverview, error) {
	p, env, err := list[dto.TransactionResponse](ctx, c, "/transactions", q.values())
	if err != nil {
		return nil, nil, err
	}

	var overview []dto.TransactionOverview
	if len(env.Overview) > 0 {
		if err := json.Unmarshal(env.Overview, &overview); err != nil {
			return nil, nil, fmt.Errorf("failed to decode overview: %w", err)
		}
	}
	return p, overview, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req dto.TransactionRequest) (*dto.TransactionResponse, error) {
	var out dto.TransactionResponse
	if _, err := c.do(ctx, http.MethodPost, "/transactions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	var out dto.QuoteResponse
	if _, err := c.do(ctx, http.MethodPost, "/transactions/quote", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment posts a payment; direct credits the whole amount to the balance.
func (c *Client) RecordPayment(ctx context.Context, party Party, req dto.PaymentRequest, direct bool) (*dto.PaymentResponse, error) {
	path := "/" + string(party) + "-payments"
	if direct {
		path += "/directPayment"
	}

	var out dto.PaymentResponse
	if _, err := c.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Balances(ctx context.Context, party Party, counterpartyID string) ([]dto.BalanceResponse, error) {
	var out []dto.BalanceResponse
	if _, err := c.do(ctx, http.MethodGet, "/"+string(party)+"-balance/"+url.PathEscape(counterpartyID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LatestExchangeRate(ctx context.Context, base, quote string) (*dto.ExchangeRateResponse, error) {
	q := url.Values{"base": {base}, "quote": {quote}}
	var out dto.ExchangeRateResponse
	if _, err := c.do(ctx, http.MethodGet, "/exchange-rates/latest", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EarningsStatistics(ctx context.Context, days int) ([]dto.DailyEarningsResponse, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var out []dto.DailyEarningsResponse
	if _, err := c.do(ctx, http.MethodGet, "/dashboard/earnings-statistics", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
