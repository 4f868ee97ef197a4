package repository

import (
	"context"
	"fmt"
	"time"

	"smart-global-hub/internal/ledger"
	"smart-global-hub/internal/models"
	"smart-global-hub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"id", "tenant_id", "agent_id", "supplier_id", "base_currency", "quote_currency",
	"base_amount", "buy_rate", "sell_rate", "commission_rate",
	"quote_amount_buy", "quote_amount_sell", "commission", "profit", "total_earnings",
	"agent_due", "agent_paid", "supplier_due", "supplier_paid", "agent_status", "supplier_status",
	"note", "created_by", "created_at", "updated_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID, &tx.TenantID, &tx.AgentID, &tx.SupplierID, &tx.BaseCurrency, &tx.QuoteCurrency,
		&tx.BaseAmount, &tx.BuyRate, &tx.SellRate, &tx.CommissionRate,
		&tx.QuoteAmountBuy, &tx.QuoteAmountSell, &tx.Commission, &tx.Profit, &tx.TotalEarnings,
		&tx.AgentDue, &tx.AgentPaid, &tx.SupplierDue, &tx.SupplierPaid, &tx.AgentStatus, &tx.SupplierStatus,
		&tx.Note, &tx.CreatedBy, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(
			tx.ID, tx.TenantID, tx.AgentID, tx.SupplierID, tx.BaseCurrency, tx.QuoteCurrency,
			tx.BaseAmount, tx.BuyRate, tx.SellRate, tx.CommissionRate,
			tx.QuoteAmountBuy, tx.QuoteAmountSell, tx.Commission, tx.Profit, tx.TotalEarnings,
			tx.AgentDue, tx.AgentPaid, tx.SupplierDue, tx.SupplierPaid, tx.AgentStatus, tx.SupplierStatus,
			tx.Note, tx.CreatedBy, tx.CreatedAt, tx.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	return mapError(err)
}

func (r *TransactionRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := scanTransaction(postgres.Conn(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return tx, nil
}

// Update rewrites the terms of a transaction that has no payments applied.
// It returns ErrConflict when a payment landed in the meantime.
func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("agent_id", tx.AgentID).
		Set("supplier_id", tx.SupplierID).
		Set("base_currency", tx.BaseCurrency).
		Set("quote_currency", tx.QuoteCurrency).
		Set("base_amount", tx.BaseAmount).
		Set("buy_rate", tx.BuyRate).
		Set("sell_rate", tx.SellRate).
		Set("commission_rate", tx.CommissionRate).
		Set("quote_amount_buy", tx.QuoteAmountBuy).
		Set("quote_amount_sell", tx.QuoteAmountSell).
		Set("commission", tx.Commission).
		Set("profit", tx.Profit).
		Set("total_earnings", tx.TotalEarnings).
		Set("agent_due", tx.AgentDue).
		Set("supplier_due", tx.SupplierDue).
		Set("agent_status", tx.AgentStatus).
		Set("supplier_status", tx.SupplierStatus).
		Set("note", tx.Note).
		Set("updated_at", tx.UpdatedAt).
		Where(squirrel.Eq{"tenant_id": tx.TenantID, "id": tx.ID}).
		Where("agent_paid = 0 AND supplier_paid = 0").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

// Delete removes a transaction that has no payments applied.
func (r *TransactionRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		Where("agent_paid = 0 AND supplier_paid = 0").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

func transactionWhere(tenantID uuid.UUID, f models.TransactionFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"tenant_id": tenantID}}
	if f.AgentID != uuid.Nil {
		where = append(where, squirrel.Eq{"agent_id": f.AgentID})
	}
	if f.SupplierID != uuid.Nil {
		where = append(where, squirrel.Eq{"supplier_id": f.SupplierID})
	}
	if f.QuoteCurrency != "" {
		where = append(where, squirrel.Eq{"quote_currency": f.QuoteCurrency})
	}
	if f.Status != "" {
		// a transaction is only as settled as its least settled side
		switch f.Status {
		case ledger.StatusPaid:
			where = append(where, squirrel.Eq{"agent_status": ledger.StatusPaid, "supplier_status": ledger.StatusPaid})
		default:
			where = append(where, squirrel.Or{
				squirrel.Eq{"agent_status": f.Status},
				squirrel.Eq{"supplier_status": f.Status},
			})
		}
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.Lt{"created_at": *f.To})
	}
	return where
}

func (r *TransactionRepository) List(ctx context.Context, tenantID uuid.UUID, f models.TransactionFilter, limit, offset uint64) ([]*models.Transaction, int64, error) {
	where := transactionWhere(tenantID, f)
	conn := postgres.Conn(ctx, r.db)

	total, err := count(ctx, conn, "transactions", where)
	if err != nil {
		return nil, 0, err
	}

	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, tx)
	}

	return out, total, rows.Err()
}

// Overview aggregates the filtered set per quote currency.
func (r *TransactionRepository) Overview(ctx context.Context, tenantID uuid.UUID, f models.TransactionFilter) ([]*models.TransactionOverview, error) {
	query := squirrel.Select(
		"quote_currency",
		"COUNT(*)",
		"COALESCE(SUM(quote_amount_buy), 0)",
		"COALESCE(SUM(quote_amount_sell), 0)",
		"COALESCE(SUM(commission), 0)",
		"COALESCE(SUM(profit), 0)",
		"COALESCE(SUM(total_earnings), 0)",
		"COALESCE(SUM(GREATEST(agent_due - agent_paid, 0)), 0)",
		"COALESCE(SUM(GREATEST(supplier_due - supplier_paid, 0)), 0)",
	).
		From("transactions").
		Where(transactionWhere(tenantID, f)).
		GroupBy("quote_currency").
		OrderBy("quote_currency").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.TransactionOverview
	for rows.Next() {
		var o models.TransactionOverview
		if err := rows.Scan(
			&o.QuoteCurrency, &o.Count, &o.QuoteAmountBuy, &o.QuoteAmountSell, &o.Commission,
			&o.Profit, &o.TotalEarnings, &o.AgentOutstanding, &o.SupplierOutstanding,
		); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

func partyColumns(party models.Party) (idCol, dueCol, paidCol, statusCol string) {
	if party == models.PartySupplier {
		return "supplier_id", "supplier_due", "supplier_paid", "supplier_status"
	}
	return "agent_id", "agent_due", "agent_paid", "agent_status"
}

// LockOpen selects, oldest first and FOR UPDATE, the transactions of a
// counterparty in currency that still have money outstanding on its side.
// A non-empty ids restricts the candidates to those transactions.
// Must run inside Transactor.InTx.
func (r *TransactionRepository) LockOpen(ctx context.Context, tenantID uuid.UUID, party models.Party, counterpartyID uuid.UUID, currency string, ids []uuid.UUID) ([]*models.Transaction, error) {
	idCol, dueCol, paidCol, _ := partyColumns(party)

	where := squirrel.And{
		squirrel.Eq{"tenant_id": tenantID, idCol: counterpartyID, "quote_currency": currency},
		squirrel.Expr(fmt.Sprintf("%s < %s", paidCol, dueCol)),
	}
	if len(ids) > 0 {
		where = append(where, squirrel.Eq{"id": ids})
	}

	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(where).
		OrderBy("created_at ASC", "id").
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

// SetPaid stores the new paid amount and status of one side.
func (r *TransactionRepository) SetPaid(ctx context.Context, tenantID uuid.UUID, party models.Party, id uuid.UUID, paid decimal.Decimal, status ledger.Status) error {
	_, _, paidCol, statusCol := partyColumns(party)

	query := squirrel.Update("transactions").
		Set(paidCol, paid).
		Set(statusCol, status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
