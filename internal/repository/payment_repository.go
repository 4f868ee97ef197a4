package repository

import (
	"context"

	"smart-global-hub/internal/models"
	"smart-global-hub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var paymentColumns = []string{
	"id", "tenant_id", "party", "counterparty_id", "currency", "amount", "applied_amount",
	"credited_amount", "direct", "reference", "note", "paid_at", "created_by", "created_at",
}

type PaymentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPaymentRepository(db *pgxpool.Pool, logger *zap.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the payment together with its allocations.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	conn := postgres.Conn(ctx, r.db)

	query := squirrel.Insert("payments").
		Columns(paymentColumns...).
		Values(
			p.ID, p.TenantID, p.Party, p.CounterpartyID, p.Currency, p.Amount, p.AppliedAmount,
			p.CreditedAmount, p.Direct, p.Reference, p.Note, p.PaidAt, p.CreatedBy, p.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := conn.Exec(ctx, sql, args...); err != nil {
		return mapError(err)
	}

	if len(p.Allocations) == 0 {
		return nil
	}

	builder := squirrel.Insert("payment_allocations").
		Columns("payment_id", "transaction_id", "amount").
		PlaceholderFormat(squirrel.Dollar)
	for _, a := range p.Allocations {
		builder = builder.Values(p.ID, a.TransactionID, a.Amount)
	}

	sql, args, err = builder.ToSql()
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx, sql, args...)
	return mapError(err)
}

func (r *PaymentRepository) GetByID(ctx context.Context, tenantID uuid.UUID, party models.Party, id uuid.UUID) (*models.Payment, error) {
	conn := postgres.Conn(ctx, r.db)

	query := squirrel.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"tenant_id": tenantID, "party": party, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Payment
	err = conn.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.TenantID, &p.Party, &p.CounterpartyID, &p.Currency, &p.Amount, &p.AppliedAmount,
		&p.CreditedAmount, &p.Direct, &p.Reference, &p.Note, &p.PaidAt, &p.CreatedBy, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	allocQuery := squirrel.Select("payment_id", "transaction_id", "amount").
		From("payment_allocations").
		Where(squirrel.Eq{"payment_id": id}).
		OrderBy("transaction_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = allocQuery.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.PaymentAllocation
		if err := rows.Scan(&a.PaymentID, &a.TransactionID, &a.Amount); err != nil {
			return nil, err
		}
		p.Allocations = append(p.Allocations, a)
	}

	return &p, rows.Err()
}

func (r *PaymentRepository) List(ctx context.Context, tenantID uuid.UUID, party models.Party, f models.PaymentFilter, limit, offset uint64) ([]*models.Payment, int64, error) {
	conn := postgres.Conn(ctx, r.db)

	where := squirrel.And{squirrel.Eq{"tenant_id": tenantID, "party": party}}
	if f.CounterpartyID != uuid.Nil {
		where = append(where, squirrel.Eq{"counterparty_id": f.CounterpartyID})
	}
	if f.Currency != "" {
		where = append(where, squirrel.Eq{"currency": f.Currency})
	}

	total, err := count(ctx, conn, "payments", where)
	if err != nil {
		return nil, 0, err
	}

	query := squirrel.Select(paymentColumns...).
		From("payments").
		Where(where).
		OrderBy("paid_at DESC", "created_at DESC").
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

	var out []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(
			&p.ID, &p.TenantID, &p.Party, &p.CounterpartyID, &p.Currency, &p.Amount, &p.AppliedAmount,
			&p.CreditedAmount, &p.Direct, &p.Reference, &p.Note, &p.PaidAt, &p.CreatedBy, &p.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, &p)
	}

	return out, total, rows.Err()
}
