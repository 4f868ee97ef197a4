package repository

import (
	"context"
	"time"

	"smart-global-hub/internal/models"
	"smart-global-hub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BalanceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBalanceRepository(db *pgxpool.Pool, logger *zap.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:     db,
		logger: logger,
	}
}

// Credit adds amount to the running balance, creating it on first use.
func (r *BalanceRepository) Credit(ctx context.Context, tenantID uuid.UUID, party models.Party, counterpartyID uuid.UUID, currency string, amount decimal.Decimal) error {
	now := time.Now()
	query := squirrel.Insert("balances").
		Columns("tenant_id", "party", "counterparty_id", "currency", "amount", "updated_at").
		Values(tenantID, party, counterpartyID, currency, amount, now).
		Suffix("ON CONFLICT (tenant_id, party, counterparty_id, currency) DO UPDATE SET amount = balances.amount + EXCLUDED.amount, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	return mapError(err)
}

func (r *BalanceRepository) baseSelect(party models.Party) squirrel.SelectBuilder {
	return squirrel.Select(
		"b.tenant_id", "b.party", "b.counterparty_id", "COALESCE(c.name, '')", "b.currency", "b.amount", "b.updated_at",
	).
		From("balances b").
		LeftJoin(party.Table() + " c ON c.id = b.counterparty_id AND c.tenant_id = b.tenant_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *BalanceRepository) List(ctx context.Context, tenantID uuid.UUID, party models.Party, currency string, limit, offset uint64) ([]*models.Balance, int64, error) {
	conn := postgres.Conn(ctx, r.db)

	where := squirrel.Eq{"tenant_id": tenantID, "party": party}
	if currency != "" {
		where["currency"] = currency
	}

	total, err := count(ctx, conn, "balances", where)
	if err != nil {
		return nil, 0, err
	}

	qualified := squirrel.Eq{}
	for k, v := range where {
		qualified["b."+k] = v
	}

	query := r.baseSelect(party).
		Where(qualified).
		OrderBy("c.name", "b.currency").
		Limit(limit).
		Offset(offset)

	balances, err := r.query(ctx, query)
	return balances, total, err
}

func (r *BalanceRepository) ListByCounterparty(ctx context.Context, tenantID uuid.UUID, party models.Party, counterpartyID uuid.UUID) ([]*models.Balance, error) {
	query := r.baseSelect(party).
		Where(squirrel.Eq{"b.tenant_id": tenantID, "b.party": party, "b.counterparty_id": counterpartyID}).
		OrderBy("b.currency")

	return r.query(ctx, query)
}

func (r *BalanceRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Balance, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Balance
	for rows.Next() {
		var b models.Balance
		if err := rows.Scan(&b.TenantID, &b.Party, &b.CounterpartyID, &b.CounterpartyName, &b.Currency, &b.Amount, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
