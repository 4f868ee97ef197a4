package repository

import (
	"context"
	"fmt"
	"time"

	"smart-global-hub/internal/models"
	"smart-global-hub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DashboardRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDashboardRepository(db *pgxpool.Pool, logger *zap.Logger) *DashboardRepository {
	return &DashboardRepository{
		db:     db,
		logger: logger,
	}
}

// CounterpartyStatistics groups transactions per counterparty and quote
// currency, joined with the counterparty's credit balance in that currency.
func (r *DashboardRepository) CounterpartyStatistics(ctx context.Context, tenantID uuid.UUID, party models.Party) ([]*models.CounterpartyStatistic, error) {
	idCol, dueCol, paidCol, _ := partyColumns(party)

	query := squirrel.Select(
		"c.id",
		"c.name",
		"t.quote_currency",
		"COUNT(*)",
		fmt.Sprintf("COALESCE(SUM(t.%s), 0)", dueCol),
		fmt.Sprintf("COALESCE(SUM(t.%s), 0)", paidCol),
		fmt.Sprintf("COALESCE(SUM(GREATEST(t.%s - t.%s, 0)), 0) AS outstanding", dueCol, paidCol),
		"COALESCE(MAX(b.amount), 0)",
	).
		From("transactions t").
		Join(fmt.Sprintf("%s c ON c.id = t.%s", party.Table(), idCol)).
		LeftJoin("balances b ON b.tenant_id = t.tenant_id AND b.party = ? AND b.counterparty_id = c.id AND b.currency = t.quote_currency", party).
		Where(squirrel.Eq{"t.tenant_id": tenantID}).
		GroupBy("c.id", "c.name", "t.quote_currency").
		OrderBy("outstanding DESC", "c.name").
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

	var out []*models.CounterpartyStatistic
	for rows.Next() {
		var s models.CounterpartyStatistic
		if err := rows.Scan(
			&s.CounterpartyID, &s.CounterpartyName, &s.Currency, &s.Transactions, &s.Due, &s.Paid, &s.Outstanding, &s.Credit,
		); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// DailyEarnings returns one row per UTC day and quote currency since the given time.
func (r *DashboardRepository) DailyEarnings(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]*models.DailyEarnings, error) {
	query := squirrel.Select(
		"date_trunc('day', created_at AT TIME ZONE 'UTC') AS day",
		"quote_currency",
		"COUNT(*)",
		"COALESCE(SUM(profit), 0)",
		"COALESCE(SUM(commission), 0)",
		"COALESCE(SUM(total_earnings), 0)",
	).
		From("transactions").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		GroupBy("day", "quote_currency").
		OrderBy("day", "quote_currency").
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

	var out []*models.DailyEarnings
	for rows.Next() {
		var d models.DailyEarnings
		if err := rows.Scan(&d.Day, &d.QuoteCurrency, &d.Transactions, &d.Profit, &d.Commission, &d.TotalEarnings); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
