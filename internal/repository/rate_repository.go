package repository

import (
	"context"

	"smart-global-hub/internal/models"
	"smart-global-hub/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	exchangeRateColumns   = []string{"id", "tenant_id", "base_currency", "quote_currency", "buy_rate", "sell_rate", "created_by", "created_at"}
	commissionRateColumns = []string{"id", "tenant_id", "rate", "created_by", "created_at"}
)

type RateRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRateRepository(db *pgxpool.Pool, logger *zap.Logger) *RateRepository {
	return &RateRepository{
		db:     db,
		logger: logger,
	}
}

func scanExchangeRate(row pgx.Row) (*models.ExchangeRate, error) {
	var er models.ExchangeRate
	if err := row.Scan(&er.ID, &er.TenantID, &er.BaseCurrency, &er.QuoteCurrency, &er.BuyRate, &er.SellRate, &er.CreatedBy, &er.CreatedAt); err != nil {
		return nil, err
	}
	return &er, nil
}

func scanCommissionRate(row pgx.Row) (*models.CommissionRate, error) {
	var cr models.CommissionRate
	if err := row.Scan(&cr.ID, &cr.TenantID, &cr.Rate, &cr.CreatedBy, &cr.CreatedAt); err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *RateRepository) CreateExchangeRate(ctx context.Context, er *models.ExchangeRate) error {
	query := squirrel.Insert("exchange_rates").
		Columns(exchangeRateColumns...).
		Values(er.ID, er.TenantID, er.BaseCurrency, er.QuoteCurrency, er.BuyRate, er.SellRate, er.CreatedBy, er.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	return mapError(err)
}

func (r *RateRepository) ListExchangeRates(ctx context.Context, tenantID uuid.UUID, base, quote string, limit, offset uint64) ([]*models.ExchangeRate, int64, error) {
	conn := postgres.Conn(ctx, r.db)

	where := squirrel.Eq{"tenant_id": tenantID}
	if base != "" {
		where["base_currency"] = base
	}
	if quote != "" {
		where["quote_currency"] = quote
	}

	total, err := count(ctx, conn, "exchange_rates", where)
	if err != nil {
		return nil, 0, err
	}

	query := squirrel.Select(exchangeRateColumns...).
		From("exchange_rates").
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

	var out []*models.ExchangeRate
	for rows.Next() {
		er, err := scanExchangeRate(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, er)
	}
	return out, total, rows.Err()
}

// LatestExchangeRate returns the most recently created rate for the pair.
func (r *RateRepository) LatestExchangeRate(ctx context.Context, tenantID uuid.UUID, base, quote string) (*models.ExchangeRate, error) {
	query := squirrel.Select(exchangeRateColumns...).
		From("exchange_rates").
		Where(squirrel.Eq{"tenant_id": tenantID, "base_currency": base, "quote_currency": quote}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	er, err := scanExchangeRate(postgres.Conn(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return er, nil
}

func (r *RateRepository) CreateCommissionRate(ctx context.Context, cr *models.CommissionRate) error {
	query := squirrel.Insert("commission_rates").
		Columns(commissionRateColumns...).
		Values(cr.ID, cr.TenantID, cr.Rate, cr.CreatedBy, cr.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	return mapError(err)
}

func (r *RateRepository) ListCommissionRates(ctx context.Context, tenantID uuid.UUID, limit, offset uint64) ([]*models.CommissionRate, int64, error) {
	conn := postgres.Conn(ctx, r.db)
	where := squirrel.Eq{"tenant_id": tenantID}

	total, err := count(ctx, conn, "commission_rates", where)
	if err != nil {
		return nil, 0, err
	}

	query := squirrel.Select(commissionRateColumns...).
		From("commission_rates").
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

	var out []*models.CommissionRate
	for rows.Next() {
		cr, err := scanCommissionRate(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, cr)
	}
	return out, total, rows.Err()
}

func (r *RateRepository) LatestCommissionRate(ctx context.Context, tenantID uuid.UUID) (*models.CommissionRate, error) {
	query := squirrel.Select(commissionRateColumns...).
		From("commission_rates").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	cr, err := scanCommissionRate(postgres.Conn(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return cr, nil
}
