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

var counterpartyColumns = []string{"id", "tenant_id", "name", "phone", "email", "address", "note", "created_at", "updated_at"}

// CounterpartyRepository persists agents or suppliers, depending on its party.
type CounterpartyRepository struct {
	db     *pgxpool.Pool
	party  models.Party
	table  string
	logger *zap.Logger
}

func NewCounterpartyRepository(db *pgxpool.Pool, party models.Party, logger *zap.Logger) *CounterpartyRepository {
	return &CounterpartyRepository{
		db:     db,
		party:  party,
		table:  party.Table(),
		logger: logger,
	}
}

func (r *CounterpartyRepository) Create(ctx context.Context, cp *models.Counterparty) error {
	query := squirrel.Insert(r.table).
		Columns(counterpartyColumns...).
		Values(cp.ID, cp.TenantID, cp.Name, cp.Phone, cp.Email, cp.Address, cp.Note, cp.CreatedAt, cp.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = postgres.Conn(ctx, r.db).Exec(ctx, sql, args...)
	return mapError(err)
}

func (r *CounterpartyRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Counterparty, error) {
	query := squirrel.Select(counterpartyColumns...).
		From(r.table).
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var cp models.Counterparty
	err = postgres.Conn(ctx, r.db).QueryRow(ctx, sql, args...).Scan(
		&cp.ID, &cp.TenantID, &cp.Name, &cp.Phone, &cp.Email, &cp.Address, &cp.Note, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &cp, nil
}

func (r *CounterpartyRepository) List(ctx context.Context, tenantID uuid.UUID, search string, limit, offset uint64) ([]*models.Counterparty, int64, error) {
	where := squirrel.And{squirrel.Eq{"tenant_id": tenantID}}
	if search != "" {
		pattern := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	total, err := count(ctx, postgres.Conn(ctx, r.db), r.table, where)
	if err != nil {
		return nil, 0, err
	}

	query := squirrel.Select(counterpartyColumns...).
		From(r.table).
		Where(where).
		OrderBy("name ASC", "id").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Counterparty
	for rows.Next() {
		var cp models.Counterparty
		if err := rows.Scan(
			&cp.ID, &cp.TenantID, &cp.Name, &cp.Phone, &cp.Email, &cp.Address, &cp.Note, &cp.CreatedAt, &cp.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, &cp)
	}

	return out, total, rows.Err()
}

func (r *CounterpartyRepository) Update(ctx context.Context, cp *models.Counterparty) error {
	query := squirrel.Update(r.table).
		Set("name", cp.Name).
		Set("phone", cp.Phone).
		Set("email", cp.Email).
		Set("address", cp.Address).
		Set("note", cp.Note).
		Set("updated_at", cp.UpdatedAt).
		Where(squirrel.Eq{"tenant_id": cp.TenantID, "id": cp.ID}).
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

func (r *CounterpartyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := squirrel.Delete(r.table).
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

// InUse reports whether any transaction, payment or balance references the
// counterparty.
func (r *CounterpartyRepository) InUse(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	sql, args, err := r.usageQuery(tenantID, id).ToSql()
	if err != nil {
		return false, err
	}

	var inUse bool
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

func (r *CounterpartyRepository) usageQuery(tenantID, id uuid.UUID) squirrel.SelectBuilder {
	column := "agent_id"
	if r.party == models.PartySupplier {
		column = "supplier_id"
	}
	exists := func(table string, where squirrel.Eq) squirrel.Sqlizer {
		return squirrel.Expr("EXISTS (?)", squirrel.Select("1").From(table).Where(where))
	}

	return squirrel.Select().
		Column(squirrel.Or{
			exists("transactions", squirrel.Eq{"tenant_id": tenantID, column: id}),
			exists("payments", squirrel.Eq{"tenant_id": tenantID, "party": r.party, "counterparty_id": id}),
			exists("balances", squirrel.Eq{"tenant_id": tenantID, "party": r.party, "counterparty_id": id}),
		}).
		PlaceholderFormat(squirrel.Dollar)
}

func count(ctx context.Context, q postgres.Querier, table string, where squirrel.Sqlizer) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From(table).
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
