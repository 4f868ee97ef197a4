package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"smart-global-hub/internal/ledger"
	"smart-global-hub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMapError(t *testing.T) {
	other := errors.New("boom")

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505"}), ErrDuplicate)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "22003"}), ErrOutOfRange)
	assert.Same(t, other, mapError(other))

	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(fk), mapError(fk))
}

func TestTransactionWhere(t *testing.T) {
	tenant := uuid.New()

	t.Run("tenant only", func(t *testing.T) {
		sql, args, err := transactionWhere(tenant, models.TransactionFilter{}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(tenant_id = ?)", sql)
		assert.Equal(t, []interface{}{tenant.String()}, args)
	})

	t.Run("paid requires both sides", func(t *testing.T) {
		sql, args, err := transactionWhere(tenant, models.TransactionFilter{Status: ledger.StatusPaid}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "agent_status = ?")
		assert.Contains(t, sql, "supplier_status = ?")
		assert.NotContains(t, sql, " OR ")
		assert.Len(t, args, 3)
	})

	t.Run("partial matches either side", func(t *testing.T) {
		sql, _, err := transactionWhere(tenant, models.TransactionFilter{Status: ledger.StatusPartial}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "agent_status = ? OR supplier_status = ?")
	})

	t.Run("all filters", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)
		f := models.TransactionFilter{
			AgentID:       uuid.New(),
			SupplierID:    uuid.New(),
			QuoteCurrency: "USD",
			From:          &from,
			To:            &to,
		}

		sql, args, err := transactionWhere(tenant, f).ToSql()
		require.NoError(t, err)
		for _, frag := range []string{"agent_id = ?", "supplier_id = ?", "quote_currency = ?", "created_at >= ?", "created_at < ?"} {
			assert.Contains(t, sql, frag)
		}
		// uuid.UUID is a driver.Valuer, squirrel expands it to its string form
		assert.Equal(t, []interface{}{tenant.String(), f.AgentID.String(), f.SupplierID.String(), "USD", from, to}, args)
	})
}

func TestPartyColumns(t *testing.T) {
	id, due, paid, status := partyColumns(models.PartyAgent)
	assert.Equal(t, []string{"agent_id", "agent_due", "agent_paid", "agent_status"}, []string{id, due, paid, status})

	id, due, paid, status = partyColumns(models.PartySupplier)
	assert.Equal(t, []string{"supplier_id", "supplier_due", "supplier_paid", "supplier_status"}, []string{id, due, paid, status})
}

func TestCounterpartyUsageQuery(t *testing.T) {
	tenant, id := uuid.New(), uuid.New()

	tests := []struct {
		party  models.Party
		column string
	}{
		{models.PartyAgent, "agent_id"},
		{models.PartySupplier, "supplier_id"},
	}

	for _, tt := range tests {
		t.Run(string(tt.party), func(t *testing.T) {
			repo := NewCounterpartyRepository(nil, tt.party, zap.NewNop())

			sql, args, err := repo.usageQuery(tenant, id).ToSql()
			require.NoError(t, err)

			assert.Contains(t, sql, "FROM transactions WHERE")
			assert.Contains(t, sql, tt.column+" = $")
			// direct payments and credit balances alone must also block deletion
			assert.Contains(t, sql, "FROM payments WHERE")
			assert.Contains(t, sql, "FROM balances WHERE")
			assert.Contains(t, sql, " OR ")
			assert.Contains(t, sql, "$8")
			assert.NotContains(t, sql, "?")
			assert.Len(t, args, 8)
		})
	}
}
