package models

import (
	"time"

	"github.com/google/uuid"
)

// Party distinguishes the two kinds of counterparty. Agents and suppliers
// share their shape, their payments and their balances.
type Party string

const (
	PartyAgent    Party = "agent"
	PartySupplier Party = "supplier"
)

func (p Party) Valid() bool {
	return p == PartyAgent || p == PartySupplier
}

// Table is the table holding counterparties of this kind.
func (p Party) Table() string {
	if p == PartySupplier {
		return "suppliers"
	}
	return "agents"
}

type Counterparty struct {
	ID        uuid.UUID `db:"id"`
	TenantID  uuid.UUID `db:"tenant_id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
