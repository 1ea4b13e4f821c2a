package sqlstore

import (
	"database/sql"

	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the six table repositories over one database handle.
func NewRepositoryProvider(db *sql.DB, dialect Dialect) portsrepo.RepositoryProvider {
	database := New(db, dialect)

	return portsrepo.RepositoryProvider{
		RecurrenceRepo:          newRepository[domain.Recurrence, *domain.Recurrence](database, recurrenceTable),
		BillStatusRepo:          newRepository[domain.BillStatus, *domain.BillStatus](database, billStatusTable),
		BankAccountRepo:         newRepository[domain.BankAccount, *domain.BankAccount](database, bankAccountTable),
		BillRepo:                newRepository[domain.Bill, *domain.Bill](database, billTable),
		DueBillRepo:             newRepository[domain.DueBill, *domain.DueBill](database, dueBillTable),
		BankAccountInstanceRepo: newRepository[domain.BankAccountInstance, *domain.BankAccountInstance](database, bankAccountInstanceTable),
		References:              database,
	}
}
