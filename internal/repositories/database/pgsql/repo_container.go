package pgsql

import (
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BillRepo:          newPgxBillRepository(dbPool),
		ReceivableRepo:    newPgxReceivableRepository(dbPool),
		CategoryRepo:      newPgxCategoryRepository(dbPool),
		PaymentMethodRepo: newPgxPaymentMethodRepository(dbPool),
		PaymentStatusRepo: newPgxPaymentStatusRepository(dbPool),
		PersonUserRepo:    newPgxPersonUserRepository(dbPool),
	}
}
