package pgsql

import (
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the given pool, usually a *pgxpool.Pool.
func NewRepositoryProvider(dbPool DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PersonRepo:       newPgxPersonRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		RevokedTokenRepo: newPgxRevokedTokenRepository(dbPool),
	}
}
