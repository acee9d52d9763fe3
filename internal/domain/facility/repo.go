package facility

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthplan/healthplan/internal/platform/repository"
)

func NewServiceAreaRepo(pool *pgxpool.Pool) repository.Store[ServiceArea] {
	return repository.New[ServiceArea](pool)
}

func NewUnitRepo(pool *pgxpool.Pool) repository.Store[Unit] {
	return repository.New[Unit](pool)
}

// NewUnitAddressRepo stores at most one address per unit; a second one is
// rejected by the unidade_id unique constraint.
func NewUnitAddressRepo(pool *pgxpool.Pool) repository.Store[UnitAddress] {
	return repository.New[UnitAddress](pool)
}
