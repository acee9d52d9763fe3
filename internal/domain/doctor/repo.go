package doctor

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthplan/healthplan/internal/platform/repository"
)

func NewDoctorRepo(pool *pgxpool.Pool) repository.Store[Doctor] {
	return repository.New[Doctor](pool)
}

func NewUnitAssignmentRepo(pool *pgxpool.Pool) repository.Store[UnitAssignment] {
	return repository.New[UnitAssignment](pool)
}
