package company

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthplan/healthplan/internal/platform/repository"
)

func NewCompanyRepo(pool *pgxpool.Pool) repository.Store[Company] {
	return repository.New[Company](pool)
}

func NewInsurancePlanRepo(pool *pgxpool.Pool) repository.Store[InsurancePlan] {
	return repository.New[InsurancePlan](pool)
}
