package client

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthplan/healthplan/internal/platform/repository"
)

// Repos groups the stores backing the client routes.
type Repos struct {
	MaritalStatuses   repository.Store[MaritalStatus]
	Clients           repository.Store[Client]
	Addresses         repository.Store[Address]
	Comorbidities     repository.Store[Comorbidity]
	HealthHistories   repository.Store[HealthHistory]
	HospitalHistories repository.Store[HospitalHistory]
}

func NewRepos(pool *pgxpool.Pool) Repos {
	return Repos{
		MaritalStatuses:   repository.New[MaritalStatus](pool),
		Clients:           repository.New[Client](pool),
		Addresses:         repository.New[Address](pool),
		Comorbidities:     repository.New[Comorbidity](pool),
		HealthHistories:   repository.New[HealthHistory](pool),
		HospitalHistories: repository.New[HospitalHistory](pool),
	}
}
