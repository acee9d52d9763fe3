package geo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthplan/healthplan/internal/platform/repository"
)

// CityStore adds the by-state listing to the generic city store.
type CityStore interface {
	repository.Store[City]
	ListByState(ctx context.Context, estadoID int64) ([]*City, error)
}

func NewStateRepo(pool *pgxpool.Pool) repository.Store[State] {
	return repository.New[State](pool)
}

type cityRepoPG struct {
	*repository.Repository[City, *City]
}

func NewCityRepo(pool *pgxpool.Pool) CityStore {
	return &cityRepoPG{Repository: repository.New[City](pool)}
}

func (r *cityRepoPG) ListByState(ctx context.Context, estadoID int64) ([]*City, error) {
	return r.ListBy(ctx, "estado_id", estadoID)
}
