// Package repository implements the five table operations shared by every
// healthplan entity on top of pgx.
package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthplan/healthplan/internal/platform/db"
	"github.com/healthplan/healthplan/internal/platform/sqlerr"
	"github.com/healthplan/healthplan/pkg/pagination"
)

// Entity is a row-shaped record mapped to one table. Columns lists the
// writable columns (everything but id) and Values returns their values in
// the same order. Struct fields carry `db` tags matching the column names.
type Entity interface {
	TableName() string
	Columns() []string
	Values() []any
}

// Store is the persistence interface handlers depend on.
type Store[T any] interface {
	List(ctx context.Context, limit, offset int) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id int64, entity *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// queryable abstracts pgxpool.Pool and pgxpool.Conn.
type queryable interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository is the PostgreSQL Store for entity type T. PT is *T and must
// implement Entity.
type Repository[T any, PT interface {
	*T
	Entity
}] struct {
	pool    *pgxpool.Pool
	table   string
	columns []string
	stmt    statements
}

// New builds the repository for T. The pool is used only when the context
// carries no request-scoped connection.
func New[T any, PT interface {
	*T
	Entity
}](pool *pgxpool.Pool) *Repository[T, PT] {
	var zero T
	entity := PT(&zero)
	table := entity.TableName()
	columns := entity.Columns()
	return &Repository[T, PT]{
		pool:    pool,
		table:   table,
		columns: columns,
		stmt:    buildStatements(table, columns),
	}
}

func (r *Repository[T, PT]) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

// Table returns the table the repository reads and writes.
func (r *Repository[T, PT]) Table() string {
	return r.table
}

// List returns rows ordered by id. A limit of zero returns every row. The
// result is never nil.
func (r *Repository[T, PT]) List(ctx context.Context, limit, offset int) ([]*T, error) {
	query := r.stmt.list
	if clause := (pagination.Params{Limit: limit, Offset: offset}).SQL(); clause != "" {
		query += " " + clause
	}
	return r.collect(ctx, query)
}

// ListBy returns the rows whose column equals value, ordered by id. The
// column must be one of the entity's declared columns.
func (r *Repository[T, PT]) ListBy(ctx context.Context, column string, value any) ([]*T, error) {
	if !slices.Contains(r.columns, column) {
		return nil, fmt.Errorf("%s: unknown column %q", r.table, column)
	}
	return r.collect(ctx, r.stmt.listBy(column), value)
}

func (r *Repository[T, PT]) collect(ctx context.Context, query string, args ...any) ([]*T, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.Wrap(r.table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, sqlerr.Wrap(r.table, err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

func (r *Repository[T, PT]) one(ctx context.Context, query string, args ...any) (*T, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.Wrap(r.table, err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, sqlerr.Wrap(r.table, err)
	}
	return item, nil
}

// Get returns the row with the given id or a sqlerr.NotFound error.
func (r *Repository[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	return r.one(ctx, r.stmt.get, id)
}

// Create inserts entity and returns the persisted row with its generated id.
func (r *Repository[T, PT]) Create(ctx context.Context, entity *T) (*T, error) {
	return r.one(ctx, r.stmt.insert, PT(entity).Values()...)
}

// Update overwrites every writable column of row id with the values of
// entity and returns the stored row. A missing row yields sqlerr.NotFound.
func (r *Repository[T, PT]) Update(ctx context.Context, id int64, entity *T) (*T, error) {
	args := append([]any{id}, PT(entity).Values()...)
	return r.one(ctx, r.stmt.update, args...)
}

// Delete removes row id. A missing row yields sqlerr.NotFound and a row
// still referenced by another table yields sqlerr.RestrictViolation.
func (r *Repository[T, PT]) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, r.stmt.delete, id)
	if err != nil {
		return sqlerr.Wrap(r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NewNotFound(r.table)
	}
	return nil
}
