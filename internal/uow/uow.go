// Package uow holds the request-scoped unit of work used by the write repositories.
//
// Repositories stage statements on the unit's transaction and report how many
// rows they touched; the caller decides when to commit.
package uow

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrNoUnitOfWork is returned when a write is attempted outside of a unit of work.
	ErrNoUnitOfWork = errors.New("no active unit of work in context")
	// ErrFinished is returned when committing a unit that was already committed or rolled back.
	ErrFinished = errors.New("unit of work already finished")
)

// UnitOfWork wraps one database transaction and the rows changed through it.
// It is not safe for concurrent use; one request owns it.
type UnitOfWork struct {
	tx       *sqlx.Tx
	affected int64
	finished bool
}

// Begin opens a transaction on db.
func Begin(ctx context.Context, db *sqlx.DB) (*UnitOfWork, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &UnitOfWork{tx: tx}, nil
}

// Tx returns the underlying transaction.
func (u *UnitOfWork) Tx() *sqlx.Tx {
	return u.tx
}

// Active reports whether statements can still be staged.
func (u *UnitOfWork) Active() bool {
	return u != nil && !u.finished
}

// Add records n rows changed by a staged statement.
func (u *UnitOfWork) Add(n int64) {
	u.affected += n
}

// Commit commits the transaction and returns the number of rows changed.
func (u *UnitOfWork) Commit() (int64, error) {
	if u.finished {
		return 0, ErrFinished
	}
	u.finished = true
	if err := u.tx.Commit(); err != nil {
		return 0, err
	}
	return u.affected, nil
}

// Rollback discards staged changes. It is a no-op once the unit is finished.
func (u *UnitOfWork) Rollback() error {
	if u.finished {
		return nil
	}
	u.finished = true
	return u.tx.Rollback()
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying u.
func NewContext(ctx context.Context, u *UnitOfWork) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the unit of work stored in ctx, or nil.
func FromContext(ctx context.Context) *UnitOfWork {
	u, _ := ctx.Value(contextKey{}).(*UnitOfWork)
	return u
}
