// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/idea-backlog/internal/logger"
)

// Session outcomes reported to the SessionObserver.
const (
	OutcomeCommit   = "commit"
	OutcomeRollback = "rollback"
)

type unitOfWork struct {
	db       *DB
	observer SessionObserver
}

// NewUnitOfWork returns a [UnitOfWork] over db. observer may be nil.
func NewUnitOfWork(db *DB, observer SessionObserver) UnitOfWork {
	return &unitOfWork{
		db:       db,
		observer: observer,
	}
}

// WithSession takes one connection from the pool, begins a transaction on it
// and runs work.
//
// The transaction is committed when work returns nil and rolled back
// otherwise; the error from work is returned as is. The connection goes back
// to the pool on every path, including a panic inside work, which is
// re-raised after rollback.
func (u *unitOfWork) WithSession(ctx context.Context, work Work) (err error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	outcome := OutcomeRollback
	defer func() {
		if u.observer != nil {
			u.observer.ObserveDBSession(outcome, time.Since(start))
		}
	}()

	conn, err := u.db.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "*unitOfWork.WithSession").Msg("error acquiring connection")
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "*unitOfWork.WithSession").Msg("error releasing connection")
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*unitOfWork.WithSession").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op after a successful commit
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*unitOfWork.WithSession").Msg("error rolling back transaction")
		}
	}()

	if err = work(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*unitOfWork.WithSession").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	outcome = OutcomeCommit

	return nil
}
