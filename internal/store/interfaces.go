package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/idea-backlog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Session is the transactional handle passed to a unit of work. *sql.Tx
// satisfies it.
type Session interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Work is the body of a unit of work. Returning a non-nil error rolls the
// session back.
type Work func(ctx context.Context, s Session) error

// UnitOfWork runs Work inside one transaction on one dedicated connection.
type UnitOfWork interface {
	WithSession(ctx context.Context, work Work) error
}

// ItemRepository persists items. Every method runs on the caller's session.
type ItemRepository interface {
	ListItems(ctx context.Context, s Session) ([]models.Item, error)
	GetItem(ctx context.Context, s Session, id int64) (models.Item, error)
	CreateItem(ctx context.Context, s Session, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, s Session, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, s Session, id int64) error
}

// SessionObserver receives the duration and outcome of every session.
type SessionObserver interface {
	ObserveDBSession(outcome string, d time.Duration)
}
