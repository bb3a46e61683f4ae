package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database, opening it on first use.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
