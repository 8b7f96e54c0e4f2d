// Package repomanager wires repositories to database handles and owns schema
// migrations. Services ask the manager for a repository bound to a *sql.DB or
// a transaction, never constructing repositories directly.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/Pritish2005/Event-Hub/internal/dbx"
	"github.com/Pritish2005/Event-Hub/internal/server/repositories/events"
	"github.com/Pritish2005/Event-Hub/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Events(db dbx.DBTX) events.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
