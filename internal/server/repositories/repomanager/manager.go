package repomanager

import (
	"context"
	"database/sql"

	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/nodes"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/notifications"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/organizations"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/users"
)

// RepositoryManager binds repositories to a connection or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Organizations(db dbx.DBTX) organizations.Repository
	Nodes(db dbx.DBTX) nodes.Repository
	Notifications(db dbx.DBTX) notifications.Repository
}
