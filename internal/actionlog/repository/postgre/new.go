package postgre

import (
	"database/sql"

	"sg-console-srv/internal/actionlog/repository"
	"sg-console-srv/pkg/log"
)

const tableActionLogs = "action_logs"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL repository for the action log.
func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
