package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"sg-console-srv/internal/actionlog/repository"
)

const (
	columnsActionLog = "id, action, resource_type, resource_id, project_id, user_id, created_at"

	queryInsertActionLog = `INSERT INTO ` + tableActionLogs + ` (` + columnsActionLog + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	queryActionLogExists = `SELECT EXISTS (SELECT 1 FROM ` + tableActionLogs + ` WHERE id = $1 AND project_id = $2)`
)

// sortDirection parses "<key>:<dir>"; anything but asc is desc.
func sortDirection(sort string) string {
	if _, dir, ok := strings.Cut(sort, ":"); ok && strings.EqualFold(dir, "asc") {
		return "ASC"
	}
	return "DESC"
}

// buildListActionLogsQuery builds the keyset query for ListActionLogs. The project
// predicate is always present; callers reject an empty opt.ProjectID first.
func buildListActionLogsQuery(opt repository.ListActionLogsOptions) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where = append(where, "project_id = "+arg(opt.ProjectID))
	if len(opt.ResourceTypes) > 0 {
		where = append(where, "resource_type = ANY("+arg(pq.Array(opt.ResourceTypes))+")")
	}

	dir := sortDirection(opt.Sort)
	if opt.Marker != "" {
		cmp := "<"
		if dir == "ASC" {
			cmp = ">"
		}
		where = append(where, fmt.Sprintf(
			"(created_at, id) %s (SELECT created_at, id FROM %s WHERE id = %s)",
			cmp, tableActionLogs, arg(opt.Marker)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + columnsActionLog + " FROM " + tableActionLogs)
	b.WriteString(" WHERE " + strings.Join(where, " AND "))
	b.WriteString(fmt.Sprintf(" ORDER BY created_at %s, id %s", dir, dir))
	if opt.Limit > 0 {
		b.WriteString(" LIMIT " + arg(opt.Limit))
	}
	return b.String(), args
}
