// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/sommelier/internal/platform/database/schema"
	"github.com/taibuivan/sommelier/internal/platform/dberr"
	"github.com/taibuivan/sommelier/pkg/pointer"
)

// PostgresRepository stores entries in 'system.auditlog'.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InsertEntry writes one entry. ID and CreatedAt must already be set.
func (repository *PostgresRepository) InsertEntry(context context.Context, entry *Entry) error {
	table := schema.SystemAuditLog
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		table.Table, table.ID, table.ActorID, table.Action, table.EntityType, table.EntityID,
		table.RestaurantID, table.Before, table.After, table.IPAddress, table.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		entry.ID, entry.ActorID, string(entry.Action), string(entry.EntityType), entry.EntityID,
		entry.RestaurantID, nullableJSON(entry.Before), nullableJSON(entry.After), entry.IPAddress, entry.CreatedAt,
	)
	return dberr.Wrap(err, "insert_audit_entry")
}

// ListEntries returns the newest entries first.
func (repository *PostgresRepository) ListEntries(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error) {
	table := schema.SystemAuditLog

	// 1. Dynamic WHERE clause
	var conditions []string
	var args []any

	if filter.EntityType != nil {
		args = append(args, pointer.Val(filter.EntityType))
		conditions = append(conditions, table.EntityType+" = $"+strconv.Itoa(len(args)))
	}
	if filter.EntityID != nil {
		args = append(args, pointer.Val(filter.EntityID))
		conditions = append(conditions, table.EntityID+" = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// 2. Count
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s %s`, table.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_audit_entries")
	}

	// 3. Page
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		%s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`,
		table.ID, table.ActorID, table.Action, table.EntityType, table.EntityID,
		table.RestaurantID, table.Before, table.After, table.IPAddress, table.CreatedAt,
		table.Table, where, table.CreatedAt, len(args)+1, len(args)+2,
	)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_audit_entries")
	}
	defer rows.Close()

	entries := make([]*Entry, 0, limit)
	for rows.Next() {
		entry := &Entry{}
		var action, entityType string
		var before, after []byte

		if err := rows.Scan(
			&entry.ID, &entry.ActorID, &action, &entityType, &entry.EntityID,
			&entry.RestaurantID, &before, &after, &entry.IPAddress, &entry.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_audit_entry")
		}

		entry.Action = Action(action)
		entry.EntityType = EntityType(entityType)
		entry.Before = before
		entry.After = after
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_audit_entries")
	}

	return entries, total, nil
}

// nullableJSON maps an empty document to SQL NULL.
func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
